// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Idea status constants
const (
	IdeaStatusValidating = "validating"
	IdeaStatusValidated  = "validated"
)

// Artifact status constants
const (
	StatusDraft     = "draft"
	StatusCompleted = "completed"
)

// Pitch type constants
const (
	PitchTypeInvestor = "investor"
	PitchTypeCustomer = "customer"
	PitchTypeDemoDay  = "demo_day"
)

// ValidatedScoreThreshold is the validation score at or above which an idea
// is stored as "validated" rather than "validating".
const ValidatedScoreThreshold = 70

// Content is the open per-slide field mapping. Values may be strings,
// []string (decoded from JSON as []any), nested maps, or numbers-as-strings.
// No schema is enforced; consumers treat every field as optional.
type Content map[string]any

// Slide is one ordered deck entry. Title doubles as the rendering dispatch
// key ("Title Slide", "Problem", ...). Template records which editor template
// created the slide; generated slides leave it empty.
type Slide struct {
	Title    string  `json:"title"`
	Content  Content `json:"content"`
	Template string  `json:"template,omitempty"`
}

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateIdeaRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ProblemStatement string `json:"problem_statement"`
	SolutionApproach string `json:"solution_approach"`
	TargetMarket     string `json:"target_market"`
}

type CreateMVPRequest struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Features           []string `json:"features"`
	TechStack          []string `json:"tech_stack"`
	CustomRequirements string   `json:"custom_requirements"`
	IdeaID             *string  `json:"idea_id,omitempty"`
}

type CreatePitchDeckRequest struct {
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	PitchType            string  `json:"pitch_type"`
	FundingGoal          string  `json:"funding_goal"`
	BusinessModel        string  `json:"business_model"`
	TargetMarket         string  `json:"target_market"`
	TeamInfo             string  `json:"team_info"`
	TractionMetrics      string  `json:"traction_metrics"`
	CompetitiveAdvantage string  `json:"competitive_advantage"`
	IdeaID               *string `json:"idea_id,omitempty"`
	MVPID                *string `json:"mvp_id,omitempty"`
}

type UpdateSlidesRequest struct {
	Slides []Slide `json:"slides"`
}

// Response types

type AuthResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type UserInfo struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateIdeaResponse struct {
	Idea            StartupIdea    `json:"idea"`
	ValidationScore int            `json:"validation_score"`
	ValidationData  IdeaValidation `json:"validation_data"`
}

type CreateMVPResponse struct {
	Project MVPProject `json:"project"`
}

type CreatePitchDeckResponse struct {
	PitchDeck PitchDeck `json:"pitch_deck"`
}

type UpdateSlidesResponse struct {
	SlideCount int `json:"slide_count"`
}

// Domain types

type StartupIdea struct {
	ID               string         `json:"id"`
	UserID           string         `json:"-"` // Never expose in JSON
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ProblemStatement string         `json:"problem_statement"`
	SolutionApproach string         `json:"solution_approach"`
	TargetMarket     string         `json:"target_market"`
	ValidationScore  int            `json:"validation_score"`
	ValidationData   IdeaValidation `json:"validation_data"`
	Status           string         `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
}

type MVPProject struct {
	ID                  string      `json:"id"`
	UserID              string      `json:"-"` // Never expose in JSON
	IdeaID              *string     `json:"idea_id,omitempty"`
	Name                string      `json:"name"`
	Description         string      `json:"description"`
	Features            []string    `json:"features"`
	TechStack           []string    `json:"tech_stack"`
	Wireframes          []Wireframe `json:"wireframes"`
	GeneratedCode       string      `json:"generated_code"`
	TechRecommendations []string    `json:"tech_recommendations"`
	Timeline            string      `json:"timeline"`
	EstimatedCost       string      `json:"estimated_cost"`
	KeyFeatures         []string    `json:"key_features"`
	Status              string      `json:"status"`
	CreatedAt           time.Time   `json:"created_at"`
}

type PitchDeck struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"-"` // Never expose in JSON
	IdeaID               *string   `json:"idea_id,omitempty"`
	MVPID                *string   `json:"mvp_id,omitempty"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	PitchType            string    `json:"pitch_type"`
	Slides               []Slide   `json:"slides"`
	ExecutiveSummary     string    `json:"executive_summary"`
	KeyMetrics           []string  `json:"key_metrics"`
	InvestmentHighlights []string  `json:"investment_highlights"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

// Generation collaborator payloads

// IdeaValidation is the structured analysis returned for a startup idea.
type IdeaValidation struct {
	ValidationScore  int      `json:"validation_score"`
	MarketSize       string   `json:"market_size"`
	CompetitionLevel string   `json:"competition_level"`
	DemandIndicators []string `json:"demand_indicators"`
	RiskFactors      []string `json:"risk_factors"`
	Opportunities    []string `json:"opportunities"`
	Recommendations  []string `json:"recommendations"`
}

type Wireframe struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// MVPPlan is the structured MVP blueprint returned by the generator.
type MVPPlan struct {
	Wireframes          []Wireframe `json:"wireframes"`
	CodeStructure       string      `json:"code_structure"`
	TechRecommendations []string    `json:"tech_recommendations"`
	DevelopmentTimeline string      `json:"development_timeline"`
	EstimatedCost       string      `json:"estimated_cost"`
	KeyFeatures         []string    `json:"key_features"`
}

// PitchContent is the generated deck payload: the ordered slide list plus
// the summary material stored alongside it.
type PitchContent struct {
	Slides               []Slide  `json:"slides"`
	ExecutiveSummary     string   `json:"executive_summary"`
	KeyMetrics           []string `json:"key_metrics"`
	InvestmentHighlights []string `json:"investment_highlights"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

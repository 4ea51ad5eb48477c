// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/danielhkuo/founderos/models"
)

// ErrGenerationFailed wraps any AI failure: transport errors, empty
// responses, and malformed payloads. Callers surface the message and never
// substitute fallback content.
var ErrGenerationFailed = errors.New("generation failed")

// Generator is the AI collaborator contract consumed by the handlers. It is
// satisfied by *Client and by test fakes.
type Generator interface {
	ValidateIdea(ctx context.Context, brief IdeaBrief) (models.IdeaValidation, error)
	GenerateMVP(ctx context.Context, brief MVPBrief) (models.MVPPlan, error)
	GeneratePitchDeck(ctx context.Context, brief PitchBrief) (models.PitchContent, error)
}

// IdeaBrief is the structured input for idea validation.
type IdeaBrief struct {
	Title            string
	Description      string
	ProblemStatement string
	SolutionApproach string
	TargetMarket     string
}

// MVPBrief is the structured input for MVP plan generation.
type MVPBrief struct {
	Name               string
	Description        string
	Features           []string
	TechStack          []string
	CustomRequirements string
}

// PitchBrief is the structured input for pitch deck generation.
type PitchBrief struct {
	Title                string
	Description          string
	PitchType            string
	FundingGoal          string
	BusinessModel        string
	TargetMarket         string
	TeamInfo             string
	TractionMetrics      string
	CompetitiveAdvantage string
}

// Client calls the Gemini API with JSON response schemas so every reply is
// machine-parseable.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini client from a Developer API key.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("Gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.5-pro"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// ValidateIdea asks the model for a comprehensive validation of a startup
// idea: a 0-100 score plus market analysis lists.
func (c *Client) ValidateIdea(ctx context.Context, brief IdeaBrief) (models.IdeaValidation, error) {
	prompt := fmt.Sprintf(`Analyze this startup idea and provide a comprehensive validation:

Title: %s
Description: %s
Problem Statement: %s
Solution Approach: %s
Target Market: %s

Please analyze and provide:
1. A validation score (0-100) based on market potential, solution fit, and feasibility
2. Estimated market size (e.g., "$2.5B", "$500M")
3. Competition level (Low, Medium, High)
4. 3-5 demand indicators showing market need
5. 2-4 key risk factors
6. 3-5 market opportunities
7. 3-4 actionable recommendations`,
		brief.Title, brief.Description, brief.ProblemStatement,
		brief.SolutionApproach, brief.TargetMarket)

	raw, err := c.generateJSON(ctx, prompt, validationSchema())
	if err != nil {
		return models.IdeaValidation{}, err
	}
	return ParseValidation(raw)
}

// GenerateMVP asks the model for a full MVP plan: wireframes, architecture,
// timeline, cost, and prioritized features.
func (c *Client) GenerateMVP(ctx context.Context, brief MVPBrief) (models.MVPPlan, error) {
	prompt := fmt.Sprintf(`Generate a comprehensive MVP plan for this project:

Name: %s
Description: %s
Desired Features: %s
Tech Stack: %s
Custom Requirements: %s

Please generate:
1. 3-5 wireframe descriptions with specific features for each screen
2. Code structure and architecture recommendations
3. Technology stack recommendations and reasoning
4. Development timeline estimate
5. Estimated development cost range
6. Prioritized key features for MVP`,
		brief.Name, brief.Description, strings.Join(brief.Features, ", "),
		strings.Join(brief.TechStack, ", "), brief.CustomRequirements)

	raw, err := c.generateJSON(ctx, prompt, mvpSchema())
	if err != nil {
		return models.MVPPlan{}, err
	}
	return ParseMVPPlan(raw)
}

// GeneratePitchDeck asks the model for a complete ten-slide deck plus the
// executive summary material stored alongside it.
func (c *Client) GeneratePitchDeck(ctx context.Context, brief PitchBrief) (models.PitchContent, error) {
	prompt := fmt.Sprintf(`Generate a professional pitch deck for this startup:

Title: %s
Description: %s
Pitch Type: %s
Funding Goal: %s
Business Model: %s
Target Market: %s
Team Info: %s
Traction Metrics: %s
Competitive Advantage: %s

Generate a complete 10-slide pitch deck with:
1. Title slide
2. Problem statement
3. Solution overview
4. Market opportunity with specific numbers
5. Business model and revenue streams
6. Traction and key metrics
7. Competition analysis
8. Team introduction
9. Financial projections
10. Funding request and use of funds

Also provide:
- Executive summary (2-3 sentences)
- Key metrics to highlight
- Investment highlights

Each slide should have a title and detailed content object with relevant data.`,
		brief.Title, brief.Description, brief.PitchType, brief.FundingGoal,
		brief.BusinessModel, brief.TargetMarket, brief.TeamInfo,
		brief.TractionMetrics, brief.CompetitiveAdvantage)

	raw, err := c.generateJSON(ctx, prompt, pitchSchema())
	if err != nil {
		return models.PitchContent{}, err
	}
	return ParsePitchContent(raw)
}

// generateJSON sends one prompt with a response schema and returns the raw
// JSON text of the reply.
func (c *Client) generateJSON(ctx context.Context, prompt string, schema *genai.Schema) ([]byte, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}
	return []byte(text), nil
}

// ParseValidation decodes and sanity-checks a validation payload.
func ParseValidation(raw []byte) (models.IdeaValidation, error) {
	var v models.IdeaValidation
	if err := json.Unmarshal(raw, &v); err != nil {
		return models.IdeaValidation{}, fmt.Errorf("%w: malformed validation payload: %v", ErrGenerationFailed, err)
	}
	if v.ValidationScore < 0 || v.ValidationScore > 100 {
		return models.IdeaValidation{}, fmt.Errorf("%w: validation score %d out of range", ErrGenerationFailed, v.ValidationScore)
	}
	return v, nil
}

// ParseMVPPlan decodes an MVP plan payload.
func ParseMVPPlan(raw []byte) (models.MVPPlan, error) {
	var p models.MVPPlan
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.MVPPlan{}, fmt.Errorf("%w: malformed MVP payload: %v", ErrGenerationFailed, err)
	}
	return p, nil
}

// ParsePitchContent decodes a pitch deck payload. A deck without slides is
// rejected so an empty reply never becomes a stored artifact.
func ParsePitchContent(raw []byte) (models.PitchContent, error) {
	var p models.PitchContent
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.PitchContent{}, fmt.Errorf("%w: malformed pitch payload: %v", ErrGenerationFailed, err)
	}
	if len(p.Slides) == 0 {
		return models.PitchContent{}, fmt.Errorf("%w: no slides in response", ErrGenerationFailed)
	}
	return p, nil
}

func validationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"validation_score":  {Type: genai.TypeInteger},
			"market_size":       {Type: genai.TypeString},
			"competition_level": {Type: genai.TypeString},
			"demand_indicators": stringArray(),
			"risk_factors":      stringArray(),
			"opportunities":     stringArray(),
			"recommendations":   stringArray(),
		},
		Required: []string{
			"validation_score", "market_size", "competition_level",
			"demand_indicators", "risk_factors", "opportunities", "recommendations",
		},
	}
}

func mvpSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"wireframes": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":        {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"features":    stringArray(),
					},
					Required: []string{"name", "description", "features"},
				},
			},
			"code_structure":       {Type: genai.TypeString},
			"tech_recommendations": stringArray(),
			"development_timeline": {Type: genai.TypeString},
			"estimated_cost":       {Type: genai.TypeString},
			"key_features":         stringArray(),
		},
		Required: []string{
			"wireframes", "code_structure", "tech_recommendations",
			"development_timeline", "estimated_cost", "key_features",
		},
	}
}

func pitchSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"slides": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"content": {Type: genai.TypeObject},
					},
					Required: []string{"title", "content"},
				},
			},
			"executive_summary":     {Type: genai.TypeString},
			"key_metrics":           stringArray(),
			"investment_highlights": stringArray(),
		},
		Required: []string{
			"slides", "executive_summary", "key_metrics", "investment_highlights",
		},
	}
}

func stringArray() *genai.Schema {
	return &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
}

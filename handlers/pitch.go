// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/founderos/auth"
	"github.com/danielhkuo/founderos/cliparse"
	"github.com/danielhkuo/founderos/deck"
	"github.com/danielhkuo/founderos/gemini"
	"github.com/danielhkuo/founderos/middleware"
	"github.com/danielhkuo/founderos/models"
	"github.com/danielhkuo/founderos/store"
)

type PitchHandler struct {
	db    *sql.DB
	cfg   cliparse.Config
	gen   gemini.Generator
	decks *store.DeckStore
}

func NewPitchHandler(db *sql.DB, cfg cliparse.Config, gen gemini.Generator) *PitchHandler {
	return &PitchHandler{db: db, cfg: cfg, gen: gen, decks: store.New(db)}
}

// CreatePitchDeck handles POST /pitch-decks. The full deck is generated
// before anything is stored; a generation failure stores nothing and
// returns 502.
func (h *PitchHandler) CreatePitchDeck(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	req, ok := h.parsePitchRequest(w, r, userID)
	if !ok {
		return
	}

	content, err := h.gen.GeneratePitchDeck(r.Context(), gemini.PitchBrief{
		Title:                req.Title,
		Description:          req.Description,
		PitchType:            req.PitchType,
		FundingGoal:          req.FundingGoal,
		BusinessModel:        req.BusinessModel,
		TargetMarket:         req.TargetMarket,
		TeamInfo:             req.TeamInfo,
		TractionMetrics:      req.TractionMetrics,
		CompetitiveAdvantage: req.CompetitiveAdvantage,
	})
	if err != nil {
		slog.Error("pitch deck generation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Pitch deck generation failed")
		return
	}

	h.insertDeck(w, userID, req, content, models.StatusCompleted)
}

// CreateDraft handles POST /pitch-decks/draft. It skips generation and
// stores a starter deck built from the request fields, status draft, for
// founders who want to write slides themselves.
func (h *PitchHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	req, ok := h.parsePitchRequest(w, r, userID)
	if !ok {
		return
	}

	brief := deck.StarterBrief{
		Title:           req.Title,
		Description:     req.Description,
		TargetMarket:    req.TargetMarket,
		BusinessModel:   req.BusinessModel,
		TeamInfo:        req.TeamInfo,
		TractionMetrics: req.TractionMetrics,
		FundingGoal:     req.FundingGoal,
	}
	if req.IdeaID != nil && !h.loadIdeaBrief(w, *req.IdeaID, userID, &brief) {
		return
	}
	if req.MVPID != nil && !h.loadMVPBrief(w, *req.MVPID, userID, &brief) {
		return
	}

	h.insertDeck(w, userID, req, models.PitchContent{Slides: deck.StarterSlides(brief)}, models.StatusDraft)
}

// ListPitchDecks handles GET /pitch-decks
func (h *PitchHandler) ListPitchDecks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	rows, err := h.db.Query(`
		SELECT id, user_id, idea_id, mvp_id, title, description, pitch_type,
			slides, executive_summary, key_metrics, investment_highlights,
			status, created_at
		FROM pitch_deck
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		slog.Error("failed to query pitch decks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	decks := []models.PitchDeck{}
	for rows.Next() {
		d, err := scanPitchDeck(rows)
		if err != nil {
			slog.Error("failed to scan pitch deck", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate pitch decks", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, decks)
}

// GetPitchDeck handles GET /pitch-decks/{id}
func (h *PitchHandler) GetPitchDeck(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	deckID := r.PathValue("id")

	row := h.db.QueryRow(`
		SELECT id, user_id, idea_id, mvp_id, title, description, pitch_type,
			slides, executive_summary, key_metrics, investment_highlights,
			status, created_at
		FROM pitch_deck
		WHERE id = $1 AND user_id = $2
	`, deckID, userID)

	d, err := scanPitchDeck(row)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pitch deck not found")
		return
	}
	if err != nil {
		slog.Error("failed to query pitch deck", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, d)
}

// UpdateSlides handles PUT /pitch-decks/{id}/slides. This is the editor save
// path: the full ordered slide list replaces the stored one.
func (h *PitchHandler) UpdateSlides(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	deckID := r.PathValue("id")

	var req models.UpdateSlidesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.Slides) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slides must not be empty")
		return
	}

	err := h.decks.Save(r.Context(), deckID, userID, req.Slides)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pitch deck not found")
		return
	}
	if err != nil {
		slog.Error("failed to save slides", "error", err, "deck_id", deckID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save slides")
		return
	}

	slog.Info("slides updated", "deck_id", deckID, "slide_count", len(req.Slides))

	middleware.JSONResponse(w, http.StatusOK, models.UpdateSlidesResponse{
		SlideCount: len(req.Slides),
	})
}

// DeletePitchDeck handles DELETE /pitch-decks/{id}
func (h *PitchHandler) DeletePitchDeck(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	deckID := r.PathValue("id")

	result, err := h.db.Exec(`
		DELETE FROM pitch_deck WHERE id = $1 AND user_id = $2
	`, deckID, userID)
	if err != nil {
		slog.Error("failed to delete pitch deck", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Pitch deck not found")
		return
	}

	slog.Info("pitch deck deleted", "deck_id", deckID)

	w.WriteHeader(http.StatusNoContent)
}

// parsePitchRequest parses and validates the shared create payload,
// including ownership of any linked idea or MVP project. Writes the error
// response itself and returns ok=false when the caller should stop.
func (h *PitchHandler) parsePitchRequest(w http.ResponseWriter, r *http.Request, userID string) (models.CreatePitchDeckRequest, bool) {
	var req models.CreatePitchDeckRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return req, false
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return req, false
	}
	if req.PitchType == "" {
		req.PitchType = models.PitchTypeInvestor
	}
	switch req.PitchType {
	case models.PitchTypeInvestor, models.PitchTypeCustomer, models.PitchTypeDemoDay:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid pitch_type")
		return req, false
	}

	if req.IdeaID != nil && !h.ownsRow(w, "startup_idea", *req.IdeaID, userID, "Idea not found") {
		return req, false
	}
	if req.MVPID != nil && !h.ownsRow(w, "mvp_project", *req.MVPID, userID, "MVP project not found") {
		return req, false
	}

	return req, true
}

func (h *PitchHandler) ownsRow(w http.ResponseWriter, table, id, userID, notFound string) bool {
	var found string
	err := h.db.QueryRow(
		"SELECT id FROM "+table+" WHERE id = $1 AND user_id = $2", id, userID,
	).Scan(&found)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, notFound)
		return false
	}
	if err != nil {
		slog.Error("failed to query "+table, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	return true
}

// loadIdeaBrief copies the linked idea's problem and solution into the
// starter brief so a hand-written draft opens on the validated framing.
func (h *PitchHandler) loadIdeaBrief(w http.ResponseWriter, ideaID, userID string, brief *deck.StarterBrief) bool {
	err := h.db.QueryRow(`
		SELECT problem_statement, solution_approach
		FROM startup_idea
		WHERE id = $1 AND user_id = $2
	`, ideaID, userID).Scan(&brief.ProblemStatement, &brief.SolutionApproach)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return false
	}
	if err != nil {
		slog.Error("failed to query startup_idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	return true
}

// loadMVPBrief copies the linked MVP project's feature list into the
// starter brief's Solution slide.
func (h *PitchHandler) loadMVPBrief(w http.ResponseWriter, mvpID, userID string, brief *deck.StarterBrief) bool {
	var features sql.NullString
	err := h.db.QueryRow(`
		SELECT features
		FROM mvp_project
		WHERE id = $1 AND user_id = $2
	`, mvpID, userID).Scan(&features)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "MVP project not found")
		return false
	}
	if err != nil {
		slog.Error("failed to query mvp_project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	if features.Valid && features.String != "" {
		if err := json.Unmarshal([]byte(features.String), &brief.Features); err != nil {
			slog.Error("failed to decode mvp features", "error", err, "mvp_id", mvpID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return false
		}
	}
	return true
}

// insertDeck stores a deck and writes the 201 response.
func (h *PitchHandler) insertDeck(w http.ResponseWriter, userID string, req models.CreatePitchDeckRequest, content models.PitchContent, status string) {
	deckID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate deck ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pitch deck")
		return
	}

	slidesJSON, err := json.Marshal(content.Slides)
	if err != nil {
		slog.Error("failed to marshal slides", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pitch deck")
		return
	}
	keyMetricsJSON, _ := json.Marshal(content.KeyMetrics)
	highlightsJSON, _ := json.Marshal(content.InvestmentHighlights)

	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO pitch_deck (id, user_id, idea_id, mvp_id, title, description,
			pitch_type, slides, executive_summary, key_metrics,
			investment_highlights, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, deckID, userID, req.IdeaID, req.MVPID, req.Title, req.Description,
		req.PitchType, string(slidesJSON), content.ExecutiveSummary,
		string(keyMetricsJSON), string(highlightsJSON), status, now)

	if err != nil {
		slog.Error("failed to insert pitch deck", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create pitch deck")
		return
	}

	slog.Info("pitch deck created", "deck_id", deckID, "status", status, "slide_count", len(content.Slides))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePitchDeckResponse{
		PitchDeck: models.PitchDeck{
			ID:                   deckID,
			UserID:               userID,
			IdeaID:               req.IdeaID,
			MVPID:                req.MVPID,
			Title:                req.Title,
			Description:          req.Description,
			PitchType:            req.PitchType,
			Slides:               content.Slides,
			ExecutiveSummary:     content.ExecutiveSummary,
			KeyMetrics:           content.KeyMetrics,
			InvestmentHighlights: content.InvestmentHighlights,
			Status:               status,
			CreatedAt:            now,
		},
	})
}

func scanPitchDeck(row rowScanner) (models.PitchDeck, error) {
	var d models.PitchDeck
	var ideaID, mvpID sql.NullString
	var slides string
	var executiveSummary, keyMetrics, highlights sql.NullString

	err := row.Scan(&d.ID, &d.UserID, &ideaID, &mvpID, &d.Title, &d.Description,
		&d.PitchType, &slides, &executiveSummary, &keyMetrics, &highlights,
		&d.Status, &d.CreatedAt)
	if err != nil {
		return models.PitchDeck{}, err
	}

	if ideaID.Valid {
		d.IdeaID = &ideaID.String
	}
	if mvpID.Valid {
		d.MVPID = &mvpID.String
	}
	d.ExecutiveSummary = executiveSummary.String

	if err := json.Unmarshal([]byte(slides), &d.Slides); err != nil {
		return models.PitchDeck{}, err
	}
	if keyMetrics.Valid && keyMetrics.String != "" {
		if err := json.Unmarshal([]byte(keyMetrics.String), &d.KeyMetrics); err != nil {
			return models.PitchDeck{}, err
		}
	}
	if highlights.Valid && highlights.String != "" {
		if err := json.Unmarshal([]byte(highlights.String), &d.InvestmentHighlights); err != nil {
			return models.PitchDeck{}, err
		}
	}

	return d, nil
}

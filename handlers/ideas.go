// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/founderos/auth"
	"github.com/danielhkuo/founderos/cliparse"
	"github.com/danielhkuo/founderos/gemini"
	"github.com/danielhkuo/founderos/middleware"
	"github.com/danielhkuo/founderos/models"
)

type IdeaHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	gen gemini.Generator
}

func NewIdeaHandler(db *sql.DB, cfg cliparse.Config, gen gemini.Generator) *IdeaHandler {
	return &IdeaHandler{db: db, cfg: cfg, gen: gen}
}

// CreateIdea handles POST /ideas. The idea is validated by the AI
// collaborator before anything is stored; a generation failure stores
// nothing and returns 502.
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.CreateIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required")
		return
	}

	validation, err := h.gen.ValidateIdea(r.Context(), gemini.IdeaBrief{
		Title:            req.Title,
		Description:      req.Description,
		ProblemStatement: req.ProblemStatement,
		SolutionApproach: req.SolutionApproach,
		TargetMarket:     req.TargetMarket,
	})
	if err != nil {
		slog.Error("idea validation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Idea validation failed")
		return
	}

	ideaID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate idea ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create idea")
		return
	}

	status := models.IdeaStatusValidating
	if validation.ValidationScore >= models.ValidatedScoreThreshold {
		status = models.IdeaStatusValidated
	}

	validationJSON, err := json.Marshal(validation)
	if err != nil {
		slog.Error("failed to marshal validation data", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create idea")
		return
	}

	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO startup_idea (id, user_id, title, description, problem_statement,
			solution_approach, target_market, validation_score, validation_data, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, ideaID, userID, req.Title, req.Description, req.ProblemStatement,
		req.SolutionApproach, req.TargetMarket, validation.ValidationScore,
		string(validationJSON), status, now)

	if err != nil {
		slog.Error("failed to insert idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create idea")
		return
	}

	slog.Info("idea created", "idea_id", ideaID, "score", validation.ValidationScore, "status", status)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateIdeaResponse{
		Idea: models.StartupIdea{
			ID:               ideaID,
			UserID:           userID,
			Title:            req.Title,
			Description:      req.Description,
			ProblemStatement: req.ProblemStatement,
			SolutionApproach: req.SolutionApproach,
			TargetMarket:     req.TargetMarket,
			ValidationScore:  validation.ValidationScore,
			ValidationData:   validation,
			Status:           status,
			CreatedAt:        now,
		},
		ValidationScore: validation.ValidationScore,
		ValidationData:  validation,
	})
}

// ListIdeas handles GET /ideas
func (h *IdeaHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	rows, err := h.db.Query(`
		SELECT id, user_id, title, description, problem_statement, solution_approach,
			target_market, validation_score, validation_data, status, created_at
		FROM startup_idea
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		slog.Error("failed to query ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	ideas := []models.StartupIdea{}
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			slog.Error("failed to scan idea", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate ideas", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ideas)
}

// GetIdea handles GET /ideas/{id}
func (h *IdeaHandler) GetIdea(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	ideaID := r.PathValue("id")

	row := h.db.QueryRow(`
		SELECT id, user_id, title, description, problem_statement, solution_approach,
			target_market, validation_score, validation_data, status, created_at
		FROM startup_idea
		WHERE id = $1 AND user_id = $2
	`, ideaID, userID)

	idea, err := scanIdea(row)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return
	}
	if err != nil {
		slog.Error("failed to query idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, idea)
}

// DeleteIdea handles DELETE /ideas/{id}
func (h *IdeaHandler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	ideaID := r.PathValue("id")

	result, err := h.db.Exec(`
		DELETE FROM startup_idea WHERE id = $1 AND user_id = $2
	`, ideaID, userID)
	if err != nil {
		slog.Error("failed to delete idea", "error", err)
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
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return
	}

	slog.Info("idea deleted", "idea_id", ideaID)

	w.WriteHeader(http.StatusNoContent)
}

// rowScanner covers *sql.Row and *sql.Rows so list and get share one scan.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (models.StartupIdea, error) {
	var idea models.StartupIdea
	var validationJSON sql.NullString

	err := row.Scan(&idea.ID, &idea.UserID, &idea.Title, &idea.Description,
		&idea.ProblemStatement, &idea.SolutionApproach, &idea.TargetMarket,
		&idea.ValidationScore, &validationJSON, &idea.Status, &idea.CreatedAt)
	if err != nil {
		return models.StartupIdea{}, err
	}

	if validationJSON.Valid && validationJSON.String != "" {
		if err := json.Unmarshal([]byte(validationJSON.String), &idea.ValidationData); err != nil {
			return models.StartupIdea{}, err
		}
	}

	return idea, nil
}

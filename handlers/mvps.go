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

type MVPHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	gen gemini.Generator
}

func NewMVPHandler(db *sql.DB, cfg cliparse.Config, gen gemini.Generator) *MVPHandler {
	return &MVPHandler{db: db, cfg: cfg, gen: gen}
}

// CreateMVP handles POST /mvps. The plan is generated before anything is
// stored; a generation failure stores nothing and returns 502.
func (h *MVPHandler) CreateMVP(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.CreateMVPRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "description is required")
		return
	}

	// A linked idea must exist and belong to the caller.
	if req.IdeaID != nil {
		if !h.ownsIdea(w, *req.IdeaID, userID) {
			return
		}
	}

	plan, err := h.gen.GenerateMVP(r.Context(), gemini.MVPBrief{
		Name:               req.Name,
		Description:        req.Description,
		Features:           req.Features,
		TechStack:          req.TechStack,
		CustomRequirements: req.CustomRequirements,
	})
	if err != nil {
		slog.Error("MVP generation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "MVP generation failed")
		return
	}

	projectID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate project ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create MVP project")
		return
	}

	featuresJSON, _ := json.Marshal(req.Features)
	techStackJSON, _ := json.Marshal(req.TechStack)
	wireframesJSON, _ := json.Marshal(plan.Wireframes)
	techRecsJSON, _ := json.Marshal(plan.TechRecommendations)
	keyFeaturesJSON, _ := json.Marshal(plan.KeyFeatures)

	now := time.Now()
	_, err = h.db.Exec(`
		INSERT INTO mvp_project (id, user_id, idea_id, name, description, features,
			tech_stack, wireframes, generated_code, tech_recommendations, timeline,
			estimated_cost, key_features, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, projectID, userID, req.IdeaID, req.Name, req.Description, string(featuresJSON),
		string(techStackJSON), string(wireframesJSON), plan.CodeStructure,
		string(techRecsJSON), plan.DevelopmentTimeline, plan.EstimatedCost,
		string(keyFeaturesJSON), models.StatusCompleted, now)

	if err != nil {
		slog.Error("failed to insert MVP project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create MVP project")
		return
	}

	slog.Info("MVP project created", "project_id", projectID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateMVPResponse{
		Project: models.MVPProject{
			ID:                  projectID,
			UserID:              userID,
			IdeaID:              req.IdeaID,
			Name:                req.Name,
			Description:         req.Description,
			Features:            req.Features,
			TechStack:           req.TechStack,
			Wireframes:          plan.Wireframes,
			GeneratedCode:       plan.CodeStructure,
			TechRecommendations: plan.TechRecommendations,
			Timeline:            plan.DevelopmentTimeline,
			EstimatedCost:       plan.EstimatedCost,
			KeyFeatures:         plan.KeyFeatures,
			Status:              models.StatusCompleted,
			CreatedAt:           now,
		},
	})
}

// ListMVPs handles GET /mvps
func (h *MVPHandler) ListMVPs(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	rows, err := h.db.Query(`
		SELECT id, user_id, idea_id, name, description, features, tech_stack,
			wireframes, generated_code, tech_recommendations, timeline,
			estimated_cost, key_features, status, created_at
		FROM mvp_project
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		slog.Error("failed to query MVP projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	projects := []models.MVPProject{}
	for rows.Next() {
		project, err := scanMVP(rows)
		if err != nil {
			slog.Error("failed to scan MVP project", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate MVP projects", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, projects)
}

// GetMVP handles GET /mvps/{id}
func (h *MVPHandler) GetMVP(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	projectID := r.PathValue("id")

	row := h.db.QueryRow(`
		SELECT id, user_id, idea_id, name, description, features, tech_stack,
			wireframes, generated_code, tech_recommendations, timeline,
			estimated_cost, key_features, status, created_at
		FROM mvp_project
		WHERE id = $1 AND user_id = $2
	`, projectID, userID)

	project, err := scanMVP(row)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "MVP project not found")
		return
	}
	if err != nil {
		slog.Error("failed to query MVP project", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, project)
}

// DeleteMVP handles DELETE /mvps/{id}
func (h *MVPHandler) DeleteMVP(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	projectID := r.PathValue("id")

	result, err := h.db.Exec(`
		DELETE FROM mvp_project WHERE id = $1 AND user_id = $2
	`, projectID, userID)
	if err != nil {
		slog.Error("failed to delete MVP project", "error", err)
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
		middleware.ErrorResponse(w, http.StatusNotFound, "MVP project not found")
		return
	}

	slog.Info("MVP project deleted", "project_id", projectID)

	w.WriteHeader(http.StatusNoContent)
}

// ownsIdea verifies the idea exists and belongs to userID, writing the error
// response itself. Returns false when the caller should stop.
func (h *MVPHandler) ownsIdea(w http.ResponseWriter, ideaID, userID string) bool {
	var found string
	err := h.db.QueryRow(`
		SELECT id FROM startup_idea WHERE id = $1 AND user_id = $2
	`, ideaID, userID).Scan(&found)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Idea not found")
		return false
	}
	if err != nil {
		slog.Error("failed to query idea", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return false
	}
	return true
}

func scanMVP(row rowScanner) (models.MVPProject, error) {
	var p models.MVPProject
	var ideaID sql.NullString
	var features, techStack, wireframes, techRecs, keyFeatures sql.NullString
	var generatedCode, timeline, estimatedCost sql.NullString

	err := row.Scan(&p.ID, &p.UserID, &ideaID, &p.Name, &p.Description,
		&features, &techStack, &wireframes, &generatedCode, &techRecs,
		&timeline, &estimatedCost, &keyFeatures, &p.Status, &p.CreatedAt)
	if err != nil {
		return models.MVPProject{}, err
	}

	if ideaID.Valid {
		p.IdeaID = &ideaID.String
	}
	p.GeneratedCode = generatedCode.String
	p.Timeline = timeline.String
	p.EstimatedCost = estimatedCost.String

	for _, col := range []struct {
		raw  sql.NullString
		dest any
	}{
		{features, &p.Features},
		{techStack, &p.TechStack},
		{wireframes, &p.Wireframes},
		{techRecs, &p.TechRecommendations},
		{keyFeatures, &p.KeyFeatures},
	} {
		if col.raw.Valid && col.raw.String != "" {
			if err := json.Unmarshal([]byte(col.raw.String), col.dest); err != nil {
				return models.MVPProject{}, err
			}
		}
	}

	return p, nil
}

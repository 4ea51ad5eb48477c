// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/founderos/auth"
	"github.com/danielhkuo/founderos/cliparse"
	"github.com/danielhkuo/founderos/middleware"
	"github.com/danielhkuo/founderos/models"
)

type AccountHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAccountHandler(db *sql.DB, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{db: db, cfg: cfg}
}

// Register handles POST /auth/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < 8 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	userID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate user ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO account (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, req.Email, passwordHash, time.Now())

	if err != nil {
		if isUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
			return
		}
		slog.Error("failed to insert account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	token, err := h.createSession(userID)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("account registered", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		UserID: userID,
		Token:  token,
	})
}

// Login handles POST /auth/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	var userID, passwordHash string
	err := h.db.QueryRow(`
		SELECT id, password_hash FROM account WHERE email = $1
	`, req.Email).Scan(&userID, &passwordHash)

	if err == sql.ErrNoRows {
		// Same response as a wrong password so probing for accounts fails.
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(passwordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		slog.Error("failed to check password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.createSession(userID)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("login succeeded", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		UserID: userID,
		Token:  token,
	})
}

// Me handles GET /auth/me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var info models.UserInfo
	err := h.db.QueryRow(`
		SELECT id, email, created_at FROM account WHERE id = $1
	`, userID).Scan(&info.ID, &info.Email, &info.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Account not found")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, info)
}

// createSession mints a new session token, stores its hash, and returns the
// plaintext token. The plaintext is never persisted.
func (h *AccountHandler) createSession(userID string) (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	_, err = h.db.Exec(`
		INSERT INTO session (token_hash, user_id, created_at)
		VALUES ($1, $2, $3)
	`, auth.HashToken(token, h.cfg.SessionTokenSalt), userID, time.Now())
	if err != nil {
		return "", err
	}

	return token, nil
}

// isUniqueViolation matches unique-constraint errors from both lib/pq and
// modernc sqlite without importing driver error types.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique")
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/founderos/middleware"
	"github.com/danielhkuo/founderos/models"
	"github.com/danielhkuo/founderos/testutil"
)

func TestRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAccountHandler(db, cfg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid registration",
			requestBody: models.RegisterRequest{
				Email:    "alice@example.com",
				Password: "correct horse battery",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			requestBody: models.RegisterRequest{
				Email:    "alice@example.com",
				Password: "another password",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "email case is normalized",
			requestBody: models.RegisterRequest{
				Email:    "ALICE@example.com",
				Password: "another password",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "missing email",
			requestBody: models.RegisterRequest{
				Password: "correct horse battery",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "short password",
			requestBody: models.RegisterRequest{
				Email:    "bob@example.com",
				Password: "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/register", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Register(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.AuthResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.UserID == "" {
					t.Error("Expected non-empty user_id")
				}
				if resp.Token == "" {
					t.Error("Expected non-empty token")
				}

				// The stored password must not be the plaintext
				var hash string
				err := db.QueryRow("SELECT password_hash FROM account WHERE id = $1", resp.UserID).Scan(&hash)
				if err != nil {
					t.Fatalf("Failed to query account: %v", err)
				}
				if hash == "correct horse battery" {
					t.Error("Password stored in plaintext")
				}

				// The stored session must not be the plaintext token
				var count int
				err = db.QueryRow("SELECT COUNT(*) FROM session WHERE token_hash = $1", resp.Token).Scan(&count)
				if err != nil {
					t.Fatalf("Failed to query session: %v", err)
				}
				if count != 0 {
					t.Error("Session token stored in plaintext")
				}
			}
		})
	}
}

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAccountHandler(db, cfg)

	// Register an account to log into
	req := testutil.MakeRequest("POST", "/auth/register", models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	}, nil)
	w := httptest.NewRecorder()
	handler.Register(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	tests := []struct {
		name           string
		requestBody    models.LoginRequest
		expectedStatus int
	}{
		{
			name: "valid login",
			requestBody: models.LoginRequest{
				Email:    "alice@example.com",
				Password: "correct horse battery",
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			requestBody: models.LoginRequest{
				Email:    "alice@example.com",
				Password: "wrong password",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown email",
			requestBody: models.LoginRequest{
				Email:    "nobody@example.com",
				Password: "correct horse battery",
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "missing password",
			requestBody: models.LoginRequest{
				Email: "alice@example.com",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/login", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.Login(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.AuthResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Token == "" {
					t.Error("Expected non-empty token")
				}
			}
		})
	}
}

func TestMe(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewAccountHandler(db, cfg)

	userID, token := testutil.CreateTestUser(t, db, cfg, "alice@example.com")
	authed := middleware.WithAuth(db, cfg.SessionTokenSalt, handler.Me)

	t.Run("valid session", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/auth/me", nil, testutil.AuthHeader(token))
		w := httptest.NewRecorder()

		authed(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var info models.UserInfo
		testutil.AssertJSON(t, w, &info)
		if info.ID != userID {
			t.Errorf("Expected user ID %s, got %s", userID, info.ID)
		}
		if info.Email != "alice@example.com" {
			t.Errorf("Expected email alice@example.com, got %s", info.Email)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/auth/me", nil, nil)
		w := httptest.NewRecorder()

		authed(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("bogus token", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/auth/me", nil, testutil.AuthHeader("not-a-real-token"))
		w := httptest.NewRecorder()

		authed(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

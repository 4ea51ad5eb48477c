// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/founderos/auth"
	"github.com/danielhkuo/founderos/cliparse"
	"github.com/danielhkuo/founderos/db"
	"github.com/danielhkuo/founderos/gemini"
	"github.com/danielhkuo/founderos/models"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// A single connection keeps the in-memory database alive for the test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3410,
		DatabaseURL:      ":memory:",
		DatabaseType:     "sqlite",
		SessionTokenSalt: "test-session-salt",
		GeminiAPIKey:     "test-api-key",
		GeminiModel:      "gemini-2.5-pro",
	}
}

// CreateTestUser creates an account with a live session and returns the user
// ID and the plaintext session token.
func CreateTestUser(t *testing.T, conn *sql.DB, cfg cliparse.Config, email string) (userID, token string) {
	t.Helper()

	userID, _ = auth.GenerateID(16)
	passwordHash, err := auth.HashPassword("test-password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO account (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, email, passwordHash, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err = auth.GenerateSessionToken()
	if err != nil {
		t.Fatalf("Failed to generate session token: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO session (token_hash, user_id, created_at)
		VALUES ($1, $2, $3)
	`, auth.HashToken(token, cfg.SessionTokenSalt), userID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return userID, token
}

// CreateTestIdea inserts a validated idea for the user and returns its ID
func CreateTestIdea(t *testing.T, conn *sql.DB, userID string) string {
	t.Helper()

	ideaID, _ := auth.GenerateID(16)
	validationJSON, _ := json.Marshal(models.IdeaValidation{
		ValidationScore: 80,
		MarketSize:      "$1B",
	})

	_, err := conn.Exec(`
		INSERT INTO startup_idea (id, user_id, title, description, problem_statement,
			solution_approach, target_market, validation_score, validation_data, status, created_at)
		VALUES ($1, $2, 'Test Idea', 'A test idea', 'A problem', 'A solution',
			'Everyone', 80, $3, 'validated', $4)
	`, ideaID, userID, string(validationJSON), time.Now())
	if err != nil {
		t.Fatalf("Failed to create test idea: %v", err)
	}

	return ideaID
}

// CreateTestMVP inserts a completed MVP project for the user and returns its ID
func CreateTestMVP(t *testing.T, conn *sql.DB, userID string, features []string) string {
	t.Helper()

	projectID, _ := auth.GenerateID(16)
	featuresJSON, _ := json.Marshal(features)

	_, err := conn.Exec(`
		INSERT INTO mvp_project (id, user_id, name, description, features, status, created_at)
		VALUES ($1, $2, 'Test MVP', 'A test MVP', $3, 'completed', $4)
	`, projectID, userID, string(featuresJSON), time.Now())
	if err != nil {
		t.Fatalf("Failed to create test MVP: %v", err)
	}

	return projectID
}

// CreateTestDeck inserts a pitch deck with the given slides and returns its ID
func CreateTestDeck(t *testing.T, conn *sql.DB, userID string, slides []models.Slide) string {
	t.Helper()

	deckID, _ := auth.GenerateID(16)
	slidesJSON, err := json.Marshal(slides)
	if err != nil {
		t.Fatalf("Failed to marshal slides: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO pitch_deck (id, user_id, title, description, pitch_type,
			slides, executive_summary, key_metrics, investment_highlights, status, created_at)
		VALUES ($1, $2, 'Test Deck', 'A test deck', 'investor', $3, 'Summary',
			'[]', '[]', 'completed', $4)
	`, deckID, userID, string(slidesJSON), time.Now())
	if err != nil {
		t.Fatalf("Failed to create test deck: %v", err)
	}

	return deckID
}

// FakeGenerator is a canned gemini.Generator for handler tests. Set Err to
// make every call fail.
type FakeGenerator struct {
	Validation models.IdeaValidation
	Plan       models.MVPPlan
	Pitch      models.PitchContent
	Err        error
}

func (f *FakeGenerator) ValidateIdea(ctx context.Context, brief gemini.IdeaBrief) (models.IdeaValidation, error) {
	if f.Err != nil {
		return models.IdeaValidation{}, f.Err
	}
	return f.Validation, nil
}

func (f *FakeGenerator) GenerateMVP(ctx context.Context, brief gemini.MVPBrief) (models.MVPPlan, error) {
	if f.Err != nil {
		return models.MVPPlan{}, f.Err
	}
	return f.Plan, nil
}

func (f *FakeGenerator) GeneratePitchDeck(ctx context.Context, brief gemini.PitchBrief) (models.PitchContent, error) {
	if f.Err != nil {
		return models.PitchContent{}, f.Err
	}
	return f.Pitch, nil
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader returns the session header map for a token
func AuthHeader(token string) map[string]string {
	return map[string]string{"X-Session-Token": token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

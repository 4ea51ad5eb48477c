// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/founderos/cliparse"
	"github.com/danielhkuo/founderos/gemini"
	"github.com/danielhkuo/founderos/handlers"
	"github.com/danielhkuo/founderos/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, gen gemini.Generator) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg)
	ideaHandler := handlers.NewIdeaHandler(db, cfg, gen)
	mvpHandler := handlers.NewMVPHandler(db, cfg, gen)
	pitchHandler := handlers.NewPitchHandler(db, cfg, gen)

	// authed wraps a handler with request logging and session auth.
	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithAuth(db, cfg.SessionTokenSalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth (public)
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(accountHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(accountHandler.Login))
	mux.HandleFunc("GET /auth/me", authed(accountHandler.Me))

	// Startup ideas
	mux.HandleFunc("POST /ideas", authed(ideaHandler.CreateIdea))
	mux.HandleFunc("GET /ideas", authed(ideaHandler.ListIdeas))
	mux.HandleFunc("GET /ideas/{id}", authed(ideaHandler.GetIdea))
	mux.HandleFunc("DELETE /ideas/{id}", authed(ideaHandler.DeleteIdea))

	// MVP projects
	mux.HandleFunc("POST /mvps", authed(mvpHandler.CreateMVP))
	mux.HandleFunc("GET /mvps", authed(mvpHandler.ListMVPs))
	mux.HandleFunc("GET /mvps/{id}", authed(mvpHandler.GetMVP))
	mux.HandleFunc("DELETE /mvps/{id}", authed(mvpHandler.DeleteMVP))

	// Pitch decks
	mux.HandleFunc("POST /pitch-decks", authed(pitchHandler.CreatePitchDeck))
	mux.HandleFunc("POST /pitch-decks/draft", authed(pitchHandler.CreateDraft))
	mux.HandleFunc("GET /pitch-decks", authed(pitchHandler.ListPitchDecks))
	mux.HandleFunc("GET /pitch-decks/{id}", authed(pitchHandler.GetPitchDeck))
	mux.HandleFunc("PUT /pitch-decks/{id}/slides", authed(pitchHandler.UpdateSlides))
	mux.HandleFunc("DELETE /pitch-decks/{id}", authed(pitchHandler.DeletePitchDeck))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("founderos API v1"))
	})

	return mux
}

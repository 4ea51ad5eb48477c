// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the FounderOS API server.

FounderOS helps founders validate startup ideas, plan MVPs, and build pitch
decks. Idea validation, MVP planning, and deck generation are delegated to
the Gemini API; decks are then edited and presented through the deck package.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=founderos.db SESSION_TOKEN_SALT=... GEMINI_API_KEY=... go run main.go

Or with flags:

	go run main.go -p 3410 -t postgres -d "postgres://..."

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string (postgres URL or sqlite file path)
  - SESSION_TOKEN_SALT (--session-salt): Secret for session token HMAC
  - GEMINI_API_KEY (--gemini-key): Gemini Developer API key

Optional settings:

  - PORT (-p): Server port (default: 3410)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - GEMINI_MODEL (-m): Model name (default: gemini-2.5-pro)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, ideas, mvps, pitch decks)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Session auth, CORS, logging, JSON helpers
  - models: Request/response and domain types
  - auth: Password hashing and session tokens
  - gemini: AI generation collaborator
  - deck: Slide deck model, editor, presenter, rendering
  - store: Persisted deck loading and saving
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

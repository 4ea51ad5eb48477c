// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package handlers contains the HTTP handlers for the API.
//
// AccountHandler covers registration, login, and the current-user endpoint.
// IdeaHandler, MVPHandler, and PitchHandler expose owner-scoped CRUD over
// startup ideas, MVP projects, and pitch decks; the create paths call the
// Gemini collaborator first and store nothing when generation fails.
// PitchHandler additionally serves the editor save path for slide lists.
package handlers

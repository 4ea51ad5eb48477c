// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// dialect is "postgres" or "sqlite"; the two differ only in the JSON column type.
func CreateSchema(db *sql.DB, dialect string) error {
	var schema string
	switch dialect {
	case "postgres":
		schema = schemaPostgres
	case "sqlite":
		schema = schemaSQLite
	default:
		return fmt.Errorf("unknown database dialect %q", dialect)
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaPostgres = `
-- Accounts
CREATE TABLE IF NOT EXISTS account (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Sessions (token is stored hashed)
CREATE TABLE IF NOT EXISTS session (
    token_hash TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_session_user_id ON session(user_id);

-- Startup ideas
CREATE TABLE IF NOT EXISTS startup_idea (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    description TEXT,
    problem_statement TEXT,
    solution_approach TEXT,
    target_market TEXT,
    validation_score INTEGER NOT NULL DEFAULT 0,
    validation_data JSONB,
    status TEXT NOT NULL DEFAULT 'validating' CHECK (status IN ('validating', 'validated')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_startup_idea_user_id ON startup_idea(user_id);

-- MVP projects
CREATE TABLE IF NOT EXISTS mvp_project (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    idea_id TEXT REFERENCES startup_idea(id) ON DELETE SET NULL,
    name TEXT NOT NULL,
    description TEXT,
    features JSONB,
    tech_stack JSONB,
    wireframes JSONB,
    generated_code TEXT,
    tech_recommendations JSONB,
    timeline TEXT,
    estimated_cost TEXT,
    key_features JSONB,
    status TEXT NOT NULL DEFAULT 'completed' CHECK (status IN ('draft', 'completed')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_mvp_project_user_id ON mvp_project(user_id);

-- Pitch decks (slides is the ordered JSON slide sequence)
CREATE TABLE IF NOT EXISTS pitch_deck (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    idea_id TEXT REFERENCES startup_idea(id) ON DELETE SET NULL,
    mvp_id TEXT REFERENCES mvp_project(id) ON DELETE SET NULL,
    title TEXT NOT NULL,
    description TEXT,
    pitch_type TEXT NOT NULL DEFAULT 'investor',
    slides JSONB NOT NULL,
    executive_summary TEXT,
    key_metrics JSONB,
    investment_highlights JSONB,
    status TEXT NOT NULL DEFAULT 'completed' CHECK (status IN ('draft', 'completed')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pitch_deck_user_id ON pitch_deck(user_id);
`

const schemaSQLite = `
-- Accounts
CREATE TABLE IF NOT EXISTS account (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Sessions (token is stored hashed)
CREATE TABLE IF NOT EXISTS session (
    token_hash TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_session_user_id ON session(user_id);

-- Startup ideas
CREATE TABLE IF NOT EXISTS startup_idea (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    description TEXT,
    problem_statement TEXT,
    solution_approach TEXT,
    target_market TEXT,
    validation_score INTEGER NOT NULL DEFAULT 0,
    validation_data TEXT,
    status TEXT NOT NULL DEFAULT 'validating' CHECK (status IN ('validating', 'validated')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_startup_idea_user_id ON startup_idea(user_id);

-- MVP projects
CREATE TABLE IF NOT EXISTS mvp_project (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    idea_id TEXT REFERENCES startup_idea(id) ON DELETE SET NULL,
    name TEXT NOT NULL,
    description TEXT,
    features TEXT,
    tech_stack TEXT,
    wireframes TEXT,
    generated_code TEXT,
    tech_recommendations TEXT,
    timeline TEXT,
    estimated_cost TEXT,
    key_features TEXT,
    status TEXT NOT NULL DEFAULT 'completed' CHECK (status IN ('draft', 'completed')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_mvp_project_user_id ON mvp_project(user_id);

-- Pitch decks (slides is the ordered JSON slide sequence)
CREATE TABLE IF NOT EXISTS pitch_deck (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES account(id) ON DELETE CASCADE,
    idea_id TEXT REFERENCES startup_idea(id) ON DELETE SET NULL,
    mvp_id TEXT REFERENCES mvp_project(id) ON DELETE SET NULL,
    title TEXT NOT NULL,
    description TEXT,
    pitch_type TEXT NOT NULL DEFAULT 'investor',
    slides TEXT NOT NULL,
    executive_summary TEXT,
    key_metrics TEXT,
    investment_highlights TEXT,
    status TEXT NOT NULL DEFAULT 'completed' CHECK (status IN ('draft', 'completed')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_pitch_deck_user_id ON pitch_deck(user_id);
`

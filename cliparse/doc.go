// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3410)
  - DatabaseURL: Connection string or sqlite path (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - SessionTokenSalt: Secret for session token hashing (required)
  - GeminiAPIKey: Gemini Developer API key (required)
  - GeminiModel: Generation model (default: gemini-2.5-pro)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-m             Gemini model
	--session-salt Session token salt
	--gemini-key   Gemini API key

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	GEMINI_MODEL       → -m
	SESSION_TOKEN_SALT → --session-salt
	GEMINI_API_KEY     → --gemini-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - SESSION_TOKEN_SALT must be provided
  - GEMINI_API_KEY must be provided
  - DATABASE_TYPE, when set, must be sqlite or postgres
*/
package cliparse

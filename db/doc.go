// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the configured dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The postgres and sqlite schemas are identical except that JSON columns are
JSONB on postgres and TEXT on sqlite.

# Tables

The schema includes:

  - account: Registered users (email unique, bcrypt password hash)
  - session: Active sessions keyed by hashed token
  - startup_idea: Idea records with AI validation results
  - mvp_project: MVP briefs with generated plan artifacts
  - pitch_deck: Deck metadata plus the ordered slide sequence as JSON

# Relationships

	account 1──* session
	account 1──* startup_idea
	account 1──* mvp_project
	account 1──* pitch_deck
	startup_idea 1──* mvp_project (optional link)
	startup_idea 1──* pitch_deck (optional link)
	mvp_project 1──* pitch_deck (optional link)

Owner foreign keys use ON DELETE CASCADE; optional artifact links use
ON DELETE SET NULL so deleting an idea keeps its derived artifacts.

# Indexes

Performance indexes on:

  - session.user_id
  - startup_idea.user_id
  - mvp_project.user_id
  - pitch_deck.user_id
*/
package db

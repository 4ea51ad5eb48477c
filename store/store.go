// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/founderos/deck"
	"github.com/danielhkuo/founderos/models"
)

// ErrNotFound is returned when no pitch deck matches the id and owner.
// A deck owned by a different user is indistinguishable from a missing one.
var ErrNotFound = errors.New("pitch deck not found")

// DeckStore persists the ordered slide sequence of pitch decks as a JSON
// blob, keyed by deck id and owner id. Save is last-write-wins.
type DeckStore struct {
	db *sql.DB
}

// New creates a DeckStore over an open database connection.
func New(db *sql.DB) *DeckStore {
	return &DeckStore{db: db}
}

// Load reads the ordered slide sequence of one deck.
func (s *DeckStore) Load(ctx context.Context, deckID, userID string) ([]models.Slide, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT slides FROM pitch_deck WHERE id = $1 AND user_id = $2
	`, deckID, userID).Scan(&raw)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slides: %w", err)
	}

	var slides []models.Slide
	if err := json.Unmarshal(raw, &slides); err != nil {
		return nil, fmt.Errorf("failed to decode slides: %w", err)
	}
	return slides, nil
}

// Save replaces the slide sequence of one deck. ErrNotFound when the deck
// does not exist or belongs to a different owner; nothing is written then.
func (s *DeckStore) Save(ctx context.Context, deckID, userID string, slides []models.Slide) error {
	raw, err := json.Marshal(slides)
	if err != nil {
		return fmt.Errorf("failed to encode slides: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE pitch_deck SET slides = $1 WHERE id = $2 AND user_id = $3
	`, string(raw), deckID, userID)
	if err != nil {
		return fmt.Errorf("failed to save slides: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check save result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Bind returns a deck.Saver fixed to one deck and owner, for handing to the
// editor engine.
func (s *DeckStore) Bind(deckID, userID string) deck.Saver {
	return boundSaver{store: s, deckID: deckID, userID: userID}
}

type boundSaver struct {
	store  *DeckStore
	deckID string
	userID string
}

func (b boundSaver) Save(ctx context.Context, slides []models.Slide) error {
	return b.store.Save(ctx, b.deckID, b.userID, slides)
}

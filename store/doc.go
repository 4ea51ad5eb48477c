// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the Deck Store collaborator: it persists the ordered slide
sequence of a pitch deck, keyed by deck id plus owner id.

# Contract

	s := store.New(db)
	slides, err := s.Load(ctx, deckID, userID)   // ErrNotFound if missing
	err = s.Save(ctx, deckID, userID, slides)    // ErrNotFound if no row matched

Both operations are owner-scoped: a deck belonging to another user behaves
exactly like a missing deck. Slide order is preserved byte-for-byte through
the JSON round trip.

Save is last-write-wins with single-statement atomicity; there is no
optimistic-concurrency check (the editor is single-user, single-tab).

# Editor Binding

Bind fixes the key pair so the editor engine only deals in slides:

	e := deck.NewEditor(d, s.Bind(deckID, userID))
	err := e.Save(ctx)
*/
package store

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package deck implements the ordered slide-deck model and its two consumers:
the editing engine and the presentation engine.

# Deck Model

Deck is an ordered sequence of models.Slide. Order is the investor narrative
and survives load/save round-trips. All mutating operations are pure value
transformations - they return a new Deck - and validate their indices:

	d2, err := d.Insert(2, slide)    // shift right, err on bad index
	d2, err := d.Delete(0)           // no-op when one slide remains
	d2, err := d.Move(from, to)      // reinsert, Move(i, i) == d
	d2, err := d.UpdateContent(i, c) // shallow merge, not replace

Out-of-range indices return ErrInvalidIndex and the unchanged deck. A
non-empty deck can never become empty through Delete.

# Editor Engine

Editor wraps a Deck with a selection cursor and an edit/preview mode:

	e := deck.NewEditor(d, saver)
	e.Add(deck.TemplateContent) // append default slide, select it
	e.MoveDown()                // swap with neighbour, boundary no-op
	e.RemoveSelected()          // selection moves to max(0, i-1)
	err := e.Save(ctx)          // persist through the Saver

Edits live in memory until Save; a failed Save leaves them intact so the
caller can retry.

# Presenter Engine

Presenter walks a read-only deck:

	p := deck.NewPresenter(d)
	p.Next()           // clamp at the last slide, no wraparound
	p.StartAutoplay()  // owned timer, Tick wraps (i+1) mod len
	p.HandleKey(deck.KeyRight)
	defer p.Close()

StartAutoplay and StopAutoplay are idempotent. Key handling is active only
between Mount and Unmount. Close releases the timer goroutine.

# Rendering

Render dispatches on the slide title to a typed view - one variant per known
kind (Title Slide, Problem, Solution, Market Opportunity, Business Model,
Traction, Team, Funding Request) plus a Generic fallback:

	r := deck.Render(slide)
	if r.Market != nil && r.Market.TAM != "" { ... }

Every content field is optional; missing fields read as zero values and the
view omits those elements.

# Starter Decks

StarterSlides builds the standard eight-slide narrative from wizard input
without the AI collaborator, for drafts created before generation.
*/
package deck

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"context"

	"github.com/danielhkuo/founderos/models"
)

// Mode is the editor display mode.
type Mode int

const (
	ModeEdit Mode = iota
	ModePreview
)

// Slide template names for Editor.Add. Every template seeds the same default
// shape; the names exist so the caller's picker can label them.
const (
	TemplateTitle   = "title"
	TemplateContent = "content"
	TemplateImage   = "image"
	TemplateChart   = "chart"
)

// Saver persists the ordered slide sequence of one deck. Implementations are
// bound to a deck id and owner; the editor only hands over the slides.
type Saver interface {
	Save(ctx context.Context, slides []models.Slide) error
}

// Editor is the stateful authoring engine over a Deck. It tracks the selected
// slide and the display mode, and persists through a Saver on Save. All edits
// stay in memory until Save succeeds.
type Editor struct {
	deck     Deck
	selected int
	mode     Mode
	saver    Saver
}

// NewEditor wraps d for editing. The first slide is selected initially.
func NewEditor(d Deck, saver Saver) *Editor {
	return &Editor{deck: d, saver: saver}
}

// Deck returns the current in-memory deck.
func (e *Editor) Deck() Deck {
	return e.deck
}

// Selected returns the index of the selected slide.
func (e *Editor) Selected() int {
	return e.selected
}

// Mode returns the current display mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode switches between edit and preview. The deck is untouched.
func (e *Editor) SetMode(m Mode) {
	e.mode = m
}

// Select moves the selection cursor. Out-of-range indices are ignored.
func (e *Editor) Select(i int) {
	if i < 0 || i >= e.deck.Len() {
		return
	}
	e.selected = i
}

// Add appends a new slide built from the named template and selects it.
func (e *Editor) Add(template string) {
	e.deck = e.deck.Append(templateSlide(template))
	e.selected = e.deck.Len() - 1
}

// RemoveSelected deletes the selected slide. The last remaining slide is
// never removed. Selection moves to the previous slide.
func (e *Editor) RemoveSelected() {
	out, err := e.deck.Delete(e.selected)
	if err != nil {
		return
	}
	e.deck = out
	e.selected = max(0, e.selected-1)
}

// MoveUp swaps the selected slide with its predecessor. No-op at the top.
func (e *Editor) MoveUp() {
	e.reorder(e.selected - 1)
}

// MoveDown swaps the selected slide with its successor. No-op at the bottom.
func (e *Editor) MoveDown() {
	e.reorder(e.selected + 1)
}

func (e *Editor) reorder(to int) {
	out, err := e.deck.Move(e.selected, to)
	if err != nil {
		return
	}
	e.deck = out
	e.selected = to
}

// UpdateSelected shallow-merges partial into the selected slide's content.
func (e *Editor) UpdateSelected(partial models.Content) {
	out, err := e.deck.UpdateContent(e.selected, partial)
	if err != nil {
		return
	}
	e.deck = out
}

// RenameSelected replaces the selected slide's title.
func (e *Editor) RenameSelected(title string) {
	out, err := e.deck.Rename(e.selected, title)
	if err != nil {
		return
	}
	e.deck = out
}

// Save persists the current slide sequence through the Saver. On failure the
// error is returned and the in-memory deck is unchanged, so the caller can
// retry without losing edits.
func (e *Editor) Save(ctx context.Context) error {
	return e.saver.Save(ctx, e.deck.Slides())
}

func templateSlide(template string) models.Slide {
	// Every template currently seeds the same default shape; the template
	// name rides along on the slide so views can branch on it later.
	return models.Slide{
		Title: "New Slide",
		Content: models.Content{
			"title":       "Slide Title",
			"description": "Slide content goes here...",
		},
		Template: template,
	}
}

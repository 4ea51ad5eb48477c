// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/founderos/models"
)

type fakeSaver struct {
	saved [][]models.Slide
	err   error
}

func (f *fakeSaver) Save(ctx context.Context, slides []models.Slide) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, slides)
	return nil
}

func TestEditorAdd(t *testing.T) {
	// New deck with one title slide, add a content slide: two slides,
	// selection on the new one, default content shape.
	e := NewEditor(deckOf("Title Slide"), &fakeSaver{})

	e.Add(TemplateContent)

	if e.Deck().Len() != 2 {
		t.Fatalf("Expected 2 slides, got %d", e.Deck().Len())
	}
	if e.Selected() != 1 {
		t.Errorf("Expected selection 1, got %d", e.Selected())
	}

	added, _ := e.Deck().Slide(1)
	if added.Title != "New Slide" {
		t.Errorf("Expected title New Slide, got %q", added.Title)
	}
	if added.Template != TemplateContent {
		t.Errorf("Expected template %q, got %q", TemplateContent, added.Template)
	}
	if added.Content["title"] != "Slide Title" {
		t.Errorf("Expected content title 'Slide Title', got %v", added.Content["title"])
	}
	if added.Content["description"] != "Slide content goes here..." {
		t.Errorf("Expected default description, got %v", added.Content["description"])
	}
	if len(added.Content) != 2 {
		t.Errorf("Expected exactly title+description in content, got %v", added.Content)
	}
}

func TestEditorSelect(t *testing.T) {
	e := NewEditor(deckOf("A", "B", "C"), &fakeSaver{})

	e.Select(2)
	if e.Selected() != 2 {
		t.Errorf("Expected selection 2, got %d", e.Selected())
	}

	// Out of range is ignored
	e.Select(3)
	if e.Selected() != 2 {
		t.Errorf("Out-of-range select moved cursor to %d", e.Selected())
	}
	e.Select(-1)
	if e.Selected() != 2 {
		t.Errorf("Negative select moved cursor to %d", e.Selected())
	}
}

func TestEditorRemoveSelected(t *testing.T) {
	e := NewEditor(deckOf("A", "B", "C"), &fakeSaver{})

	e.Select(1)
	e.RemoveSelected()
	assertOrder(t, e.Deck(), "A", "C")
	if e.Selected() != 0 {
		t.Errorf("Expected selection 0 after delete, got %d", e.Selected())
	}

	e.RemoveSelected()
	assertOrder(t, e.Deck(), "C")

	// A single-slide deck never shrinks further
	e.RemoveSelected()
	assertOrder(t, e.Deck(), "C")
	if e.Selected() != 0 {
		t.Errorf("Expected selection 0, got %d", e.Selected())
	}
}

func TestEditorReorder(t *testing.T) {
	e := NewEditor(deckOf("A", "B", "C"), &fakeSaver{})

	// Boundary no-op at the top
	e.Select(0)
	e.MoveUp()
	assertOrder(t, e.Deck(), "A", "B", "C")
	if e.Selected() != 0 {
		t.Errorf("Selection moved on boundary no-op: %d", e.Selected())
	}

	// Selection follows the moved slide
	e.MoveDown()
	assertOrder(t, e.Deck(), "B", "A", "C")
	if e.Selected() != 1 {
		t.Errorf("Expected selection to follow slide to 1, got %d", e.Selected())
	}

	e.Select(2)
	e.MoveDown()
	assertOrder(t, e.Deck(), "B", "A", "C")
}

func TestEditorUpdateSelected(t *testing.T) {
	e := NewEditor(deckOf("A", "B"), &fakeSaver{})

	e.Select(1)
	e.UpdateSelected(models.Content{"description": "updated"})

	s, _ := e.Deck().Slide(1)
	if s.Content["description"] != "updated" {
		t.Errorf("Expected merged description, got %v", s.Content["description"])
	}
	if s.Content["title"] != "B" {
		t.Errorf("Merge replaced sibling field: %v", s.Content["title"])
	}
}

func TestEditorRenameSelected(t *testing.T) {
	e := NewEditor(deckOf("A"), &fakeSaver{})
	e.RenameSelected("Funding Request")
	assertOrder(t, e.Deck(), "Funding Request")
}

func TestEditorSetMode(t *testing.T) {
	e := NewEditor(deckOf("A"), &fakeSaver{})
	if e.Mode() != ModeEdit {
		t.Errorf("Expected initial ModeEdit, got %v", e.Mode())
	}

	before := titles(e.Deck())
	e.SetMode(ModePreview)
	if e.Mode() != ModePreview {
		t.Errorf("Expected ModePreview, got %v", e.Mode())
	}
	assertOrder(t, e.Deck(), before...)
}

func TestEditorSave(t *testing.T) {
	saver := &fakeSaver{}
	e := NewEditor(deckOf("A"), saver)
	e.Add(TemplateContent)

	if err := e.Save(context.Background()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(saver.saved) != 1 {
		t.Fatalf("Expected 1 save, got %d", len(saver.saved))
	}
	if len(saver.saved[0]) != 2 {
		t.Errorf("Expected 2 slides handed to saver, got %d", len(saver.saved[0]))
	}
}

func TestEditorSaveFailureKeepsEdits(t *testing.T) {
	saver := &fakeSaver{err: errors.New("store unavailable")}
	e := NewEditor(deckOf("A"), saver)
	e.Add(TemplateContent)

	if err := e.Save(context.Background()); err == nil {
		t.Fatal("Expected save error")
	}

	// In-memory edits survive the failed save; a retry after recovery works.
	if e.Deck().Len() != 2 {
		t.Fatalf("Edits lost on failed save: %d slides", e.Deck().Len())
	}
	saver.err = nil
	if err := e.Save(context.Background()); err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if len(saver.saved) != 1 || len(saver.saved[0]) != 2 {
		t.Errorf("Retry did not persist the edited deck: %v", saver.saved)
	}
}

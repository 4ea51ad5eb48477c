// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"testing"

	"github.com/danielhkuo/founderos/models"
)

func slideNamed(title string) models.Slide {
	return models.Slide{Title: title, Content: models.Content{"title": title}}
}

func deckOf(titles ...string) Deck {
	slides := make([]models.Slide, len(titles))
	for i, t := range titles {
		slides[i] = slideNamed(t)
	}
	return New(slides)
}

func titles(d Deck) []string {
	out := make([]string, d.Len())
	for i, s := range d.Slides() {
		out[i] = s.Title
	}
	return out
}

func assertOrder(t *testing.T, d Deck, want ...string) {
	t.Helper()
	got := titles(d)
	if len(got) != len(want) {
		t.Fatalf("Expected %d slides %v, got %d slides %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slide %d: expected %q, got %q (full order %v)", i, want[i], got[i], got)
		}
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name      string
		deck      Deck
		at        int
		wantErr   bool
		wantOrder []string
	}{
		{
			name:      "insert at start shifts right",
			deck:      deckOf("A", "B"),
			at:        0,
			wantOrder: []string{"X", "A", "B"},
		},
		{
			name:      "insert in middle",
			deck:      deckOf("A", "B"),
			at:        1,
			wantOrder: []string{"A", "X", "B"},
		},
		{
			name:      "insert at end appends",
			deck:      deckOf("A", "B"),
			at:        2,
			wantOrder: []string{"A", "B", "X"},
		},
		{
			name:      "insert into empty deck",
			deck:      New(nil),
			at:        0,
			wantOrder: []string{"X"},
		},
		{
			name:    "negative index rejected",
			deck:    deckOf("A"),
			at:      -1,
			wantErr: true,
		},
		{
			name:    "index past end rejected",
			deck:    deckOf("A"),
			at:      2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.deck.Insert(tt.at, slideNamed("X"))
			if tt.wantErr {
				if err != ErrInvalidIndex {
					t.Fatalf("Expected ErrInvalidIndex, got %v", err)
				}
				if out.Len() != tt.deck.Len() {
					t.Error("Deck changed on rejected insert")
				}
				return
			}
			if err != nil {
				t.Fatalf("Insert failed: %v", err)
			}
			assertOrder(t, out, tt.wantOrder...)
		})
	}
}

func TestInsertDeleteAreInverses(t *testing.T) {
	// deleteSlide(insertSlide(D, i, s), i) restores the sequence for
	// non-empty D at every valid index.
	base := deckOf("A", "B", "C")
	for i := 0; i <= base.Len(); i++ {
		inserted, err := base.Insert(i, slideNamed("X"))
		if err != nil {
			t.Fatalf("Insert at %d failed: %v", i, err)
		}
		restored, err := inserted.Delete(i)
		if err != nil {
			t.Fatalf("Delete at %d failed: %v", i, err)
		}
		assertOrder(t, restored, "A", "B", "C")
	}
}

func TestDelete(t *testing.T) {
	t.Run("removes slide and keeps order", func(t *testing.T) {
		out, err := deckOf("A", "B", "C").Delete(1)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		assertOrder(t, out, "A", "C")
	})

	t.Run("last remaining slide survives", func(t *testing.T) {
		d := deckOf("A")
		out, err := d.Delete(0)
		if err != nil {
			t.Fatalf("Expected silent no-op, got %v", err)
		}
		assertOrder(t, out, "A")
	})

	t.Run("out of range rejected", func(t *testing.T) {
		d := deckOf("A", "B")
		if _, err := d.Delete(2); err != ErrInvalidIndex {
			t.Errorf("Expected ErrInvalidIndex, got %v", err)
		}
		if _, err := d.Delete(-1); err != ErrInvalidIndex {
			t.Errorf("Expected ErrInvalidIndex, got %v", err)
		}
	})

	t.Run("empty deck rejected", func(t *testing.T) {
		if _, err := New(nil).Delete(0); err != ErrInvalidIndex {
			t.Errorf("Expected ErrInvalidIndex, got %v", err)
		}
	})
}

func TestMove(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		wantOrder []string
	}{
		{"to front", 2, 0, []string{"C", "A", "B"}},
		{"to back", 0, 2, []string{"B", "C", "A"}},
		{"neighbour swap", 1, 2, []string{"A", "C", "B"}},
		{"same index is identity", 1, 1, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := deckOf("A", "B", "C").Move(tt.from, tt.to)
			if err != nil {
				t.Fatalf("Move failed: %v", err)
			}
			assertOrder(t, out, tt.wantOrder...)
			if out.Len() != 3 {
				t.Errorf("Move changed length: %d", out.Len())
			}
		})
	}

	t.Run("out of range rejected", func(t *testing.T) {
		d := deckOf("A", "B")
		for _, pair := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -1}} {
			if _, err := d.Move(pair[0], pair[1]); err != ErrInvalidIndex {
				t.Errorf("Move(%d, %d): expected ErrInvalidIndex, got %v", pair[0], pair[1], err)
			}
		}
	})
}

func TestMovePreservesMultiset(t *testing.T) {
	base := deckOf("A", "B", "C", "D")
	for from := 0; from < base.Len(); from++ {
		for to := 0; to < base.Len(); to++ {
			out, err := base.Move(from, to)
			if err != nil {
				t.Fatalf("Move(%d, %d) failed: %v", from, to, err)
			}
			if out.Len() != base.Len() {
				t.Fatalf("Move(%d, %d) changed length to %d", from, to, out.Len())
			}
			counts := map[string]int{}
			for _, s := range out.Slides() {
				counts[s.Title]++
			}
			for _, want := range []string{"A", "B", "C", "D"} {
				if counts[want] != 1 {
					t.Errorf("Move(%d, %d): slide %q count = %d", from, to, want, counts[want])
				}
			}
		}
	}
}

func TestUpdateContentMerges(t *testing.T) {
	d := New([]models.Slide{{
		Title:   "Problem",
		Content: models.Content{"title": "A", "description": "B"},
	}})

	out, err := d.UpdateContent(0, models.Content{"title": "C"})
	if err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}

	got, _ := out.Slide(0)
	if got.Content["title"] != "C" {
		t.Errorf("Expected title C, got %v", got.Content["title"])
	}
	if got.Content["description"] != "B" {
		t.Errorf("Sibling field changed: expected description B, got %v", got.Content["description"])
	}

	// Original deck untouched
	orig, _ := d.Slide(0)
	if orig.Content["title"] != "A" {
		t.Errorf("UpdateContent mutated the source deck: %v", orig.Content["title"])
	}
}

func TestUpdateContentOutOfRange(t *testing.T) {
	d := deckOf("A")
	if _, err := d.UpdateContent(1, models.Content{"x": "y"}); err != ErrInvalidIndex {
		t.Errorf("Expected ErrInvalidIndex, got %v", err)
	}
}

func TestRename(t *testing.T) {
	out, err := deckOf("A", "B").Rename(1, "Problem")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	assertOrder(t, out, "A", "Problem")

	if _, err := out.Rename(5, "X"); err != ErrInvalidIndex {
		t.Errorf("Expected ErrInvalidIndex, got %v", err)
	}
}

func TestNewCopiesInput(t *testing.T) {
	slides := []models.Slide{slideNamed("A"), slideNamed("B")}
	d := New(slides)
	slides[0] = slideNamed("Z")
	assertOrder(t, d, "A", "B")
}

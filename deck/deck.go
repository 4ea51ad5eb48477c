// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"errors"

	"github.com/danielhkuo/founderos/models"
)

// ErrInvalidIndex is returned when a mutation addresses a slide index
// outside [0, Len()). The deck is left unchanged.
var ErrInvalidIndex = errors.New("slide index out of range")

// Deck is an ordered sequence of slides. Insertion order is presentation
// order. All mutating operations are pure: they return a new Deck and never
// modify the receiver's slides.
type Deck struct {
	slides []models.Slide
}

// New builds a Deck from an ordered slide list. The input slice is copied so
// later caller mutations cannot alias into the deck.
func New(slides []models.Slide) Deck {
	copied := make([]models.Slide, len(slides))
	copy(copied, slides)
	return Deck{slides: copied}
}

// Len returns the number of slides.
func (d Deck) Len() int {
	return len(d.slides)
}

// Slides returns a copy of the ordered slide sequence.
func (d Deck) Slides() []models.Slide {
	out := make([]models.Slide, len(d.slides))
	copy(out, d.slides)
	return out
}

// Slide returns the slide at index i.
func (d Deck) Slide(i int) (models.Slide, error) {
	if i < 0 || i >= len(d.slides) {
		return models.Slide{}, ErrInvalidIndex
	}
	return d.slides[i], nil
}

// Insert places s at index at, shifting existing slides right.
// at == Len() appends.
func (d Deck) Insert(at int, s models.Slide) (Deck, error) {
	if at < 0 || at > len(d.slides) {
		return d, ErrInvalidIndex
	}
	out := make([]models.Slide, 0, len(d.slides)+1)
	out = append(out, d.slides[:at]...)
	out = append(out, s)
	out = append(out, d.slides[at:]...)
	return Deck{slides: out}, nil
}

// Append adds s at the end of the sequence.
func (d Deck) Append(s models.Slide) Deck {
	out, _ := d.Insert(len(d.slides), s)
	return out
}

// Delete removes the slide at index i. Deleting the last remaining slide is
// a no-op: a non-empty deck never becomes empty through deletion.
func (d Deck) Delete(i int) (Deck, error) {
	if i < 0 || i >= len(d.slides) {
		return d, ErrInvalidIndex
	}
	if len(d.slides) <= 1 {
		return d, nil
	}
	out := make([]models.Slide, 0, len(d.slides)-1)
	out = append(out, d.slides[:i]...)
	out = append(out, d.slides[i+1:]...)
	return Deck{slides: out}, nil
}

// Move removes the slide at from and reinserts it at to, shifting the slides
// in between. Move(i, i) returns an equal deck.
func (d Deck) Move(from, to int) (Deck, error) {
	n := len(d.slides)
	if from < 0 || from >= n || to < 0 || to >= n {
		return d, ErrInvalidIndex
	}
	if from == to {
		return New(d.slides), nil
	}
	out := make([]models.Slide, 0, n)
	out = append(out, d.slides[:from]...)
	out = append(out, d.slides[from+1:]...)
	moved := d.slides[from]
	out = append(out[:to], append([]models.Slide{moved}, out[to:]...)...)
	return Deck{slides: out}, nil
}

// UpdateContent shallow-merges partial into the content of slides[i].
// Fields absent from partial keep their existing values.
func (d Deck) UpdateContent(i int, partial models.Content) (Deck, error) {
	if i < 0 || i >= len(d.slides) {
		return d, ErrInvalidIndex
	}
	merged := make(models.Content, len(d.slides[i].Content)+len(partial))
	for k, v := range d.slides[i].Content {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	out := make([]models.Slide, len(d.slides))
	copy(out, d.slides)
	out[i].Content = merged
	return Deck{slides: out}, nil
}

// Rename replaces the title of slides[i]. The title is also the rendering
// dispatch key, so renaming changes which template the presenter selects.
func (d Deck) Rename(i int, title string) (Deck, error) {
	if i < 0 || i >= len(d.slides) {
		return d, ErrInvalidIndex
	}
	out := make([]models.Slide, len(d.slides))
	copy(out, d.slides)
	out[i].Title = title
	return Deck{slides: out}, nil
}

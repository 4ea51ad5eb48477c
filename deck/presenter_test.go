// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"testing"
	"time"
)

func TestPresenterNavigation(t *testing.T) {
	p := NewPresenter(deckOf("A", "B", "C"))

	if p.Current() != 0 {
		t.Fatalf("Expected start at 0, got %d", p.Current())
	}

	p.Next()
	p.Next()
	if p.Current() != 2 {
		t.Errorf("Expected index 2, got %d", p.Current())
	}

	// No wraparound forward
	p.Next()
	if p.Current() != 2 {
		t.Errorf("Next at last slide moved to %d", p.Current())
	}

	p.Prev()
	p.Prev()
	if p.Current() != 0 {
		t.Errorf("Expected index 0, got %d", p.Current())
	}

	// No wraparound backward
	p.Prev()
	if p.Current() != 0 {
		t.Errorf("Prev at first slide moved to %d", p.Current())
	}
}

func TestPresenterJumpTo(t *testing.T) {
	p := NewPresenter(deckOf("A", "B", "C"))

	p.JumpTo(2)
	if p.Current() != 2 {
		t.Errorf("Expected index 2, got %d", p.Current())
	}

	p.JumpTo(3)
	if p.Current() != 2 {
		t.Errorf("Out-of-range jump moved to %d", p.Current())
	}
	p.JumpTo(-1)
	if p.Current() != 2 {
		t.Errorf("Negative jump moved to %d", p.Current())
	}
}

func TestPresenterTickWraps(t *testing.T) {
	p := NewPresenter(deckOf("A", "B", "C", "D", "E"))

	p.JumpTo(4)
	p.Tick()
	if p.Current() != 0 {
		t.Errorf("Expected tick to wrap to 0, got %d", p.Current())
	}

	p.Tick()
	if p.Current() != 1 {
		t.Errorf("Expected 1, got %d", p.Current())
	}
}

func TestPresenterEmptyDeck(t *testing.T) {
	p := NewPresenter(New(nil))
	defer p.Close()

	if !p.Empty() {
		t.Error("Expected empty deck")
	}
	if _, ok := p.CurrentSlide(); ok {
		t.Error("Expected no current slide for empty deck")
	}

	// Nothing panics, nothing moves
	p.Next()
	p.Prev()
	p.Tick()
	p.JumpTo(0)
	if p.Current() != 0 {
		t.Errorf("Index moved on empty deck: %d", p.Current())
	}
}

func TestAutoplayStartStopIdempotent(t *testing.T) {
	p := NewPresenter(deckOf("A", "B"))
	defer p.Close()

	p.StartAutoplay()
	p.StartAutoplay()
	if !p.Autoplay() {
		t.Error("Expected autoplay running")
	}

	p.StopAutoplay()
	p.StopAutoplay()
	if p.Autoplay() {
		t.Error("Expected autoplay stopped")
	}

	// Close after stop is safe
	p.Close()
	p.Close()
}

func TestAutoplayAdvances(t *testing.T) {
	p := NewPresenter(deckOf("A", "B", "C"))
	defer p.Close()
	p.SetAutoplayInterval(5 * time.Millisecond)

	p.StartAutoplay()
	deadline := time.After(2 * time.Second)
	for p.Current() == 0 {
		select {
		case <-deadline:
			t.Fatal("Autoplay never advanced")
		case <-time.After(time.Millisecond):
		}
	}
	p.StopAutoplay()

	// Stopped timer no longer advances
	at := p.Current()
	time.Sleep(30 * time.Millisecond)
	if p.Current() != at {
		t.Errorf("Presenter advanced after StopAutoplay: %d -> %d", at, p.Current())
	}
}

func TestToggleAutoplay(t *testing.T) {
	p := NewPresenter(deckOf("A", "B"))
	defer p.Close()

	p.ToggleAutoplay()
	if !p.Autoplay() {
		t.Error("Expected autoplay on after toggle")
	}
	p.ToggleAutoplay()
	if p.Autoplay() {
		t.Error("Expected autoplay off after second toggle")
	}
}

func TestFullscreenOrthogonal(t *testing.T) {
	p := NewPresenter(deckOf("A", "B", "C"))
	defer p.Close()

	p.JumpTo(1)
	p.StartAutoplay()

	p.EnterFullscreen()
	if !p.Fullscreen() {
		t.Error("Expected fullscreen on")
	}
	if p.Current() != 1 {
		t.Errorf("Fullscreen changed index to %d", p.Current())
	}
	if !p.Autoplay() {
		t.Error("Fullscreen stopped autoplay")
	}

	p.ExitFullscreen()
	if p.Fullscreen() {
		t.Error("Expected fullscreen off")
	}

	p.ToggleFullscreen()
	if !p.Fullscreen() {
		t.Error("Expected fullscreen on after toggle")
	}
}

func TestHandleKey(t *testing.T) {
	p := NewPresenter(deckOf("A", "B", "C"))
	defer p.Close()

	// Unmounted presenter ignores input
	p.HandleKey(KeyRight)
	if p.Current() != 0 {
		t.Errorf("Unmounted presenter handled key: index %d", p.Current())
	}

	p.Mount()
	p.HandleKey(KeyRight)
	p.HandleKey(KeySpace)
	if p.Current() != 2 {
		t.Errorf("Expected index 2 after right+space, got %d", p.Current())
	}

	p.HandleKey(KeyLeft)
	if p.Current() != 1 {
		t.Errorf("Expected index 1 after left, got %d", p.Current())
	}

	p.EnterFullscreen()
	p.HandleKey(KeyEscape)
	if p.Fullscreen() {
		t.Error("Escape did not exit fullscreen")
	}
	if p.Current() != 1 {
		t.Errorf("Escape moved the index to %d", p.Current())
	}

	// Unmount unbinds keys and stops autoplay
	p.StartAutoplay()
	p.Unmount()
	if p.Autoplay() {
		t.Error("Unmount left autoplay running")
	}
	p.HandleKey(KeyRight)
	if p.Current() != 1 {
		t.Errorf("Unmounted presenter handled key: index %d", p.Current())
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package deck

import (
	"sync"
	"time"

	"github.com/danielhkuo/founderos/models"
)

// DefaultAutoplayInterval is the time each slide stays up during autoplay.
const DefaultAutoplayInterval = 10 * time.Second

// Key is a navigation key recognised by the presenter.
type Key int

const (
	KeyRight Key = iota
	KeyLeft
	KeySpace
	KeyEscape
)

// Presenter is the read-only sequential display engine over a Deck. It
// tracks the current slide index, an autoplay timer, and a fullscreen flag.
// Manual navigation clamps at the deck boundaries; the autoplay tick wraps.
//
// The autoplay timer is the only background activity: StartAutoplay owns a
// goroutine that is released by StopAutoplay or Close. Key handling is active
// only between Mount and Unmount, so an unmounted view never receives input.
type Presenter struct {
	mu         sync.Mutex
	deck       Deck
	current    int
	fullscreen bool
	mounted    bool
	interval   time.Duration
	autoplay   bool
	stop       chan struct{}
}

// NewPresenter wraps d for presentation, starting at the first slide.
func NewPresenter(d Deck) *Presenter {
	return &Presenter{deck: d, interval: DefaultAutoplayInterval}
}

// SetAutoplayInterval overrides the autoplay interval. It applies to the
// next StartAutoplay; a running timer keeps its interval.
func (p *Presenter) SetAutoplayInterval(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d > 0 {
		p.interval = d
	}
}

// Len returns the number of slides.
func (p *Presenter) Len() int {
	return p.deck.Len()
}

// Empty reports whether there is nothing to present.
func (p *Presenter) Empty() bool {
	return p.deck.Len() == 0
}

// Current returns the current slide index.
func (p *Presenter) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// CurrentSlide returns the slide under the cursor, or false for an empty deck.
func (p *Presenter) CurrentSlide() (models.Slide, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, err := p.deck.Slide(p.current)
	if err != nil {
		return models.Slide{}, false
	}
	return s, true
}

// Next advances one slide. No-op at the last slide (no wraparound).
func (p *Presenter) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current < p.deck.Len()-1 {
		p.current++
	}
}

// Prev goes back one slide. No-op at the first slide.
func (p *Presenter) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current > 0 {
		p.current--
	}
}

// JumpTo sets the cursor directly. Out-of-range indices are ignored.
func (p *Presenter) JumpTo(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= p.deck.Len() {
		return
	}
	p.current = i
}

// Tick is the autoplay advance step: one slide forward, wrapping from the
// last slide back to the first. No-op on an empty deck.
func (p *Presenter) Tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := p.deck.Len(); n > 0 {
		p.current = (p.current + 1) % n
	}
}

// Autoplay reports whether the autoplay timer is running.
func (p *Presenter) Autoplay() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.autoplay
}

// StartAutoplay starts the recurring advance timer. Idempotent: a second
// call while running does nothing.
func (p *Presenter) StartAutoplay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.autoplay {
		return
	}
	p.autoplay = true
	stop := make(chan struct{})
	p.stop = stop
	ticker := time.NewTicker(p.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.Tick()
			}
		}
	}()
}

// StopAutoplay cancels the autoplay timer. Idempotent.
func (p *Presenter) StopAutoplay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.autoplay {
		return
	}
	p.autoplay = false
	close(p.stop)
	p.stop = nil
}

// ToggleAutoplay flips the autoplay state.
func (p *Presenter) ToggleAutoplay() {
	if p.Autoplay() {
		p.StopAutoplay()
	} else {
		p.StartAutoplay()
	}
}

// Fullscreen reports the fullscreen flag. The flag is orthogonal to
// navigation and autoplay.
func (p *Presenter) Fullscreen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fullscreen
}

// EnterFullscreen sets the fullscreen flag.
func (p *Presenter) EnterFullscreen() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fullscreen = true
}

// ExitFullscreen clears the fullscreen flag.
func (p *Presenter) ExitFullscreen() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fullscreen = false
}

// ToggleFullscreen flips the fullscreen flag.
func (p *Presenter) ToggleFullscreen() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fullscreen = !p.fullscreen
}

// Mount activates key handling for this presenter.
func (p *Presenter) Mount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mounted = true
}

// Unmount deactivates key handling and stops autoplay, so nothing advances a
// deck that is no longer displayed.
func (p *Presenter) Unmount() {
	p.mu.Lock()
	p.mounted = false
	p.mu.Unlock()
	p.StopAutoplay()
}

// HandleKey applies the presenter key map: right arrow or space advances,
// left arrow goes back, escape leaves fullscreen. Ignored when unmounted.
func (p *Presenter) HandleKey(k Key) {
	p.mu.Lock()
	mounted := p.mounted
	p.mu.Unlock()
	if !mounted {
		return
	}
	switch k {
	case KeyRight, KeySpace:
		p.Next()
	case KeyLeft:
		p.Prev()
	case KeyEscape:
		p.ExitFullscreen()
	}
}

// Close releases the presenter's timer resources. Safe to call repeatedly.
func (p *Presenter) Close() {
	p.StopAutoplay()
}

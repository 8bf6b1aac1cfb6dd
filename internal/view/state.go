package view

import (
	"github.com/Zachkp/portfolio/internal/effects/observe"
	"github.com/Zachkp/portfolio/internal/effects/parallax"
)

// State is a read-only copy of a view's ephemeral UI state.
type State struct {
	Typed      string
	TitleIndex int
	Caret      bool
	Active     string
	Scrolled   bool
	Revealed   map[string]bool
	Viewport   observe.Viewport
	Offset     parallax.Offset
	Transforms map[string]parallax.Transform
	Glow       parallax.Pointer
	Observable bool
	Mounted    bool
	Closed     bool
}

// Snapshot copies the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	s := State{
		Typed:      v.typer.Text(),
		TitleIndex: v.typer.Index(),
		Caret:      v.caret.Visible(),
		Active:     v.tracker.Active(),
		Scrolled:   v.scrolled,
		Revealed:   make(map[string]bool, len(v.layout.Sections)),
		Viewport:   v.viewport,
		Offset:     v.frame.Offset,
		Transforms: make(map[string]parallax.Transform, len(v.frame.Transforms)),
		Glow:       v.frame.Glow,
		Observable: v.latch.Supported(),
		Mounted:    v.mounted,
		Closed:     v.closed,
	}
	for _, sec := range v.layout.Sections {
		s.Revealed[sec.ID] = v.latch.Revealed(sec.ID)
	}
	for id, t := range v.frame.Transforms {
		s.Transforms[id] = t
	}
	return s
}

// Active returns the active section id.
func (v *View) Active() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tracker.Active()
}

// Revealed reports whether a section has been revealed.
func (v *View) Revealed(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.latch.Revealed(id)
}

// Scrolled reports whether the page is scrolled past the header threshold.
func (v *View) Scrolled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrolled
}

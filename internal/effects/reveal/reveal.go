// Package reveal latches sections into their revealed state the first time
// enough of them scrolls into view. A revealed section never hides again.
package reveal

import (
	"time"

	"github.com/Zachkp/portfolio/internal/effects/observe"
)

// Options configures the trigger.
type Options struct {
	// Threshold is the visible fraction that triggers the reveal.
	Threshold float64
	// RootMargin shrinks the viewport; the default lifts the bottom edge by
	// 100px so sections must clear it before revealing.
	RootMargin observe.Margin
	// Transition is the hidden-to-revealed animation length.
	Transition time.Duration
}

// DefaultOptions returns threshold 0.1, margin "0px 0px -100px 0px", 1s.
func DefaultOptions() Options {
	return Options{
		Threshold:  0.1,
		RootMargin: observe.MustParseMargin("0px 0px -100px 0px"),
		Transition: time.Second,
	}
}

// Latch is the set of sections that have been revealed at least once.
type Latch struct {
	opts      Options
	supported bool
	observer  *observe.Observer
	revealed  map[string]struct{}
}

// New returns a latch. When supported is false there is no way to observe
// visibility and every section reports revealed.
func New(opts Options, supported bool) *Latch {
	l := &Latch{opts: opts, supported: supported, revealed: make(map[string]struct{})}
	if supported {
		l.observer = observe.New(observe.Options{
			Thresholds: []float64{opts.Threshold},
			RootMargin: opts.RootMargin,
		})
	}
	return l
}

// Options returns the latch configuration.
func (l *Latch) Options() Options { return l.opts }

// Supported reports whether visibility observation is available.
func (l *Latch) Supported() bool { return l.supported }

// Observe applies entries and returns the ids revealed by this call.
func (l *Latch) Observe(entries []observe.Entry) []string {
	var fresh []string
	for _, e := range entries {
		if !e.Meets(l.opts.Threshold) {
			continue
		}
		if _, ok := l.revealed[e.ID]; ok {
			continue
		}
		l.revealed[e.ID] = struct{}{}
		fresh = append(fresh, e.ID)
	}
	return fresh
}

// Update evaluates section geometry against the viewport and applies the
// resulting entries.
func (l *Latch) Update(vp observe.Viewport, sections []observe.Section) []string {
	if !l.supported {
		return nil
	}
	return l.Observe(l.observer.Observe(vp.Root(), observe.Targets(vp, sections)))
}

// Revealed reports whether id has been revealed.
func (l *Latch) Revealed(id string) bool {
	if !l.supported {
		return true
	}
	_, ok := l.revealed[id]
	return ok
}

// Count returns how many sections have been revealed.
func (l *Latch) Count() int { return len(l.revealed) }

// Release stops observing. Revealed sections stay revealed.
func (l *Latch) Release() {
	if l.observer != nil {
		l.observer.Disconnect()
	}
}

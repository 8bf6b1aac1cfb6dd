// Package tracker follows which section sits in the middle band of the
// viewport, driving the highlighted navigation link.
package tracker

import "github.com/Zachkp/portfolio/internal/effects/observe"

// Options configures the center band.
type Options struct {
	Threshold  float64
	RootMargin observe.Margin
}

// DefaultOptions returns threshold 0.35 with the band shrunk 30% from the
// top and bottom.
func DefaultOptions() Options {
	return Options{
		Threshold:  0.35,
		RootMargin: observe.MustParseMargin("-30% 0px -30% 0px"),
	}
}

// Tracker holds the single active section id.
//
// Threshold only decides when the observer reports a section; any reported
// entry that intersects the band becomes active, however small a share of a
// tall section that is. When several sections intersect in one batch the
// last reported one wins. Entries that no longer intersect never clear the
// active id.
type Tracker struct {
	opts     Options
	observer *observe.Observer
	active   string
}

// New returns a tracker with no active section.
func New(opts Options) *Tracker {
	return &Tracker{
		opts: opts,
		observer: observe.New(observe.Options{
			Thresholds: []float64{opts.Threshold},
			RootMargin: opts.RootMargin,
		}),
	}
}

// Options returns the tracker configuration.
func (t *Tracker) Options() Options { return t.opts }

// Active returns the active section id, empty until one qualifies.
func (t *Tracker) Active() string { return t.active }

// Observe applies entries and reports whether the active id changed.
func (t *Tracker) Observe(entries []observe.Entry) bool {
	prev := t.active
	for _, e := range entries {
		if e.Intersecting {
			t.active = e.ID
		}
	}
	return t.active != prev
}

// Update evaluates section geometry against the viewport.
func (t *Tracker) Update(vp observe.Viewport, sections []observe.Section) bool {
	return t.Observe(t.observer.Observe(vp.Root(), observe.Targets(vp, sections)))
}

// Release stops observing; the last active id is kept.
func (t *Tracker) Release() {
	t.observer.Disconnect()
}

package observe

import "sort"

// Entry reports a target's intersection with the adjusted root.
type Entry struct {
	ID           string
	Ratio        float64
	Intersecting bool
}

// Meets reports whether the entry intersects with at least threshold of the
// target visible.
func (e Entry) Meets(threshold float64) bool {
	return e.Intersecting && e.Ratio >= threshold
}

// Options configures an Observer.
type Options struct {
	Thresholds []float64
	RootMargin Margin
}

type record struct {
	index        int
	intersecting bool
}

// Observer delivers entries the way a browser intersection observer does:
// once when a target is first seen, then only when it crosses a threshold or
// its intersecting state flips. It is not safe for concurrent use.
type Observer struct {
	thresholds []float64
	margin     Margin
	seen       map[string]record
}

// New returns an observer. Thresholds are sorted; none means [0].
func New(opts Options) *Observer {
	th := append([]float64(nil), opts.Thresholds...)
	if len(th) == 0 {
		th = []float64{0}
	}
	sort.Float64s(th)
	return &Observer{thresholds: th, margin: opts.RootMargin, seen: make(map[string]record)}
}

// Compute returns the entry for a single target without recording it.
func (o *Observer) Compute(root Rect, t Target) Entry {
	bounds := o.margin.Apply(root)
	inter, ok := t.Bounds.Intersect(bounds)
	e := Entry{ID: t.ID, Intersecting: ok}
	if !ok {
		return e
	}
	if area := t.Bounds.Area(); area > 0 {
		e.Ratio = inter.Area() / area
	} else {
		e.Ratio = 1
	}
	return e
}

// Observe evaluates every target against root and returns the entries that
// changed, in target order.
func (o *Observer) Observe(root Rect, targets []Target) []Entry {
	var out []Entry
	for _, t := range targets {
		e := o.Compute(root, t)
		idx := o.thresholdIndex(e.Ratio)
		prev, known := o.seen[t.ID]
		if known && prev.index == idx && prev.intersecting == e.Intersecting {
			continue
		}
		o.seen[t.ID] = record{index: idx, intersecting: e.Intersecting}
		out = append(out, e)
	}
	return out
}

// Unobserve forgets a target; the next Observe reports it afresh.
func (o *Observer) Unobserve(id string) {
	delete(o.seen, id)
}

// Disconnect forgets every target.
func (o *Observer) Disconnect() {
	clear(o.seen)
}

func (o *Observer) thresholdIndex(ratio float64) int {
	return sort.Search(len(o.thresholds), func(i int) bool { return o.thresholds[i] > ratio })
}

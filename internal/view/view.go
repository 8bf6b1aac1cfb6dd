// Package view holds the per-mount UI state of the portfolio page: the
// typewriter, the revealed-section latch, the active section, the scrolled
// flag and the latest parallax frame. Hosts (the terminal UI, tests) feed it
// events; every effect is attached through an explicit subscription that
// Close releases.
package view

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/effects/observe"
	"github.com/Zachkp/portfolio/internal/effects/parallax"
	"github.com/Zachkp/portfolio/internal/effects/reveal"
	"github.com/Zachkp/portfolio/internal/effects/tracker"
	"github.com/Zachkp/portfolio/internal/effects/typewriter"
)

// ErrClosed is returned when mounting a view that was already torn down.
var ErrClosed = errors.New("view: closed")

// SmoothScroll is the scroll behavior a mounted view installs.
const SmoothScroll = "smooth"

// Document is the host surface whose scroll behavior a view borrows while
// mounted.
type Document interface {
	ScrollBehavior() string
	SetScrollBehavior(string)
}

// Options bundles the effect settings.
type Options struct {
	Typewriter typewriter.Options
	Reveal     reveal.Options
	Tracker    tracker.Options
	Parallax   parallax.Options
	// ScrollThreshold is the scroll offset past which the header is "scrolled".
	ScrollThreshold float64
	// Observable is false when the host cannot report visibility; every
	// section is then shown revealed.
	Observable bool
}

// DefaultOptions returns the stock effect settings.
func DefaultOptions() Options {
	return Options{
		Typewriter:      typewriter.DefaultOptions(),
		Reveal:          reveal.DefaultOptions(),
		Tracker:         tracker.DefaultOptions(),
		Parallax:        parallax.DefaultOptions(),
		ScrollThreshold: 40,
		Observable:      true,
	}
}

type subscription struct {
	kind    Kind
	handler Handler
}

// View is the state of one mounted page.
type View struct {
	id     string
	opts   Options
	layout Layout
	logger *zap.Logger

	mu           sync.Mutex
	doc          Document
	prevBehavior string
	mounted      bool
	closed       bool
	subs         map[int]subscription
	nextSub      int

	viewport observe.Viewport
	typer    *typewriter.Machine
	caret    *typewriter.Caret
	latch    *reveal.Latch
	tracker  *tracker.Tracker
	scrolled bool
	frame    parallax.Frame
}

// New builds an unmounted view for the given titles and layout.
func New(titles []string, layout Layout, opts Options, logger *zap.Logger) (*View, error) {
	typer, err := typewriter.New(titles, opts.Typewriter)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &View{
		id:      uuid.NewString(),
		opts:    opts,
		layout:  layout,
		subs:    make(map[int]subscription),
		typer:   typer,
		caret:   typewriter.NewCaret(opts.Typewriter.CaretBlink),
		latch:   reveal.New(opts.Reveal, opts.Observable),
		tracker: tracker.New(opts.Tracker),
	}
	v.logger = logger.With(zap.String("view", v.id))
	v.frame = opts.Parallax.Compute(parallax.Pointer{}, parallax.Size{}, layout.Layers)
	return v, nil
}

// ID returns the view's unique id.
func (v *View) ID() string { return v.id }

// Mount attaches the effects to doc and an initial viewport. Smooth scrolling
// is enabled for as long as the view stays mounted.
func (v *View) Mount(doc Document, vp observe.Viewport) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.mounted {
		v.mu.Unlock()
		return nil
	}
	v.mounted = true
	v.doc = doc
	if doc != nil {
		v.prevBehavior = doc.ScrollBehavior()
		doc.SetScrollBehavior(SmoothScroll)
	}
	v.viewport = vp
	v.mu.Unlock()

	v.Subscribe(KindTick, v.onTick)
	v.Subscribe(KindScroll, v.onScroll)
	v.Subscribe(KindResize, v.onResize)
	v.Subscribe(KindPointer, v.onPointer)

	v.mu.Lock()
	v.observeLocked()
	v.mu.Unlock()

	v.logger.Debug("view mounted",
		zap.Int("sections", len(v.layout.Sections)),
		zap.Int("layers", len(v.layout.Layers)))
	return nil
}

// SetLayout replaces the section geometry after the host re-flowed and
// re-runs observation against it.
func (v *View) SetLayout(l Layout) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.layout = l
	if v.mounted {
		v.observeLocked()
	}
}

// Subscribe registers h for events of kind k and returns the function that
// removes it. Subscribing to a closed view is a no-op.
func (v *View) Subscribe(k Kind, h Handler) (unsubscribe func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return func() {}
	}
	id := v.nextSub
	v.nextSub++
	v.subs[id] = subscription{kind: k, handler: h}
	return func() {
		v.mu.Lock()
		delete(v.subs, id)
		v.mu.Unlock()
	}
}

// Subscriptions returns the number of live subscriptions.
func (v *View) Subscriptions() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// Dispatch delivers e to every subscriber of its kind. Events reaching a
// closed view are dropped.
func (v *View) Dispatch(e Event) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	ids := make([]int, 0, len(v.subs))
	for id, s := range v.subs {
		if s.kind == e.kind() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, v.subs[id].handler)
	}
	v.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

// Close releases every subscription and observer and gives the document its
// previous scroll behavior back. It is safe to call more than once.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	clear(v.subs)
	v.latch.Release()
	v.tracker.Release()
	if v.doc != nil {
		v.doc.SetScrollBehavior(v.prevBehavior)
		v.doc = nil
	}
	v.logger.Debug("view closed")
}

func (v *View) onTick(e Event) {
	t := e.(Tick)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.typer.Advance(t.Elapsed)
	v.caret.Advance(t.Elapsed)
}

func (v *View) onScroll(e Event) {
	s := e.(Scroll)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewport.ScrollY = s.Y
	v.scrolled = s.Y > v.opts.ScrollThreshold
	v.observeLocked()
}

func (v *View) onResize(e Event) {
	r := e.(Resize)
	v.mu.Lock()
	defer v.mu.Unlock()
	v.viewport.Width, v.viewport.Height = r.Width, r.Height
	v.observeLocked()
}

func (v *View) onPointer(e Event) {
	p := e.(PointerMove)
	v.mu.Lock()
	defer v.mu.Unlock()
	size := parallax.Size{Width: v.viewport.Width, Height: v.viewport.Height}
	v.frame = v.opts.Parallax.Compute(p.Pointer, size, v.layout.Layers)
}

func (v *View) observeLocked() {
	for _, id := range v.latch.Update(v.viewport, v.layout.Sections) {
		v.logger.Debug("section revealed", zap.String("section", id))
	}
	if v.tracker.Update(v.viewport, v.layout.Sections) {
		v.logger.Debug("active section", zap.String("section", v.tracker.Active()))
	}
}

package view

import (
	"time"

	"github.com/Zachkp/portfolio/internal/effects/observe"
	"github.com/Zachkp/portfolio/internal/effects/parallax"
)

// Event is anything a host delivers to a mounted view.
type Event interface {
	kind() Kind
}

// Kind names an event stream a handler can subscribe to.
type Kind int

const (
	KindPointer Kind = iota
	KindScroll
	KindResize
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindScroll:
		return "scroll"
	case KindResize:
		return "resize"
	case KindTick:
		return "tick"
	default:
		return "unknown"
	}
}

// PointerMove is a pointer position in viewport pixels.
type PointerMove struct {
	Pointer parallax.Pointer
}

// Scroll carries the new vertical scroll offset.
type Scroll struct {
	Y float64
}

// Resize carries the new viewport size.
type Resize struct {
	Width, Height float64
}

// Tick advances virtual time.
type Tick struct {
	Elapsed time.Duration
}

func (PointerMove) kind() Kind { return KindPointer }
func (Scroll) kind() Kind      { return KindScroll }
func (Resize) kind() Kind      { return KindResize }
func (Tick) kind() Kind        { return KindTick }

// Handler reacts to one event.
type Handler func(Event)

// Layout is the rendered geometry a view observes.
type Layout struct {
	Sections []observe.Section
	Layers   []parallax.Layer
}

package page

import (
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/effects/typewriter"
	"github.com/Zachkp/portfolio/internal/view"
)

// Settings is the effect configuration handed to the in-page script. The
// typewriter is shipped as a precomputed timeline so the browser only plays
// it back.
type Settings struct {
	Titles          []string         `json:"titles"`
	Timeline        []Frame          `json:"timeline"`
	CaretBlinkMs    int64            `json:"caretBlinkMs"`
	Reveal          RevealSettings   `json:"reveal"`
	Tracker         TrackerSettings  `json:"tracker"`
	Parallax        ParallaxSettings `json:"parallax"`
	ScrollThreshold float64          `json:"scrollThreshold"`
	Events          string           `json:"events,omitempty"`
}

// Frame is one typewriter frame.
type Frame struct {
	Text   string `json:"text"`
	HoldMs int64  `json:"holdMs"`
}

// RevealSettings mirrors reveal.Options.
type RevealSettings struct {
	Threshold    float64 `json:"threshold"`
	RootMargin   string  `json:"rootMargin"`
	TransitionMs int64   `json:"transitionMs"`
}

// TrackerSettings mirrors tracker.Options.
type TrackerSettings struct {
	Threshold  float64 `json:"threshold"`
	RootMargin string  `json:"rootMargin"`
}

// ParallaxSettings mirrors parallax.Options.
type ParallaxSettings struct {
	Translate float64 `json:"translate"`
	Rotate    float64 `json:"rotate"`
	GlowSize  float64 `json:"glowSize"`
}

// NewSettings serializes opts for titles. Without titles the timeline is
// empty and the hero line stays blank.
func NewSettings(titles []string, opts view.Options) (Settings, error) {
	var frames []typewriter.Frame
	if len(titles) > 0 {
		var err error
		frames, err = typewriter.Timeline(titles, opts.Typewriter)
		if err != nil {
			return Settings{}, fmt.Errorf("typewriter timeline: %w", err)
		}
	}
	s := Settings{
		Titles:       titles,
		Timeline:     make([]Frame, len(frames)),
		CaretBlinkMs: ms(opts.Typewriter.CaretBlink),
		Reveal: RevealSettings{
			Threshold:    opts.Reveal.Threshold,
			RootMargin:   opts.Reveal.RootMargin.String(),
			TransitionMs: ms(opts.Reveal.Transition),
		},
		Tracker: TrackerSettings{
			Threshold:  opts.Tracker.Threshold,
			RootMargin: opts.Tracker.RootMargin.String(),
		},
		Parallax: ParallaxSettings{
			Translate: opts.Parallax.TranslateFactor,
			Rotate:    opts.Parallax.RotateFactor,
			GlowSize:  opts.Parallax.GlowSize,
		},
		ScrollThreshold: opts.ScrollThreshold,
	}
	for i, f := range frames {
		s.Timeline[i] = Frame{Text: f.Text, HoldMs: ms(f.Hold)}
	}
	return s, nil
}

func ms(d time.Duration) int64 { return d.Milliseconds() }

// Package parallax computes the pointer-driven displacement of depth-tagged
// elements and the position of the cursor glow. Every call is a pure
// function of the current pointer event; nothing is smoothed or remembered.
package parallax

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Options holds the displacement factors.
type Options struct {
	// TranslateFactor scales offset*depth into pixels.
	TranslateFactor float64
	// RotateFactor scales offset*depth into degrees about the vertical axis.
	RotateFactor float64
	// GlowSize is the glow element's diameter in pixels.
	GlowSize float64
}

// DefaultOptions returns 12px, 3deg and a 128px glow.
func DefaultOptions() Options {
	return Options{TranslateFactor: 12, RotateFactor: 3, GlowSize: 128}
}

// Pointer is a pointer position in viewport pixels.
type Pointer struct {
	X, Y float64
}

// Size is the viewport size in pixels.
type Size struct {
	Width, Height float64
}

// Center returns the pointer position at the middle of the viewport.
func (s Size) Center() Pointer {
	return Pointer{X: s.Width / 2, Y: s.Height / 2}
}

// Offset is the pointer's normalized distance from the viewport center,
// each component in [-0.5, 0.5].
type Offset struct {
	X, Y float64
}

// OffsetOf normalizes p against the viewport. A zero-sized axis yields 0.
func OffsetOf(p Pointer, s Size) Offset {
	return Offset{X: normalize(p.X, s.Width), Y: normalize(p.Y, s.Height)}
}

func normalize(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return clamp(v/extent-0.5, -0.5, 0.5)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Transform is the displacement applied to one element.
type Transform struct {
	TX, TY  float64
	RotateY float64
}

// CSS renders the transform as a CSS transform value.
func (t Transform) CSS() string {
	return fmt.Sprintf("translate3d(%spx, %spx, 0) rotateY(%sdeg)", num(t.TX), num(t.TY), num(t.RotateY))
}

func num(v float64) string {
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Apply returns the transform for an element of the given depth.
func (o Options) Apply(off Offset, depth float64) Transform {
	return Transform{
		TX:      off.X * depth * o.TranslateFactor,
		TY:      off.Y * depth * o.TranslateFactor,
		RotateY: off.X * depth * o.RotateFactor,
	}
}

// Glow returns the top-left corner that centers the glow on the pointer.
func (o Options) Glow(p Pointer) Pointer {
	half := o.GlowSize / 2
	return Pointer{X: p.X - half, Y: p.Y - half}
}

// ParseDepth reads a depth attribute value. Anything unparsable is depth 0.
func ParseDepth(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Layer is a depth-tagged element.
type Layer struct {
	ID    string
	Depth float64
}

// Frame is the result of one pointer event.
type Frame struct {
	Offset     Offset
	Transforms map[string]Transform
	Glow       Pointer
}

// Compute handles one pointer event for a set of layers.
func (o Options) Compute(p Pointer, s Size, layers []Layer) Frame {
	off := OffsetOf(p, s)
	f := Frame{Offset: off, Glow: o.Glow(p), Transforms: make(map[string]Transform, len(layers))}
	for _, l := range layers {
		f.Transforms[l.ID] = o.Apply(off, l.Depth)
	}
	return f
}

// Package observe models viewport intersection observation: a root rectangle
// adjusted by CSS-style margins, a set of thresholds, and entries delivered
// only when a target crosses a threshold or changes intersection state.
package observe

import (
	"fmt"
	"strconv"
	"strings"
)

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns W*H, zero for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and o. ok is true when they overlap or
// share an edge.
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x1, y1 := max(r.X, o.X), max(r.Y, o.Y)
	x2, y2 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x2 < x1 || y2 < y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
}

// Length is a margin component in pixels or percent of the root size.
type Length struct {
	Value   float64
	Percent bool
}

func (l Length) resolve(basis float64) float64 {
	if l.Percent {
		return l.Value / 100 * basis
	}
	return l.Value
}

func (l Length) String() string {
	if l.Percent {
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
}

// Margin grows (positive) or shrinks (negative) the root rectangle.
type Margin struct {
	Top, Right, Bottom, Left Length
}

// ParseMargin parses CSS margin shorthand with one to four px or % values,
// e.g. "0px 0px -100px 0px" or "-30% 0px".
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Margin{}, fmt.Errorf("observe: margin %q: want 1 to 4 values", s)
	}
	vals := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("observe: margin %q: %w", s, err)
		}
		vals[i] = l
	}
	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	default:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
}

// MustParseMargin is ParseMargin for literals.
func MustParseMargin(s string) Margin {
	m, err := ParseMargin(s)
	if err != nil {
		panic(err)
	}
	return m
}

func parseLength(s string) (Length, error) {
	switch {
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return Length{}, fmt.Errorf("bad length %q", s)
		}
		return Length{Value: v, Percent: true}, nil
	case strings.HasSuffix(s, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Length{}, fmt.Errorf("bad length %q", s)
		}
		return Length{Value: v}, nil
	case s == "0":
		return Length{}, nil
	default:
		return Length{}, fmt.Errorf("length %q must be px or %%", s)
	}
}

// String renders the margin in the four-value form.
func (m Margin) String() string {
	return strings.Join([]string{m.Top.String(), m.Right.String(), m.Bottom.String(), m.Left.String()}, " ")
}

// Apply returns root adjusted by the margin. Percentages resolve against the
// root height (top, bottom) and width (left, right).
func (m Margin) Apply(root Rect) Rect {
	top := m.Top.resolve(root.H)
	bottom := m.Bottom.resolve(root.H)
	left := m.Left.resolve(root.W)
	right := m.Right.resolve(root.W)
	return Rect{
		X: root.X - left,
		Y: root.Y - top,
		W: root.W + left + right,
		H: root.H + top + bottom,
	}
}

// Viewport is the visible window onto the document.
type Viewport struct {
	Width, Height float64
	ScrollY       float64
}

// Root returns the viewport rectangle in its own coordinates.
func (v Viewport) Root() Rect {
	return Rect{W: v.Width, H: v.Height}
}

// Section is a full-width block laid out in document coordinates.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Target is something being observed, positioned in viewport coordinates.
type Target struct {
	ID     string
	Bounds Rect
}

// Targets positions sections relative to the viewport's scroll offset.
func Targets(v Viewport, sections []Section) []Target {
	out := make([]Target, 0, len(sections))
	for _, s := range sections {
		out = append(out, Target{
			ID:     s.ID,
			Bounds: Rect{Y: s.Top - v.ScrollY, W: v.Width, H: s.Height},
		})
	}
	return out
}

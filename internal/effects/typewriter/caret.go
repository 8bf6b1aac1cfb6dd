package typewriter

import "time"

// Caret blinks on its own period, unsynchronized with the machine.
type Caret struct {
	period  time.Duration
	visible bool
	elapsed time.Duration
}

// NewCaret returns a visible caret toggling every period.
func NewCaret(period time.Duration) *Caret {
	return &Caret{period: period, visible: true}
}

// Visible reports whether the caret is currently drawn.
func (c *Caret) Visible() bool { return c.visible }

// Advance consumes d of virtual time and reports whether the caret toggled.
func (c *Caret) Advance(d time.Duration) bool {
	if c.period <= 0 {
		return false
	}
	c.elapsed += d
	toggles := c.elapsed / c.period
	c.elapsed %= c.period
	if toggles%2 == 1 {
		c.visible = !c.visible
	}
	return toggles > 0
}

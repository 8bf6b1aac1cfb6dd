// Package typewriter implements the rotating-title effect: a phrase is typed
// one character at a time, held, deleted, held again, and the next phrase
// begins. The machine is driven by virtual time so a single recurring tick
// (a bubbletea Tick, a test loop, a precomputed timeline) can advance it.
package typewriter

import (
	"errors"
	"time"
)

// ErrNoPhrases is returned when a machine is built without any phrase.
var ErrNoPhrases = errors.New("typewriter: no phrases")

// Mode is the direction the machine is currently moving in.
type Mode int

const (
	Typing Mode = iota
	Deleting
)

func (m Mode) String() string {
	if m == Deleting {
		return "deleting"
	}
	return "typing"
}

// Options holds the effect durations.
type Options struct {
	TypingSpeed        time.Duration
	DeletingSpeed      time.Duration
	PauseAfterTyping   time.Duration
	PauseAfterDeleting time.Duration
	CaretBlink         time.Duration
}

// DefaultOptions returns the stock timings.
func DefaultOptions() Options {
	return Options{
		TypingSpeed:        100 * time.Millisecond,
		DeletingSpeed:      50 * time.Millisecond,
		PauseAfterTyping:   1500 * time.Millisecond,
		PauseAfterDeleting: 500 * time.Millisecond,
		CaretBlink:         500 * time.Millisecond,
	}
}

// Machine is the typewriter state: phrase index, visible length and mode.
// elapsed is the virtual time already spent waiting for the next transition.
type Machine struct {
	phrases [][]rune
	opts    Options

	index   int
	length  int
	mode    Mode
	elapsed time.Duration
}

// New builds a machine positioned at the start of the first phrase.
func New(phrases []string, opts Options) (*Machine, error) {
	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}
	m := &Machine{opts: opts, phrases: make([][]rune, len(phrases))}
	for i, p := range phrases {
		m.phrases[i] = []rune(p)
	}
	return m, nil
}

// Index returns the current phrase index.
func (m *Machine) Index() int {
	m.normalize()
	return m.index
}

// Len returns the number of visible characters.
func (m *Machine) Len() int { return m.length }

// Mode returns the current direction.
func (m *Machine) Mode() Mode { return m.mode }

// Text returns the visible prefix of the current phrase.
func (m *Machine) Text() string {
	m.normalize()
	return string(m.phrases[m.index][:m.length])
}

// Delay returns how long the current frame is held before the next Step.
func (m *Machine) Delay() time.Duration {
	m.normalize()
	full := len(m.phrases[m.index])
	switch {
	case m.mode == Typing && m.length < full:
		return m.opts.TypingSpeed
	case m.mode == Typing:
		return m.opts.PauseAfterTyping
	case m.length > 0:
		return m.opts.DeletingSpeed
	default:
		return m.opts.PauseAfterDeleting
	}
}

// Step applies exactly one transition, ignoring any pending delay.
func (m *Machine) Step() {
	m.normalize()
	m.elapsed = 0
	full := len(m.phrases[m.index])
	switch {
	case m.mode == Typing && m.length < full:
		m.length++
	case m.mode == Typing:
		m.mode = Deleting
	case m.length > 0:
		m.length--
	default:
		// The hold after deleting has elapsed; only now does the next phrase start.
		m.mode = Typing
		m.index = (m.index + 1) % len(m.phrases)
	}
}

// Advance consumes d of virtual time, applying every transition that falls
// due. It reports whether the visible state changed.
func (m *Machine) Advance(d time.Duration) bool {
	changed := false
	m.elapsed += d
	for {
		wait := m.Delay()
		if m.elapsed < wait {
			return changed
		}
		rest := m.elapsed - wait
		m.Step()
		m.elapsed = rest
		changed = true
		if wait <= 0 {
			// Zero-length waits take one transition per call so Advance stays finite.
			return changed
		}
	}
}

// normalize resets an out-of-range index. It cannot happen through Step but
// the machine stays usable if it ever does.
func (m *Machine) normalize() {
	if m.index >= len(m.phrases) || m.index < 0 {
		m.index = 0
		m.length = 0
		m.mode = Typing
	}
	if m.length > len(m.phrases[m.index]) {
		m.length = len(m.phrases[m.index])
	}
}

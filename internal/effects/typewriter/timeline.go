package typewriter

import "time"

// Frame is one visible state and how long it is held.
type Frame struct {
	Index int
	Text  string
	Hold  time.Duration
}

// Timeline returns the frames of one full pass through every phrase,
// starting from an empty first phrase and ending on the empty hold after the
// last phrase is deleted. Playing it in a loop reproduces the machine.
func Timeline(phrases []string, opts Options) ([]Frame, error) {
	m, err := New(phrases, opts)
	if err != nil {
		return nil, err
	}

	var frames []Frame
	for {
		frames = append(frames, Frame{Index: m.Index(), Text: m.Text(), Hold: m.Delay()})
		last := m.Index() == len(phrases)-1 && m.Mode() == Deleting && m.Len() == 0
		m.Step()
		if last {
			return frames, nil
		}
	}
}

// CycleDuration sums the holds of a timeline.
func CycleDuration(frames []Frame) time.Duration {
	var total time.Duration
	for _, f := range frames {
		total += f.Hold
	}
	return total
}

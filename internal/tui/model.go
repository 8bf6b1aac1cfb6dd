// Package tui renders the portfolio in a terminal. The page effects run on
// the same state machines as the web page: a single recurring tick drives
// the typewriter and caret, scrolling drives the reveal latch and the
// active-section tracker, and mouse motion drives the parallax layers.
package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effects/observe"
	"github.com/Zachkp/portfolio/internal/effects/parallax"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/view"
)

// Options configures the terminal UI.
type Options struct {
	View view.Options
	// Interval is the period of the recurring tick.
	Interval time.Duration
	// Style is the glamour style used for the about summary.
	Style string
}

// DefaultOptions returns a 50ms tick and the dark markdown style.
func DefaultOptions() Options {
	return Options{View: view.DefaultOptions(), Interval: 50 * time.Millisecond, Style: "dark"}
}

// Document stands in for the page document; it only tracks the scroll
// behavior a mounted view borrows.
type Document struct {
	behavior string
}

// ScrollBehavior implements view.Document.
func (d *Document) ScrollBehavior() string { return d.behavior }

// SetScrollBehavior implements view.Document.
func (d *Document) SetScrollBehavior(b string) { d.behavior = b }

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model.
type Model struct {
	opts   Options
	logger *zap.Logger
	doc    *Document
	view   *view.View
	r      *renderer

	vp       viewport.Model
	blocks   []block
	offsets  map[string]int
	target   int
	ready    bool
	quitting bool
}

// New mounts a view over store. Without titles the typewriter cycles the
// tagline instead.
func New(store *content.Store, media content.Media, opts Options, logger *zap.Logger) (*Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultOptions().Interval
	}
	titles := store.Personal.Titles
	if len(titles) == 0 {
		for _, s := range []string{store.Personal.Tagline, store.Personal.Name} {
			if s != "" {
				titles = []string{s}
				break
			}
		}
	}
	if len(titles) == 0 {
		return nil, errors.New("tui: content has no titles, tagline or name")
	}

	v, err := view.New(titles, view.Layout{Layers: page.Layers()}, opts.View, logger)
	if err != nil {
		return nil, err
	}
	doc := &Document{behavior: "auto"}
	if err := v.Mount(doc, observe.Viewport{}); err != nil {
		return nil, err
	}

	return &Model{
		opts:    opts,
		logger:  logger,
		doc:     doc,
		view:    v,
		r:       &renderer{store: store, media: media, st: newStyles()},
		offsets: make(map[string]int),
		target:  -1,
	}, nil
}

// Init starts the tick.
func (m *Model) Init() tea.Cmd { return tick(m.opts.Interval) }

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.Close()
			return m, tea.Quit
		case "1", "2", "3", "4", "5":
			m.jump(int(key[0] - '1'))
			return m, nil
		}
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		m.target = -1
		m.scrolled()
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.view.Dispatch(view.PointerMove{Pointer: parallax.Pointer{
				X: float64(msg.X * CellWidth),
				Y: float64(msg.Y * LineHeight),
			}})
		}
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		m.scrolled()
		return m, cmd

	case tickMsg:
		m.view.Dispatch(view.Tick{Elapsed: m.opts.Interval})
		m.stepScroll()
		m.refresh()
		if m.quitting {
			return m, nil
		}
		return m, tick(m.opts.Interval)
	}
	return m, nil
}

// View renders the screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}
	st := m.view.Snapshot()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.r.header(st),
		m.vp.View(),
		m.r.st.status.Render(statusLine(m.vp.ScrollPercent())),
	)
}

// Close tears the view down. It is safe to call more than once.
func (m *Model) Close() { m.view.Close() }

// State returns the effect state.
func (m *Model) State() view.State { return m.view.Snapshot() }

// Document returns the document the view is mounted on.
func (m *Model) Document() *Document { return m.doc }

// SectionLine returns the first content line of section id.
func (m *Model) SectionLine(id string) (int, bool) {
	n, ok := m.offsets[id]
	return n, ok
}

// YOffset returns the scroll position in lines.
func (m *Model) YOffset() int { return m.vp.YOffset }

func (m *Model) resize(width, height int) {
	vpHeight := height - 2
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.vp = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.vp.Width = width
		m.vp.Height = vpHeight
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.opts.Style),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", zap.Error(err))
		md = nil
	}
	m.r.md = md
	m.r.width = width
	m.blocks = m.r.sections()

	m.view.SetLayout(m.layout())
	m.view.Dispatch(view.Resize{
		Width:  float64(width * CellWidth),
		Height: float64(vpHeight * LineHeight),
	})
	m.refresh()
}

// layout places the hero and every block one blank line apart.
func (m *Model) layout() view.Layout {
	sections := make([]observe.Section, 0, len(m.blocks)+1)
	line := 0
	add := func(id string, lines int) {
		m.offsets[id] = line
		sections = append(sections, observe.Section{
			ID:     id,
			Top:    float64(line * LineHeight),
			Height: float64(lines * LineHeight),
		})
		line += lines + 1
	}
	add(page.Hero, heroLines)
	for _, b := range m.blocks {
		add(b.id, b.lines)
	}
	return view.Layout{Sections: sections, Layers: page.Layers()}
}

// refresh recomposes the scrollable content. Sections not yet revealed keep
// their height but render blank.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	st := m.view.Snapshot()
	parts := []string{m.r.hero(st)}
	for _, b := range m.blocks {
		if b.id == page.Footer || st.Revealed[b.id] {
			parts = append(parts, b.text)
		} else {
			parts = append(parts, strings.Repeat("\n", b.lines-1))
		}
	}
	m.vp.SetContent(strings.Join(parts, "\n\n"))
}

// jump scrolls to the i-th navigation target, animated while smooth
// scrolling is on.
func (m *Model) jump(i int) {
	nav := page.Nav()
	if !m.ready || i < 0 || i >= len(nav) {
		return
	}
	line, ok := m.offsets[nav[i].ID]
	if !ok {
		return
	}
	if m.doc.ScrollBehavior() == view.SmoothScroll {
		m.target = line
		return
	}
	m.vp.SetYOffset(line)
	m.scrolled()
}

func (m *Model) stepScroll() {
	if m.target < 0 {
		return
	}
	cur := m.vp.YOffset
	d := m.target - cur
	if d == 0 {
		m.target = -1
		return
	}
	step := d / 3
	if step == 0 {
		step = 1
		if d < 0 {
			step = -1
		}
	}
	m.vp.SetYOffset(cur + step)
	if m.vp.YOffset == cur {
		m.target = -1
		return
	}
	m.scrolled()
}

func (m *Model) scrolled() {
	m.view.Dispatch(view.Scroll{Y: float64(m.vp.YOffset * LineHeight)})
	m.refresh()
}

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/view"
)

// Terminal cells are mapped to page pixels so effect settings expressed in
// pixels keep their meaning.
const (
	CellWidth  = 8
	LineHeight = 16
)

type styles struct {
	header   lipgloss.Style
	scrolled lipgloss.Style
	active   lipgloss.Style
	navLink  lipgloss.Style
	heading  lipgloss.Style
	title    lipgloss.Style
	muted    lipgloss.Style
	accent   lipgloss.Style
	card     lipgloss.Style
	status   lipgloss.Style
	orb      lipgloss.Style
}

func newStyles() styles {
	return styles{
		header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		scrolled: lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("236")),
		active:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("111")),
		navLink:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")).MarginBottom(1),
		title:    lipgloss.NewStyle().Bold(true),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		orb:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	}
}

// block is a rendered section and its height in lines.
type block struct {
	id    string
	text  string
	lines int
}

func newBlock(id, text string) block {
	return block{id: id, text: text, lines: lipgloss.Height(text)}
}

// renderer builds the static sections for a given width.
type renderer struct {
	store *content.Store
	media content.Media
	st    styles
	md    *glamour.TermRenderer
	width int
}

func (r *renderer) sections() []block {
	var blocks []block
	for _, id := range page.Order {
		var text string
		switch id {
		case page.Hero:
			continue
		case page.About:
			text = r.about()
		case page.Skills:
			text = r.skills()
		case page.Projects:
			text = r.projects()
		case page.Experience:
			text = r.experience()
		case page.Education:
			text = r.education()
		case page.Contact:
			text = r.contact()
		case page.Footer:
			text = r.st.muted.Render("© " + r.store.Personal.Name)
		}
		blocks = append(blocks, newBlock(id, text))
	}
	return blocks
}

func (r *renderer) inner() int {
	if r.width < 20 {
		return 20
	}
	return r.width - 4
}

func (r *renderer) about() string {
	summary := r.store.Personal.About.Summary
	if r.md != nil {
		if out, err := r.md.Render(summary); err == nil {
			summary = strings.Trim(out, "\n")
		}
	}
	var b strings.Builder
	b.WriteString(r.st.heading.Render("About Me"))
	b.WriteString("\n")
	b.WriteString(summary)
	if hl := r.store.Personal.About.Highlights; len(hl) > 0 {
		b.WriteString("\n\n")
		b.WriteString(r.st.title.Render("Key Expertise"))
		for _, h := range hl {
			b.WriteString("\n  ")
			b.WriteString(r.st.accent.Render("✓ ") + h)
		}
	}
	return b.String()
}

func (r *renderer) skills() string {
	cards := make([]string, 0, len(r.store.Skills))
	for _, g := range r.store.Skills {
		lines := []string{r.st.title.Render(g.Category)}
		for _, item := range g.Items {
			lines = append(lines, "• "+item)
		}
		cards = append(cards, r.st.card.Width(r.inner()).Render(strings.Join(lines, "\n")))
	}
	return r.st.heading.Render("Technical Skills") + "\n" + strings.Join(cards, "\n")
}

func (r *renderer) image(img content.Image) string {
	if img.Missing() {
		return r.st.muted.Render("▢ " + img.Placeholder)
	}
	return r.st.accent.Render("▣ " + img.Src)
}

func (r *renderer) projects() string {
	var parts []string
	for i, p := range r.store.Projects {
		lines := []string{r.st.title.Render(p.Title), r.image(r.media.Project(i+1, p))}
		if p.Description != "" {
			lines = append(lines, p.Description)
		}
		if p.Link != "" {
			lines = append(lines, r.st.muted.Render(p.Link))
		}
		parts = append(parts, r.st.card.Width(r.inner()).Render(strings.Join(lines, "\n")))
	}
	for _, a := range r.store.AutomationAgents {
		lines := []string{r.st.title.Render(a.Title)}
		if a.Description != "" {
			lines = append(lines, a.Description)
		}
		if a.Link != "" {
			lines = append(lines, r.st.muted.Render(a.Link))
		}
		parts = append(parts, r.st.card.Width(r.inner()).Render(strings.Join(lines, "\n")))
	}
	return r.st.heading.Render("Projects") + "\n" + strings.Join(parts, "\n")
}

func (r *renderer) experience() string {
	var parts []string
	for _, e := range r.store.Experience {
		head := e.Title
		if e.Company != "" {
			head += " · " + e.Company
		}
		lines := []string{r.st.title.Render(head), r.st.muted.Render(joinNonEmpty(" · ", e.Location, e.Period))}
		if e.Tools != "" {
			lines = append(lines, r.st.muted.Render("Tools: "+e.Tools))
		}
		for _, resp := range e.Responsibilities {
			lines = append(lines, "• "+resp)
		}
		parts = append(parts, r.st.card.Width(r.inner()).Render(strings.Join(lines, "\n")))
	}
	return r.st.heading.Render("Professional Experience") + "\n" + strings.Join(parts, "\n")
}

func (r *renderer) education() string {
	ed := r.store.Education
	lines := []string{
		r.st.title.Render("Education"),
		joinNonEmpty(", ", ed.Degree, ed.Institution),
		r.st.muted.Render(ed.Period),
		"",
		r.st.title.Render("Certifications"),
	}
	for _, c := range r.store.Certifications {
		lines = append(lines, "• "+c)
	}
	return r.st.card.Width(r.inner()).Render(strings.Join(lines, "\n"))
}

func (r *renderer) contact() string {
	c := r.store.Personal.Contact
	lines := []string{r.st.heading.Render("Contact")}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	if c.Phone != "" {
		lines = append(lines, "Phone: "+c.Phone)
	}
	if c.Location != "" {
		lines = append(lines, "Location: "+c.Location)
	}
	s := r.store.Personal.Social
	if links := joinNonEmpty("  ", s.GitHub, s.LinkedIn); links != "" {
		lines = append(lines, r.st.muted.Render(links))
	}
	return strings.Join(lines, "\n")
}

// heroLines is the fixed height of the hero block.
const heroLines = 5

// hero renders the hero block for the current state. The orb line shifts
// one cell per pixel of its layer's parallax translation.
func (r *renderer) hero(st view.State) string {
	shift := 0
	if t, ok := st.Transforms["orb-1"]; ok {
		shift = int(math.Round(t.TX))
	}
	pad := 4 + shift
	if pad < 0 {
		pad = 0
	}

	caret := " "
	if st.Caret {
		caret = "|"
	}
	lines := []string{
		strings.Repeat(" ", pad) + r.st.orb.Render("◯  ◌   ◦"),
		r.st.title.Render(st.Typed) + caret,
		r.st.muted.Render(truncate(r.store.Personal.TaglineDescription, r.inner())),
		r.image(r.media.Profile(r.store.Personal)),
		"",
	}
	return strings.Join(lines[:heroLines], "\n")
}

func (r *renderer) header(st view.State) string {
	p := r.store.Personal
	links := make([]string, 0, 5)
	for _, l := range page.Nav() {
		if l.ID == st.Active {
			links = append(links, r.st.active.Render("["+l.Label+"]"))
		} else {
			links = append(links, r.st.navLink.Render(" "+l.Label+" "))
		}
	}
	style := r.st.header
	if st.Scrolled {
		style = r.st.scrolled
	}
	left := p.Name
	if p.Tagline != "" {
		left += "  " + r.st.muted.Render(p.Tagline)
	}
	return style.MaxWidth(r.width).Render(left + "   " + strings.Join(links, ""))
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if n <= 1 || len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func statusLine(percent float64) string {
	return fmt.Sprintf("↑/↓ scroll · 1-5 jump · q quit · %3.0f%%", percent*100)
}

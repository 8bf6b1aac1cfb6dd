// Package page renders the portfolio as a single HTML document: a fixed
// sequence of sections filled from the Content Store, with the effect
// settings serialized for the in-page script.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effects/parallax"
	"github.com/Zachkp/portfolio/internal/view"
)

// Template names.
const (
	IndexTemplate   = "index.html"
	ContactTemplate = "contact.html"
)

// AssetsPrefix is the URL path the embedded stylesheet and script live under.
const AssetsPrefix = "assets"

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Section ids in render order.
const (
	Hero       = "hero"
	About      = "about"
	Skills     = "skills"
	Projects   = "projects"
	Experience = "experience"
	Education  = "education"
	Contact    = "contact"
	Footer     = "footer"
)

// Order is the fixed top-to-bottom section order.
var Order = []string{Hero, About, Skills, Projects, Experience, Education, Contact, Footer}

// navIDs are the sections linked from the header.
var navIDs = []string{About, Skills, Projects, Experience, Contact}

// NavLink is one header link.
type NavLink struct {
	ID    string
	Label string
}

// Href returns the in-page anchor.
func (l NavLink) Href() string { return "#" + l.ID }

// Nav returns the header links in order.
func Nav() []NavLink {
	caser := cases.Title(language.English)
	links := make([]NavLink, len(navIDs))
	for i, id := range navIDs {
		links[i] = NavLink{ID: id, Label: caser.String(id)}
	}
	return links
}

// Layers returns the depth-tagged elements in document order.
func Layers() []parallax.Layer {
	return []parallax.Layer{
		{ID: "logo", Depth: 0.9},
		{ID: "orb-1", Depth: 0.5},
		{ID: "orb-2", Depth: 0.35},
		{ID: "orb-3", Depth: 0.15},
		{ID: "hero-copy", Depth: 0.02},
		{ID: "hero-portrait", Depth: 0.25},
	}
}

// Depth returns the depth of layer id, 0 when unknown.
func (d Data) Depth(id string) float64 {
	for _, l := range d.Layers {
		if l.ID == id {
			return l.Depth
		}
	}
	return 0
}

// ProjectCard is a project together with its resolved image slot.
type ProjectCard struct {
	content.Project
	Slot  int
	Image content.Image
}

// ContactForm feeds the contact form template.
type ContactForm struct {
	Title string
	Email string
}

// Data is everything the page template reads.
type Data struct {
	Root           string
	Personal       content.PersonalInfo
	Summary        template.HTML
	Profile        content.Image
	Resume         content.Image
	Nav            []NavLink
	Layers         []parallax.Layer
	Skills         []content.SkillGroup
	Projects       []ProjectCard
	Agents         []content.AutomationAgent
	Experience     []content.ExperienceEntry
	Education      content.Education
	Certifications []string
	Contact        ContactForm
	Settings       Settings
	Year           int
}

// Asset returns the URL of an embedded asset.
func (d Data) Asset(name string) string { return d.Root + AssetsPrefix + "/" + name }

// Media returns the URL of a resolved image.
func (d Data) Media(img content.Image) string {
	if strings.Contains(img.Src, "://") {
		return img.Src
	}
	return d.Root + img.Src
}

// FirstTitle is the title shown before the typewriter starts.
func (d Data) FirstTitle() string {
	if len(d.Personal.Titles) == 0 {
		return ""
	}
	return d.Personal.Titles[0]
}

// Options controls a single render.
type Options struct {
	// Root prefixes asset and media URLs: "/" when served, "" or a base URL
	// for static exports.
	Root string
	// Events is the live reload stream URL, empty to disable.
	Events string
	Now    time.Time
}

// Renderer turns a Content Store into the page.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	effect view.Options
	logger *zap.Logger
}

// New parses the embedded templates.
func New(effect view.Options, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := template.New("").ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{
		tmpl: tmpl,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
		effect: effect,
		logger: logger,
	}, nil
}

// Template returns the parsed template set.
func (r *Renderer) Template() *template.Template { return r.tmpl }

// Data builds the template input for store, resolving images against media.
func (r *Renderer) Data(store *content.Store, media content.Media, opts Options) (Data, error) {
	summary, err := r.markdown(store.Personal.About.Summary)
	if err != nil {
		return Data{}, fmt.Errorf("render about summary: %w", err)
	}
	settings, err := NewSettings(store.Personal.Titles, r.effect)
	if err != nil {
		return Data{}, err
	}
	settings.Events = opts.Events

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	d := Data{
		Root:           opts.Root,
		Personal:       store.Personal,
		Summary:        summary,
		Profile:        media.Profile(store.Personal),
		Resume:         media.Resume(store.Personal),
		Nav:            Nav(),
		Layers:         Layers(),
		Skills:         store.Skills,
		Agents:         store.AutomationAgents,
		Experience:     store.Experience,
		Education:      store.Education,
		Certifications: store.Certifications,
		Contact:        ContactForm{Title: "Contact Me", Email: store.Personal.Contact.Email},
		Settings:       settings,
		Year:           now.Year(),
	}
	if d.Resume.Placeholder != "" {
		r.logger.Debug("resume missing", zap.String("placeholder", d.Resume.Placeholder))
	}
	if d.Profile.Missing() {
		r.logger.Debug("profile image missing", zap.String("placeholder", d.Profile.Placeholder))
	}
	for i, p := range store.Projects {
		card := ProjectCard{Project: p, Slot: i + 1, Image: media.Project(i+1, p)}
		if card.Image.Missing() {
			r.logger.Debug("project image missing",
				zap.Int("slot", card.Slot),
				zap.String("placeholder", card.Image.Placeholder))
		}
		d.Projects = append(d.Projects, card)
	}
	return d, nil
}

// Render writes the full page for store.
func (r *Renderer) Render(w io.Writer, store *content.Store, media content.Media, opts Options) error {
	d, err := r.Data(store, media, opts)
	if err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, IndexTemplate, d)
}

// RenderContactForm writes the contact form fragment.
func (r *Renderer) RenderContactForm(w io.Writer, form ContactForm) error {
	return r.tmpl.ExecuteTemplate(w, ContactTemplate, form)
}

func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Static returns the embedded stylesheet and script.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

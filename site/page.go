// Package site renders the portfolio page and builds a static copy of it.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// NavItem is one header link.
type NavItem struct {
	ID     portfolio.SectionID
	Label  string
	Anchor string
	Active bool
}

// PageData is what the page template renders.
type PageData struct {
	Profile   content.Profile
	AboutHTML template.HTML
	Nav       []NavItem
	Theme     portfolio.Theme
	// HTMLClass is the class attribute of the <html> element.
	HTMLClass   string
	Year        int
	AssetPrefix string
	WasmURL     string
	// ToggleAction is where the theme toggle form posts. Empty renders a
	// plain button that only the browser host can act on.
	ToggleAction string
}

// Navigation returns the header links in document order with active marked.
func Navigation(active portfolio.SectionID) []NavItem {
	ids := portfolio.Sections()
	items := make([]NavItem, len(ids))
	for i, id := range ids {
		items[i] = NavItem{ID: id, Label: id.Label(), Anchor: id.Anchor(), Active: id == active}
	}
	return items
}

// PageOptions controls NewPageData.
type PageOptions struct {
	// Surface supplies the <html> class list, normally the one a
	// ThemeController applied the initial preference to.
	Surface *portfolio.ClassList
	Theme   portfolio.Theme
	Active  portfolio.SectionID
	Now     time.Time
	// AssetPrefix is prepended to stylesheet and script URLs, e.g. "/static".
	AssetPrefix string
	// WasmURL locates the browser host module. A bare name such as
	// DefaultWasmName is resolved under AssetPrefix. Empty omits the scripts.
	WasmURL      string
	ToggleAction string
}

// NewPageData assembles the template input. A zero Active means the home
// section and a zero Now means the current time.
func NewPageData(profile content.Profile, opts PageOptions) (PageData, error) {
	about, err := profile.AboutHTML()
	if err != nil {
		return PageData{}, err
	}

	active := opts.Active
	if !active.Valid() {
		active = portfolio.SectionHome
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	theme := opts.Theme
	if theme != portfolio.ThemeDark {
		theme = portfolio.ThemeLight
	}

	wasm := opts.WasmURL
	if IsAssetName(wasm) {
		wasm = opts.AssetPrefix + "/" + wasm
	}

	var class string
	if opts.Surface != nil {
		class = opts.Surface.String()
	} else if theme.IsDark() {
		class = portfolio.DarkClass
	}

	return PageData{
		Profile:      profile,
		AboutHTML:    about,
		Nav:          Navigation(active),
		Theme:        theme,
		HTMLClass:    class,
		Year:         now.Year(),
		AssetPrefix:  opts.AssetPrefix,
		WasmURL:      wasm,
		ToggleAction: opts.ToggleAction,
	}, nil
}

// Renderer executes the embedded page template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("site").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page to w. Nothing is written if execution fails.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

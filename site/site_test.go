package site

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanumantha123456/portfolio"
	"github.com/hanumantha123456/portfolio/content"
)

func render(t *testing.T, data PageData) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, data))
	return buf.String()
}

func TestNavigation(t *testing.T) {
	nav := Navigation(portfolio.SectionSkills)
	require.Len(t, nav, 8)
	assert.Equal(t, NavItem{ID: "home", Label: "Home", Anchor: "#home"}, nav[0])
	for _, item := range nav {
		assert.Equal(t, item.ID == portfolio.SectionSkills, item.Active, item.ID)
	}
}

func TestNewPageData(t *testing.T) {
	now := time.Date(2031, 1, 2, 0, 0, 0, 0, time.UTC)

	data, err := NewPageData(content.Default(), PageOptions{Theme: portfolio.ThemeDark, Now: now})
	require.NoError(t, err)
	assert.Equal(t, 2031, data.Year)
	assert.Equal(t, "dark", data.HTMLClass)
	assert.True(t, data.Nav[0].Active, "zero Active means home")

	surface := portfolio.NewClassList("scroll-smooth")
	data, err = NewPageData(content.Default(), PageOptions{Surface: surface, Theme: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, portfolio.ThemeLight, data.Theme)
	assert.Equal(t, "scroll-smooth", data.HTMLClass)
}

func TestRender(t *testing.T) {
	surface := portfolio.NewClassList()
	ctrl := portfolio.NewThemeController("v1", portfolio.WithSurface(surface))
	ctrl.SetPreference(context.Background(), portfolio.ThemeDark)

	data, err := NewPageData(content.Default(), PageOptions{
		Surface:     surface,
		Theme:       ctrl.CurrentPreference(),
		Active:      portfolio.SectionProjects,
		Now:         time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC),
		AssetPrefix: "/static",
	})
	require.NoError(t, err)
	html := render(t, data)

	assert.Contains(t, html, `<html lang="en" class="dark">`)
	assert.Contains(t, html, `href="#projects" data-section="projects" class="nav-link active" aria-current="true"`)
	assert.Contains(t, html, `href="#home" data-section="home" class="nav-link">`)
	assert.Contains(t, html, `class="tilt-card"`)
	assert.Equal(t, 7, strings.Count(html, `class="magnetic`), "hero, contact and resume buttons")
	assert.Contains(t, html, `href="mailto:hraya0204@gmail.com"`)
	assert.Contains(t, html, `href="/resume.pdf"`)
	assert.Contains(t, html, `src="/me.jpg"`)
	assert.Contains(t, html, "© 2030 Hanumantharaya")
	assert.Contains(t, html, `href="/static/style.css"`)
	assert.NotContains(t, html, "wasm_exec.js")
	assert.Contains(t, html, `<button id="theme-toggle" type="button"`, "no form without a toggle action")
	for _, id := range portfolio.Sections() {
		assert.Contains(t, html, `<section id="`+string(id)+`">`)
	}
}

func TestRender_ToggleForm(t *testing.T) {
	data, err := NewPageData(content.Default(), PageOptions{ToggleAction: "/theme/toggle"})
	require.NoError(t, err)
	html := render(t, data)
	assert.Contains(t, html, `<form method="post" action="/theme/toggle" class="theme-toggle">`)
	assert.Contains(t, html, `<button id="theme-toggle" type="submit"`)
}

func TestRender_ScriptsAfterContent(t *testing.T) {
	data, err := NewPageData(content.Default(), PageOptions{AssetPrefix: "/static", WasmURL: DefaultWasmName})
	require.NoError(t, err)
	assert.Equal(t, "/static/portfolio.wasm", data.WasmURL, "bare names resolve under the asset prefix")

	html := render(t, data)
	loader := strings.Index(html, `<script src="/static/wasm_exec.js">`)
	require.NotEqual(t, -1, loader)
	assert.Greater(t, loader, strings.Index(html, `<section id="resume">`), "host starts after every section is parsed")
	assert.Greater(t, loader, strings.Index(html, `<footer>`))
	assert.Less(t, loader, strings.Index(html, "</body>"))
	assert.NotContains(t, html[:strings.Index(html, "</head>")], "<script")
}

func TestNewPageData_WasmURL(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"", ""},
		{"portfolio.wasm", "/portfolio.wasm"},
		{"/app/main.wasm", "/app/main.wasm"},
		{"https://cdn.example.com/portfolio.wasm", "https://cdn.example.com/portfolio.wasm"},
	} {
		data, err := NewPageData(content.Default(), PageOptions{WasmURL: tc.in})
		require.NoError(t, err)
		assert.Equal(t, tc.want, data.WasmURL, tc.in)
	}
}

func TestCheckWasm(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, CheckWasm("", ""))
	assert.ErrorIs(t, CheckWasm("", DefaultWasmName), portfolio.ErrInvalidInput)
	assert.ErrorIs(t, CheckWasm(dir, DefaultWasmName), os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, WasmExecJS), []byte("//"), 0o644))
	assert.ErrorIs(t, CheckWasm(dir, DefaultWasmName), os.ErrNotExist, "module missing")
	assert.NoError(t, CheckWasm(dir, "https://cdn.example.com/portfolio.wasm"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultWasmName), []byte("\x00asm"), 0o644))
	assert.NoError(t, CheckWasm(dir, DefaultWasmName))
}

func TestRender_EscapesContent(t *testing.T) {
	p := content.Default()
	p.Intro.Name = `<script>alert("x")</script>`
	data, err := NewPageData(p, PageOptions{})
	require.NoError(t, err)
	html := render(t, data)
	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestMatchAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"resume.pdf":       {Data: []byte("%PDF")},
		"me.jpg":           {Data: []byte("jpg")},
		"style.css":        {Data: []byte("body{}")},
		"js/wasm_exec.js":  {Data: []byte("//")},
		"drafts/notes.txt": {Data: []byte("x")},
		".DS_Store":        {Data: []byte("x")},
	}

	all, err := MatchAssets(fsys, nil, []string{"drafts/**", ".DS_Store"})
	require.NoError(t, err)
	assert.Equal(t, []string{"js/wasm_exec.js", "me.jpg", "resume.pdf", "style.css"}, all)

	some, err := MatchAssets(fsys, []string{"*.pdf", "*.jpg", "*.pdf"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"me.jpg", "resume.pdf"}, some)

	_, err = MatchAssets(fsys, []string{"[unclosed"}, nil)
	assert.ErrorIs(t, err, portfolio.ErrInvalidInput)
}

func TestBuild(t *testing.T) {
	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "resume.pdf"), []byte("%PDF-1.4"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(assets, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assets, "img", "me.jpg"), []byte("jpg"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(assets, WasmExecJS), []byte("//"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(assets, DefaultWasmName), []byte("\x00asm"), 0o644))

	out := filepath.Join(t.TempDir(), "public")
	r, err := NewRenderer()
	require.NoError(t, err)

	res, err := Build(r, BuildOptions{
		Profile:   content.Default(),
		OutputDir: out,
		AssetsDir: assets,
		WasmURL:   DefaultWasmName,
		Now:       time.Date(2029, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "index.html", res.Page)
	assert.Equal(t, []string{"img/me.jpg", "portfolio.wasm", "resume.pdf", "wasm_exec.js"}, res.Assets)
	assert.Equal(t, "/portfolio.wasm", res.WasmURL)
	assert.NoError(t, res.WasmErr)

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `<html lang="en">`, "static build renders the light theme")
	assert.Contains(t, string(page), `<script src="/wasm_exec.js">`)
	assert.Contains(t, string(page), "© 2029")

	pdf, err := os.ReadFile(filepath.Join(out, "resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(pdf))
	assert.FileExists(t, filepath.Join(out, "img", "me.jpg"))
}

func TestBuild_NoOutputDir(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	_, err = Build(r, BuildOptions{Profile: content.Default()})
	assert.ErrorIs(t, err, portfolio.ErrInvalidInput)
}

func TestBuild_MissingWasmIsLeftOut(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)
	out := t.TempDir()

	res, err := Build(r, BuildOptions{
		Profile:   content.Default(),
		OutputDir: out,
		AssetsDir: t.TempDir(),
		WasmURL:   DefaultWasmName,
	})
	require.NoError(t, err)
	assert.Empty(t, res.WasmURL)
	assert.ErrorIs(t, res.WasmErr, os.ErrNotExist)

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(page), "<script")
}

func TestBuild_RenderFailureWritesNothing(t *testing.T) {
	broken := &Renderer{tmpl: template.Must(template.New("site").Parse(`{{define "page"}}<html>{{.Missing}}{{end}}`))}
	out := t.TempDir()

	_, err := Build(broken, BuildOptions{Profile: content.Default(), OutputDir: out})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(out, "index.html"))

	stale := filepath.Join(out, "index.html")
	require.NoError(t, os.WriteFile(stale, []byte("previous build"), 0o644))
	_, err = Build(broken, BuildOptions{Profile: content.Default(), OutputDir: out})
	require.Error(t, err)
	kept, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.Equal(t, "previous build", string(kept))
}

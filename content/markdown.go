package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// RenderMarkdown converts src to HTML. Raw HTML in src is not passed through.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("content: failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// AboutHTML renders the profile's About text.
func (p Profile) AboutHTML() (template.HTML, error) {
	return RenderMarkdown(p.About)
}

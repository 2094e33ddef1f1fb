package portfolio

import (
	"net/http"
	"strings"
)

// ColorSchemeHeader is the client hint browsers send with the user's
// preferred color scheme once the server asks for it via Accept-CH.
const ColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// StaticDetector always reports the same answer. The zero value reports
// that the environment cannot tell.
type StaticDetector struct {
	Dark  bool
	Known bool
}

func (d StaticDetector) Detect() (bool, bool) {
	return d.Dark, d.Known
}

// DetectorFunc adapts a plain function to ColorSchemeDetector.
type DetectorFunc func() (prefersDark bool, ok bool)

func (f DetectorFunc) Detect() (bool, bool) {
	if f == nil {
		return false, false
	}
	return f()
}

// HeaderDetector reads the color scheme from the request's client hint header.
type HeaderDetector struct {
	Header http.Header
}

// NewHeaderDetector returns a detector for r. A nil request yields a detector
// that cannot tell.
func NewHeaderDetector(r *http.Request) HeaderDetector {
	if r == nil {
		return HeaderDetector{}
	}
	return HeaderDetector{Header: r.Header}
}

func (d HeaderDetector) Detect() (bool, bool) {
	if d.Header == nil {
		return false, false
	}
	v := strings.Trim(strings.TrimSpace(d.Header.Get(ColorSchemeHeader)), `"`)
	switch strings.ToLower(v) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

package portfolio

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"dark", ThemeDark, false},
		{"light", ThemeLight, false},
		{" DARK ", ThemeDark, false},
		{"Light", ThemeLight, false},
		{"", "", true},
		{"system", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTheme(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTheme)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSection(t *testing.T) {
	id, err := ParseSection("Projects")
	require.NoError(t, err)
	assert.Equal(t, SectionProjects, id)

	_, err = ParseSection("blog")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestThemeFromStored(t *testing.T) {
	assert.Equal(t, ThemeDark, themeFromStored("dark"))
	assert.Equal(t, ThemeLight, themeFromStored("light"))
	assert.Equal(t, ThemeLight, themeFromStored("Dark"))
	assert.Equal(t, ThemeLight, themeFromStored(""))
}

func TestTheme(t *testing.T) {
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
	assert.Equal(t, ThemeLight, ThemeDark.Opposite())
	assert.Equal(t, ThemeDark, ThemeLight.Opposite())
	assert.Equal(t, ThemeDark, Theme("").Opposite())
}

func TestHeaderDetector(t *testing.T) {
	tests := []struct {
		header   string
		dark, ok bool
	}{
		{"dark", true, true},
		{`"dark"`, true, true},
		{`"light"`, false, true},
		{"", false, false},
		{"no-preference", false, false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set(ColorSchemeHeader, tt.header)
		}
		dark, ok := NewHeaderDetector(r).Detect()
		assert.Equal(t, tt.dark, dark, "header %q", tt.header)
		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
	}

	_, ok := NewHeaderDetector(nil).Detect()
	assert.False(t, ok)
}

func TestDetectorFunc(t *testing.T) {
	var nilFn DetectorFunc
	_, ok := nilFn.Detect()
	assert.False(t, ok)

	dark, ok := DetectorFunc(func() (bool, bool) { return true, true }).Detect()
	assert.True(t, dark)
	assert.True(t, ok)
}

func TestClassList(t *testing.T) {
	cl := NewClassList("scroll-smooth", " ", "antialiased")
	assert.Equal(t, "antialiased scroll-smooth", cl.String())

	cl.AddClass(DarkClass)
	cl.AddClass(DarkClass)
	assert.True(t, cl.HasClass(DarkClass))
	assert.Equal(t, "antialiased dark scroll-smooth", cl.String())

	cl.RemoveClass(DarkClass)
	cl.RemoveClass(DarkClass)
	assert.False(t, cl.HasClass(DarkClass))

	var zero ClassList
	zero.AddClass("x")
	assert.True(t, zero.HasClass("x"))
}

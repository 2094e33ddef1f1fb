// validation.go
package portfolio

import (
	"fmt"
	"strings"
)

// ParseTheme converts an external value ("light" or "dark", case-insensitive)
// to a Theme. Anything else yields ErrInvalidTheme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// ParseSection converts an external value to one of the fixed section ids.
func ParseSection(s string) (SectionID, error) {
	id := SectionID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	return id, nil
}

// themeFromStored interprets a stored literal. Only "dark" means dark.
func themeFromStored(v string) Theme {
	if Theme(v) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Package portfolio defines the core types used by the view-state controllers.
package portfolio

import (
	"time"
)

// Preference is a single persisted setting for a visitor.
// JSON tags are included for serialization, typically used by storage and cache implementations.
type Preference struct {
	// VisitorID scopes the preference. The browser host uses LocalVisitorID;
	// the server uses the id carried in the visitor cookie.
	VisitorID string `json:"visitor_id"`
	// Key identifies the setting, e.g. ThemeStorageKey.
	Key string `json:"key"`
	// Value is the stored literal, e.g. "dark".
	Value string `json:"value"`
	// UpdatedAt records when the value was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// Theme is the light/dark display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeStorageKey is the storage key the theme preference is persisted under.
const ThemeStorageKey = "theme"

// DarkClass is the class applied to the root surface while the dark theme is active.
const DarkClass = "dark"

// LocalVisitorID is the visitor id used when the storage is already
// per-visitor, as browser local storage is.
const LocalVisitorID = "local"

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Opposite returns the other theme. Anything that is not dark toggles to dark.
func (t Theme) Opposite() Theme {
	if t.IsDark() {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// Config holds the internal configuration for a ThemeController.
// It is populated by applying functional Options when a controller is created.
type Config struct {
	storage  Storage
	cache    Cache
	logger   Logger
	detector ColorSchemeDetector
	surface  Surface
	cacheTTL time.Duration
}

// Option defines the signature for a functional option that configures a controller.
type Option func(*Config)

// WithStorage sets the Storage the theme preference is persisted in.
// Without it the preference lives only in memory for the controller's lifetime.
func WithStorage(s Storage) Option {
	return func(c *Config) {
		c.storage = s
	}
}

// WithCache sets an optional read-through Cache in front of the Storage.
func WithCache(cache Cache) Option {
	return func(c *Config) {
		c.cache = cache
	}
}

// WithCacheTTL overrides how long cached preferences stay valid.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) {
		c.cacheTTL = ttl
	}
}

// WithLogger sets the Logger. A nil logger discards output.
func WithLogger(l Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// WithDetector sets the environment's color-scheme detector.
func WithDetector(d ColorSchemeDetector) Option {
	return func(c *Config) {
		c.detector = d
	}
}

// WithSurface sets the root surface the dark class is applied to.
func WithSurface(s Surface) Option {
	return func(c *Config) {
		c.surface = s
	}
}

func newConfig(opts []Option) *Config {
	cfg := &Config{
		cacheTTL: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = nopLogger{}
	}
	return cfg
}

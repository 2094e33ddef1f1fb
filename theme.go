// theme.go
package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ThemeController owns the theme preference of one visitor. It reads the
// persisted value, falls back to the environment's color scheme, and keeps the
// root surface's dark class in step with the current value.
//
// Persistence is best effort: storage and cache failures are logged and
// swallowed, and the in-memory value stays authoritative for the lifetime of
// the controller.
type ThemeController struct {
	mu        sync.RWMutex
	config    *Config
	visitorID string
	current   Theme
}

// NewThemeController creates a controller for visitorID. An empty visitorID
// is replaced by LocalVisitorID. The current preference starts as light until
// InitialPreference or SetPreference is called.
func NewThemeController(visitorID string, opts ...Option) *ThemeController {
	if visitorID == "" {
		visitorID = LocalVisitorID
	}
	return &ThemeController{
		config:    newConfig(opts),
		visitorID: visitorID,
		current:   ThemeLight,
	}
}

// InitialPreference resolves the preference to start with and applies it to
// the surface. A stored value wins; with nothing stored the detector decides;
// without a usable detector the result is light.
func (c *ThemeController) InitialPreference(ctx context.Context) Theme {
	theme, source := c.resolve(ctx)
	c.config.logger.Debug("Resolved initial theme", "visitor_id", c.visitorID, "theme", theme, "source", source)

	c.mu.Lock()
	c.current = theme
	c.apply(theme)
	c.mu.Unlock()
	return theme
}

// SetPreference applies value to the surface and persists it. Any value other
// than ThemeDark is treated as ThemeLight.
func (c *ThemeController) SetPreference(ctx context.Context, value Theme) {
	if !value.IsDark() {
		value = ThemeLight
	}

	c.mu.Lock()
	c.current = value
	c.apply(value)
	c.mu.Unlock()

	c.persist(ctx, value)
}

// Toggle flips the current preference, persists it, and returns the new value.
func (c *ThemeController) Toggle(ctx context.Context) Theme {
	next := c.CurrentPreference().Opposite()
	c.SetPreference(ctx, next)
	return next
}

// Reset forgets the stored preference so the environment decides again, then
// applies and returns the re-resolved value.
func (c *ThemeController) Reset(ctx context.Context) Theme {
	if c.config.storage != nil {
		if err := c.config.storage.Delete(ctx, c.visitorID, ThemeStorageKey); err != nil && !errors.Is(err, ErrNotFound) {
			c.config.logger.Warn("Failed to delete theme preference", "visitor_id", c.visitorID, "error", err)
		}
		if c.config.cache != nil {
			c.deleteFromCache(ctx)
		}
	}

	theme, source := c.resolve(ctx)
	c.config.logger.Debug("Reset theme", "visitor_id", c.visitorID, "theme", theme, "source", source)

	c.mu.Lock()
	c.current = theme
	c.apply(theme)
	c.mu.Unlock()
	return theme
}

// CurrentPreference returns the value most recently resolved or set.
func (c *ThemeController) CurrentPreference() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// VisitorID returns the id the preference is scoped to.
func (c *ThemeController) VisitorID() string {
	return c.visitorID
}

func (c *ThemeController) resolve(ctx context.Context) (Theme, string) {
	if stored, ok := c.stored(ctx); ok {
		return themeFromStored(stored), "storage"
	}
	if c.config.detector != nil {
		if dark, ok := c.config.detector.Detect(); ok {
			if dark {
				return ThemeDark, "environment"
			}
			return ThemeLight, "environment"
		}
	}
	return ThemeLight, "default"
}

// stored returns the persisted literal, consulting the cache first.
func (c *ThemeController) stored(ctx context.Context) (string, bool) {
	if c.config.storage == nil {
		return "", false
	}

	if c.config.cache != nil {
		if pref, err := c.getFromCache(ctx); err == nil {
			return pref.Value, pref.Value != ""
		}
	}

	pref, err := c.config.storage.Get(ctx, c.visitorID, ThemeStorageKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.config.logger.Warn("Failed to read theme preference", "visitor_id", c.visitorID, "error", err)
		}
		return "", false
	}

	if c.config.cache != nil {
		c.setToCache(ctx, pref)
	}
	return pref.Value, pref.Value != ""
}

func (c *ThemeController) persist(ctx context.Context, value Theme) {
	if c.config.storage == nil {
		return
	}

	pref := &Preference{
		VisitorID: c.visitorID,
		Key:       ThemeStorageKey,
		Value:     value.String(),
		UpdatedAt: time.Now(),
	}
	if err := c.config.storage.Set(ctx, pref); err != nil {
		c.config.logger.Warn("Failed to persist theme preference", "visitor_id", c.visitorID, "theme", value, "error", err)
		if c.config.cache != nil {
			c.deleteFromCache(ctx)
		}
		return
	}

	if c.config.cache != nil {
		c.setToCache(ctx, pref)
	}
}

// apply mirrors theme onto the surface. Callers hold c.mu.
func (c *ThemeController) apply(theme Theme) {
	if c.config.surface == nil {
		return
	}
	if theme.IsDark() {
		c.config.surface.AddClass(DarkClass)
	} else {
		c.config.surface.RemoveClass(DarkClass)
	}
}

func (c *ThemeController) cacheKey() string {
	return fmt.Sprintf("pref:%s:%s", c.visitorID, ThemeStorageKey)
}

func (c *ThemeController) getFromCache(ctx context.Context) (*Preference, error) {
	data, err := c.config.cache.Get(ctx, c.cacheKey())
	if err != nil {
		return nil, err
	}

	raw, ok := data.([]byte)
	if !ok {
		// Caches that decode JSON themselves hand back a string.
		s, isString := data.(string)
		if !isString {
			return nil, fmt.Errorf("%w: unexpected cached type %T", ErrCacheUnavailable, data)
		}
		raw = []byte(s)
	}

	var pref Preference
	if err := json.Unmarshal(raw, &pref); err != nil {
		return nil, err
	}
	return &pref, nil
}

func (c *ThemeController) setToCache(ctx context.Context, pref *Preference) {
	data, err := json.Marshal(pref)
	if err != nil {
		c.config.logger.Error("Failed to marshal preference for cache", "error", err)
		return
	}

	if err := c.config.cache.Set(ctx, c.cacheKey(), data, c.config.cacheTTL); err != nil {
		c.config.logger.Warn("Failed to cache preference", "error", err)
	}
}

func (c *ThemeController) deleteFromCache(ctx context.Context) {
	if err := c.config.cache.Delete(ctx, c.cacheKey()); err != nil {
		c.config.logger.Warn("Failed to delete preference from cache", "error", err)
	}
}

// Package portfolio defines the host interfaces the view-state controllers run against.
package portfolio

import (
	"context"
	"time"
)

// Storage defines the methods required for a preference storage backend.
// Implementations return ErrNotFound when no value is stored for a key.
type Storage interface {
	Get(ctx context.Context, visitorID, key string) (*Preference, error)
	Set(ctx context.Context, pref *Preference) error
	Delete(ctx context.Context, visitorID, key string) error
	GetAll(ctx context.Context, visitorID string) (map[string]*Preference, error)
	Close() error
}

// Cache defines the methods required for a caching backend.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Surface is the root rendering surface a theme is applied to. In the browser
// it is the class list of the document element.
type Surface interface {
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// ColorSchemeDetector reports the environment's color-scheme preference.
// ok is false when the environment cannot tell.
type ColorSchemeDetector interface {
	Detect() (prefersDark bool, ok bool)
}

// Element is a page element that pointer effects can be bound to.
type Element interface {
	// Bounds returns the element's bounding box in viewport coordinates.
	Bounds() Rect
	// SetTransform replaces the element's CSS transform. An empty string clears it.
	SetTransform(css string)
	// On registers a pointer handler for event ("pointermove" or "pointerleave")
	// and returns a func that removes it.
	On(event string, fn func(Point)) (remove func())
}

// Document looks up elements on the page.
type Document interface {
	Query(selector string) (Element, bool)
	QueryAll(selector string) []Element
}

// IntersectionObserver watches sections for viewport intersection.
type IntersectionObserver interface {
	Observe(id SectionID) error
	Disconnect()
}

// ObserverFactory creates an IntersectionObserver that delivers entries to
// callback whenever a section crosses threshold. It returns
// ErrObserverUnsupported when the runtime has no observation primitive.
type ObserverFactory func(threshold float64, callback func([]IntersectionEntry)) (IntersectionObserver, error)

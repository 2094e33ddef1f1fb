// sections.go
package portfolio

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SectionID identifies one anchorable region of the page.
type SectionID string

// The fixed, ordered set of sections, in document order.
const (
	SectionHome       SectionID = "home"
	SectionAbout      SectionID = "about"
	SectionSkills     SectionID = "skills"
	SectionProjects   SectionID = "projects"
	SectionExperience SectionID = "experience"
	SectionEducation  SectionID = "education"
	SectionContact    SectionID = "contact"
	SectionResume     SectionID = "resume"
)

// VisibilityThreshold is the visible fraction of a section at which it becomes active.
const VisibilityThreshold = 0.5

var sectionOrder = [...]SectionID{
	SectionHome,
	SectionAbout,
	SectionSkills,
	SectionProjects,
	SectionExperience,
	SectionEducation,
	SectionContact,
	SectionResume,
}

var titleCaser = cases.Title(language.English)

// Sections returns the section ids in document order. The slice is a copy.
func Sections() []SectionID {
	out := make([]SectionID, len(sectionOrder))
	copy(out, sectionOrder[:])
	return out
}

// Index returns the document-order position of id, or -1 if id is not a section.
func (id SectionID) Index() int {
	for i, s := range sectionOrder {
		if s == id {
			return i
		}
	}
	return -1
}

// Valid reports whether id is one of the fixed sections.
func (id SectionID) Valid() bool {
	return id.Index() >= 0
}

// Label is the navigation label, e.g. "Projects".
func (id SectionID) Label() string {
	return titleCaser.String(string(id))
}

// Anchor is the in-page link target, e.g. "#projects".
func (id SectionID) Anchor() string {
	return "#" + string(id)
}

// IntersectionEntry reports how much of a section is inside the viewport.
type IntersectionEntry struct {
	ID             SectionID
	IsIntersecting bool
	// Ratio is the visible fraction of the section, in [0, 1].
	Ratio float64
}

// Tracker reports which section is active. It starts at the first section and
// only ever holds ids from the fixed set.
type Tracker struct {
	mu        sync.RWMutex
	active    SectionID
	logger    Logger
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(SectionID)
}

// NewTracker returns a tracker whose active section is SectionHome.
func NewTracker(logger Logger) *Tracker {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Tracker{
		active: sectionOrder[0],
		logger: logger,
	}
}

// Active returns the current active section.
func (t *Tracker) Active() SectionID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// Observe processes one batch of intersection entries. A section qualifies when
// it intersects and at least VisibilityThreshold of it is visible. When several
// qualify in the same batch the topmost in document order wins.
func (t *Tracker) Observe(entries []IntersectionEntry) {
	winner, ok := pickActive(entries)
	if !ok {
		return
	}

	t.mu.Lock()
	if t.active == winner {
		t.mu.Unlock()
		return
	}
	t.active = winner
	listeners := append([]listener(nil), t.listeners...)
	t.mu.Unlock()

	t.logger.Debug("Active section changed", "section", winner)
	for _, l := range listeners {
		l.fn(winner)
	}
}

// OnChange registers fn to run whenever the active section changes. Listeners
// run in registration order. The returned func unregisters it.
func (t *Tracker) OnChange(fn func(SectionID)) (remove func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners = append(t.listeners, listener{id: id, fn: fn})
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		for i, l := range t.listeners {
			if l.id == id {
				t.listeners = append(t.listeners[:i:i], t.listeners[i+1:]...)
				break
			}
		}
		t.mu.Unlock()
	}
}

// Mount starts observing every section through factory and returns the
// disposer that stops it. A nil factory or one that reports
// ErrObserverUnsupported leaves the initial section active for good.
// Entries delivered after the disposer ran are ignored.
func (t *Tracker) Mount(factory ObserverFactory) Disposer {
	if factory == nil {
		t.logger.Debug("No intersection observer, active section stays fixed", "section", t.Active())
		return func() {}
	}

	var (
		mu      sync.Mutex
		stopped bool
	)
	observer, err := factory(VisibilityThreshold, func(entries []IntersectionEntry) {
		mu.Lock()
		done := stopped
		mu.Unlock()
		if done {
			return
		}
		t.Observe(entries)
	})
	if err != nil {
		t.logger.Debug("Intersection observer unavailable, active section stays fixed", "error", err)
		return func() {}
	}

	for _, id := range sectionOrder {
		if err := observer.Observe(id); err != nil {
			t.logger.Debug("Section not observed", "section", id, "error", err)
		}
	}

	return func() {
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		stopped = true
		mu.Unlock()
		observer.Disconnect()
	}
}

func pickActive(entries []IntersectionEntry) (SectionID, bool) {
	best := -1
	for _, e := range entries {
		if !e.IsIntersecting || e.Ratio < VisibilityThreshold {
			continue
		}
		idx := e.ID.Index()
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
		}
	}
	if best < 0 {
		return "", false
	}
	return sectionOrder[best], true
}

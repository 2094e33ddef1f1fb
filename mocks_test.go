package portfolio

import (
	"context"
	"sync"
	"time"
)

// MockStorage implements the Storage interface for testing.
type MockStorage struct {
	mu       sync.RWMutex
	data     map[string]map[string]*Preference
	closed   bool
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func NewMockStorage() *MockStorage {
	return &MockStorage{
		data: make(map[string]map[string]*Preference),
	}
}

func (m *MockStorage) Get(ctx context.Context, visitorID, key string) (*Preference, error) {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++

	if m.closed {
		return nil, ErrStorageUnavailable
	}
	if m.getErr != nil {
		return nil, m.getErr
	}
	if prefs, ok := m.data[visitorID]; ok {
		if pref, ok := prefs[key]; ok {
			cp := *pref
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockStorage) Set(ctx context.Context, pref *Preference) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++

	if m.closed {
		return ErrStorageUnavailable
	}
	if m.setErr != nil {
		return m.setErr
	}
	if _, ok := m.data[pref.VisitorID]; !ok {
		m.data[pref.VisitorID] = make(map[string]*Preference)
	}
	cp := *pref
	m.data[pref.VisitorID][pref.Key] = &cp
	return nil
}

func (m *MockStorage) Delete(ctx context.Context, visitorID, key string) error {
	_, _ = ctx.Deadline()
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageUnavailable
	}
	if prefs, ok := m.data[visitorID]; ok {
		if _, ok := prefs[key]; ok {
			delete(prefs, key)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockStorage) GetAll(ctx context.Context, visitorID string) (map[string]*Preference, error) {
	_, _ = ctx.Deadline()
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageUnavailable
	}
	out := make(map[string]*Preference)
	for k, v := range m.data[visitorID] {
		cp := *v
		out[k] = &cp
	}
	return out, nil
}

func (m *MockStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// value returns the stored literal for visitorID/key, or "" when absent.
func (m *MockStorage) value(visitorID, key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.data[visitorID][key]; ok {
		return p.Value
	}
	return ""
}

// MockCache implements the Cache interface for testing.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]interface{}
}

func NewMockCache() *MockCache {
	return &MockCache{data: make(map[string]interface{})}
}

func (m *MockCache) Get(_ context.Context, key string) (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (m *MockCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCache) Close() error {
	return nil
}

// mockElement is a DOM element stand-in that records its transform and
// lets tests fire pointer events at it.
type mockElement struct {
	mu        sync.Mutex
	bounds    Rect
	transform string
	handlers  map[string]map[int]func(Point)
	nextID    int
	attrs     map[string]string
	classes   *ClassList
}

func newMockElement(bounds Rect) *mockElement {
	return &mockElement{
		bounds:   bounds,
		handlers: make(map[string]map[int]func(Point)),
		attrs:    make(map[string]string),
		classes:  NewClassList(),
	}
}

// newMockLink returns a navigation link for section id.
func newMockLink(id SectionID) *mockElement {
	e := newMockElement(Rect{})
	e.attrs[NavSectionAttr] = string(id)
	return e
}

func (e *mockElement) Attribute(name string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attrs[name]
}

func (e *mockElement) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.attrs[name] = value
}

func (e *mockElement) RemoveAttribute(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.attrs, name)
}

func (e *mockElement) Classes() Surface { return e.classes }

func (e *mockElement) Bounds() Rect { return e.bounds }

func (e *mockElement) SetTransform(css string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform = css
}

func (e *mockElement) Transform() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transform
}

func (e *mockElement) On(event string, fn func(Point)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handlers[event] == nil {
		e.handlers[event] = make(map[int]func(Point))
	}
	id := e.nextID
	e.nextID++
	e.handlers[event][id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers[event], id)
	}
}

func (e *mockElement) fire(event string, p Point) {
	e.mu.Lock()
	fns := make([]func(Point), 0, len(e.handlers[event]))
	for _, fn := range e.handlers[event] {
		fns = append(fns, fn)
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(p)
	}
}

func (e *mockElement) listenerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, hs := range e.handlers {
		n += len(hs)
	}
	return n
}

// mockDocument maps selectors to elements.
type mockDocument struct {
	elements map[string][]*mockElement
}

func (d *mockDocument) Query(selector string) (Element, bool) {
	els := d.elements[selector]
	if len(els) == 0 {
		return nil, false
	}
	return els[0], true
}

func (d *mockDocument) QueryAll(selector string) []Element {
	var out []Element
	for _, el := range d.elements[selector] {
		out = append(out, el)
	}
	return out
}

// mockObserver records what it was asked to observe and lets tests push entries.
type mockObserver struct {
	mu           sync.Mutex
	threshold    float64
	callback     func([]IntersectionEntry)
	observed     []SectionID
	disconnected bool
}

func (o *mockObserver) Observe(id SectionID) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observed = append(o.observed, id)
	return nil
}

func (o *mockObserver) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.disconnected = true
}

func (o *mockObserver) emit(entries ...IntersectionEntry) {
	o.callback(entries)
}

func mockObserverFactory(out **mockObserver) ObserverFactory {
	return func(threshold float64, callback func([]IntersectionEntry)) (IntersectionObserver, error) {
		o := &mockObserver{threshold: threshold, callback: callback}
		*out = o
		return o, nil
	}
}

package portfolio

import (
	"sort"
	"strings"
	"sync"
)

// ClassList is an in-memory Surface. The server renders its String() into the
// class attribute of the <html> element.
type ClassList struct {
	mu      sync.RWMutex
	classes map[string]struct{}
}

// NewClassList returns a ClassList holding the given classes.
func NewClassList(classes ...string) *ClassList {
	cl := &ClassList{classes: make(map[string]struct{}, len(classes))}
	for _, name := range classes {
		cl.AddClass(name)
	}
	return cl
}

func (cl *ClassList) AddClass(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	cl.mu.Lock()
	defer cl.mu.Unlock()
	if cl.classes == nil {
		cl.classes = make(map[string]struct{})
	}
	cl.classes[name] = struct{}{}
}

func (cl *ClassList) RemoveClass(name string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	delete(cl.classes, name)
}

func (cl *ClassList) HasClass(name string) bool {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	_, ok := cl.classes[name]
	return ok
}

// String returns the classes sorted and space separated.
func (cl *ClassList) String() string {
	cl.mu.RLock()
	names := make([]string, 0, len(cl.classes))
	for name := range cl.classes {
		names = append(names, name)
	}
	cl.mu.RUnlock()

	sort.Strings(names)
	return strings.Join(names, " ")
}

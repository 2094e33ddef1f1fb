package storage

import (
	"context"
	"sync"
	"time"

	"github.com/hanumantha123456/portfolio"
)

// MemoryStorage keeps preferences in a map. Nothing survives a restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	prefs map[string]map[string]*portfolio.Preference // visitorID -> key -> Preference
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		prefs: make(map[string]map[string]*portfolio.Preference),
	}
}

// Get returns portfolio.ErrNotFound if nothing is stored for visitorID and key.
func (s *MemoryStorage) Get(_ context.Context, visitorID, key string) (*portfolio.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pref, ok := s.prefs[visitorID][key]
	if !ok {
		return nil, portfolio.ErrNotFound
	}
	cp := *pref
	return &cp, nil
}

// Set stores a copy of pref and stamps UpdatedAt.
func (s *MemoryStorage) Set(_ context.Context, pref *portfolio.Preference) error {
	if pref == nil {
		return portfolio.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prefs[pref.VisitorID]; !ok {
		s.prefs[pref.VisitorID] = make(map[string]*portfolio.Preference)
	}
	cp := *pref
	cp.UpdatedAt = time.Now()
	s.prefs[pref.VisitorID][pref.Key] = &cp
	return nil
}

// Delete removes the preference. Deleting something absent is not an error.
func (s *MemoryStorage) Delete(_ context.Context, visitorID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	visitorPrefs, ok := s.prefs[visitorID]
	if !ok {
		return nil
	}
	delete(visitorPrefs, key)
	if len(visitorPrefs) == 0 {
		delete(s.prefs, visitorID)
	}
	return nil
}

func (s *MemoryStorage) GetAll(_ context.Context, visitorID string) (map[string]*portfolio.Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*portfolio.Preference, len(s.prefs[visitorID]))
	for k, v := range s.prefs[visitorID] {
		cp := *v
		out[k] = &cp
	}
	return out, nil
}

// Close is a no-op.
func (s *MemoryStorage) Close() error {
	return nil
}

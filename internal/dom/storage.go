//go:build js && wasm

package dom

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/hanumantha123456/portfolio"
)

// LocalStorage keeps preferences in window.localStorage under their bare key,
// so the value is shared with any script reading localStorage.theme. The
// visitor id is not part of the key: a browser profile is one visitor.
type LocalStorage struct {
	ls js.Value
}

// NewLocalStorage returns the page's localStorage. Browsers that block
// storage access report ErrStorageUnavailable.
func NewLocalStorage() (s *LocalStorage, err error) {
	defer catch(portfolio.ErrStorageUnavailable, &err)
	ls := js.Global().Get("localStorage")
	if !defined(ls) {
		return nil, fmt.Errorf("%w: localStorage missing", portfolio.ErrStorageUnavailable)
	}
	return &LocalStorage{ls: ls}, nil
}

func (s *LocalStorage) Get(_ context.Context, visitorID, key string) (pref *portfolio.Preference, err error) {
	defer catch(portfolio.ErrStorageUnavailable, &err)
	v := s.ls.Call("getItem", key)
	if !defined(v) {
		return nil, portfolio.ErrNotFound
	}
	return &portfolio.Preference{VisitorID: visitorID, Key: key, Value: v.String()}, nil
}

func (s *LocalStorage) Set(_ context.Context, pref *portfolio.Preference) (err error) {
	if pref == nil {
		return portfolio.ErrInvalidInput
	}
	defer catch(portfolio.ErrStorageUnavailable, &err)
	s.ls.Call("setItem", pref.Key, pref.Value)
	return nil
}

func (s *LocalStorage) Delete(_ context.Context, _, key string) (err error) {
	defer catch(portfolio.ErrStorageUnavailable, &err)
	s.ls.Call("removeItem", key)
	return nil
}

func (s *LocalStorage) GetAll(_ context.Context, visitorID string) (out map[string]*portfolio.Preference, err error) {
	defer catch(portfolio.ErrStorageUnavailable, &err)
	out = make(map[string]*portfolio.Preference)
	n := s.ls.Get("length").Int()
	for i := 0; i < n; i++ {
		key := s.ls.Call("key", i).String()
		out[key] = &portfolio.Preference{
			VisitorID: visitorID,
			Key:       key,
			Value:     s.ls.Call("getItem", key).String(),
		}
	}
	return out, nil
}

func (s *LocalStorage) Close() error {
	return nil
}

// MediaDetector answers from the prefers-color-scheme media query.
type MediaDetector struct{}

func (MediaDetector) Detect() (dark bool, ok bool) {
	defer func() {
		if recover() != nil {
			dark, ok = false, false
		}
	}()
	matchMedia := js.Global().Get("matchMedia")
	if matchMedia.Type() != js.TypeFunction {
		return false, false
	}
	return js.Global().Call("matchMedia", "(prefers-color-scheme: dark)").Get("matches").Bool(), true
}

// errors.go
package portfolio

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input parameters")
	ErrInvalidTheme        = errors.New("invalid theme preference")
	ErrUnknownSection      = errors.New("unknown section id")
	ErrNotFound            = errors.New("preference not found")
	ErrStorageUnavailable  = errors.New("storage backend unavailable")
	ErrCacheUnavailable    = errors.New("cache backend unavailable")
	ErrObserverUnsupported = errors.New("intersection observer unsupported")
)

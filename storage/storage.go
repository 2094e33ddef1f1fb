// Package storage holds the persistent backends for visitor preferences.
package storage

import (
	"fmt"
	"strings"

	"github.com/hanumantha123456/portfolio"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Open returns the backend named by kind. dsn is a file path for sqlite and a
// connection string for postgres; memory ignores it.
func Open(kind, dsn string) (portfolio.Storage, error) {
	switch strings.ToLower(kind) {
	case "", BackendMemory:
		return NewMemoryStorage(), nil
	case BackendSQLite:
		s, err := NewSQLiteStorage(dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendPostgres:
		s, err := NewPostgresStorage(dsn)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage backend %q", portfolio.ErrInvalidInput, kind)
	}
}

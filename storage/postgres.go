package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/hanumantha123456/portfolio"
)

// sqlOpenFunc is swapped out in tests.
var sqlOpenFunc = sql.Open

const (
	createTableSQL = `
		CREATE TABLE IF NOT EXISTS preferences (
			visitor_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (visitor_id, key)
		);
	`

	upsertSQL = `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (visitor_id, key)
		DO UPDATE SET value = $3, updated_at = $4
	`

	selectSQL = `
		SELECT visitor_id, key, value, updated_at
		FROM preferences
		WHERE visitor_id = $1 AND key = $2
	`

	selectAllSQL = `
		SELECT visitor_id, key, value, updated_at
		FROM preferences
		WHERE visitor_id = $1
	`

	deleteSQL = `
		DELETE FROM preferences
		WHERE visitor_id = $1 AND key = $2
	`
)

// PostgresStorage persists preferences in PostgreSQL.
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage connects using connString and runs migrations.
func NewPostgresStorage(connString string) (*PostgresStorage, error) {
	db, err := sqlOpenFunc("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: failed to ping database: %w", err)
	}

	storage := &PostgresStorage{db: db}
	if err := storage.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) migrate() error {
	if _, err := s.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("postgres: failed to execute create table statement: %w", err)
	}
	return nil
}

// Get returns portfolio.ErrNotFound if the preference does not exist.
func (s *PostgresStorage) Get(ctx context.Context, visitorID, key string) (*portfolio.Preference, error) {
	var pref portfolio.Preference
	err := s.db.QueryRowContext(ctx, selectSQL, visitorID, key).Scan(
		&pref.VisitorID,
		&pref.Key,
		&pref.Value,
		&pref.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, portfolio.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan preference for visitor '%s', key '%s': %w", visitorID, key, err)
	}
	return &pref, nil
}

// Set inserts or replaces the preference. A zero UpdatedAt is stamped with the current time.
func (s *PostgresStorage) Set(ctx context.Context, pref *portfolio.Preference) error {
	if pref == nil {
		return portfolio.ErrInvalidInput
	}
	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, upsertSQL,
		pref.VisitorID,
		pref.Key,
		pref.Value,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to execute upsert for visitor '%s', key '%s': %w", pref.VisitorID, pref.Key, err)
	}
	return nil
}

func (s *PostgresStorage) GetAll(ctx context.Context, visitorID string) (map[string]*portfolio.Preference, error) {
	rows, err := s.db.QueryContext(ctx, selectAllSQL, visitorID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query preferences for visitor '%s': %w", visitorID, err)
	}
	defer rows.Close()

	prefs, err := scanPreferences(rows)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return prefs, nil
}

// Delete returns portfolio.ErrNotFound if no row matched.
func (s *PostgresStorage) Delete(ctx context.Context, visitorID, key string) error {
	result, err := s.db.ExecContext(ctx, deleteSQL, visitorID, key)
	if err != nil {
		return fmt.Errorf("postgres: failed to execute delete for visitor '%s', key '%s': %w", visitorID, key, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("postgres: failed to get affected rows: %w", err)
	}
	if n == 0 {
		return portfolio.ErrNotFound
	}
	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

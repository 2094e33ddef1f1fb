package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/hanumantha123456/portfolio"
)

const (
	sqliteCreateTableSQL = `
		CREATE TABLE IF NOT EXISTS preferences (
			visitor_id TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (visitor_id, key)
		);
	`

	sqliteUpsertSQL = `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor_id, key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	sqliteSelectSQL = `
		SELECT visitor_id, key, value, updated_at
		FROM preferences
		WHERE visitor_id = ? AND key = ?
	`

	sqliteSelectAllSQL = `
		SELECT visitor_id, key, value, updated_at
		FROM preferences
		WHERE visitor_id = ?
	`

	sqliteDeleteSQL = `
		DELETE FROM preferences
		WHERE visitor_id = ? AND key = ?
	`
)

// SQLiteStorage persists preferences in a single SQLite file.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (or creates) the database at dbPath and runs migrations.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: sqlite: empty database path", portfolio.ErrInvalidInput)
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to ping database: %w", err)
	}

	storage := &SQLiteStorage{db: db}
	if err := storage.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) migrate() error {
	_, err := s.db.Exec(sqliteCreateTableSQL)
	return err
}

// Get returns portfolio.ErrNotFound if the preference does not exist.
func (s *SQLiteStorage) Get(ctx context.Context, visitorID, key string) (*portfolio.Preference, error) {
	var pref portfolio.Preference
	err := s.db.QueryRowContext(ctx, sqliteSelectSQL, visitorID, key).Scan(
		&pref.VisitorID,
		&pref.Key,
		&pref.Value,
		&pref.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, portfolio.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to get preference for visitor '%s', key '%s': %w", visitorID, key, err)
	}
	return &pref, nil
}

// Set inserts or replaces the preference. A zero UpdatedAt is stamped with the current time.
func (s *SQLiteStorage) Set(ctx context.Context, pref *portfolio.Preference) error {
	if pref == nil {
		return portfolio.ErrInvalidInput
	}
	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, sqliteUpsertSQL,
		pref.VisitorID,
		pref.Key,
		pref.Value,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: failed to set preference for visitor '%s', key '%s': %w", pref.VisitorID, pref.Key, err)
	}
	return nil
}

func (s *SQLiteStorage) GetAll(ctx context.Context, visitorID string) (map[string]*portfolio.Preference, error) {
	rows, err := s.db.QueryContext(ctx, sqliteSelectAllSQL, visitorID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: failed to query preferences: %w", err)
	}
	defer rows.Close()

	return scanPreferences(rows)
}

// Delete returns portfolio.ErrNotFound if no row matched.
func (s *SQLiteStorage) Delete(ctx context.Context, visitorID, key string) error {
	result, err := s.db.ExecContext(ctx, sqliteDeleteSQL, visitorID, key)
	if err != nil {
		return fmt.Errorf("sqlite: failed to delete preference: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: failed to get affected rows: %w", err)
	}
	if n == 0 {
		return portfolio.ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// scanPreferences reads visitor_id, key, value, updated_at rows keyed by key.
func scanPreferences(rows *sql.Rows) (map[string]*portfolio.Preference, error) {
	prefs := make(map[string]*portfolio.Preference)
	for rows.Next() {
		var pref portfolio.Preference
		if err := rows.Scan(&pref.VisitorID, &pref.Key, &pref.Value, &pref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
		}
		prefs[pref.Key] = &pref
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preference rows: %w", err)
	}
	return prefs, nil
}

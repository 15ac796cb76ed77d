package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoAuth is returned when no authentication is stored
var ErrNoAuth = errors.New("no authentication stored")

// ErrWorkoutNotFound is returned when a workout doesn't exist in the cache
var ErrWorkoutNotFound = errors.New("workout not found")

// Store is the local sqlite cache: stored tokens, synced workout summaries
// and sync bookkeeping
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database, creating it if necessary.
// The database is stored at ~/.tpeaks/data.db
func Open() (*Store, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("getting db path: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for advanced operations
func (s *Store) DB() *sql.DB {
	return s.db
}

// getDBPath returns the path to the SQLite database file
func getDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".tpeaks", "data.db"), nil
}

package store

import (
	"database/sql"
	"testing"
)

// NewTestStore creates a Store backed by an in-memory database.
// This is only intended for use in tests.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrate(db); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return &Store{db: db}
}

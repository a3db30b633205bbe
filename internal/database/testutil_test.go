package database

import (
	"context"
	"path/filepath"
	"testing"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestStore creates an in-memory store with the schema applied
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	store := NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// setupTestSession acquires a session that is released when the test ends
func setupTestSession(t *testing.T, store *Store) *Session {
	t.Helper()
	sess, err := store.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire session: %v", err)
	}
	t.Cleanup(sess.Release)
	return sess
}

// testDBPath returns a database file path inside a per-test temp dir
func testDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "todos.db")
}

func strPtr(s string) *string {
	return &s
}

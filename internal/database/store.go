package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
)

// Store owns the database handle and hands out request-scoped sessions.
type Store struct {
	db *sql.DB
}

// NewStore creates a new Store wrapping the given database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Acquire pins one connection from the pool for the caller.
// The returned session must be released with Release, typically via defer.
func (s *Store) Acquire(ctx context.Context) (*Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &Session{conn: conn}, nil
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Session is a single pinned connection used for the lifetime of one request.
type Session struct {
	conn        *sql.Conn
	releaseOnce sync.Once
}

// Release returns the connection to the pool. Calling it more than once is a no-op.
func (s *Session) Release() {
	s.releaseOnce.Do(func() {
		if err := s.conn.Close(); err != nil {
			slog.Error("failed to release session connection", "error", err)
		}
	})
}

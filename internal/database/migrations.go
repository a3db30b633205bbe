package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the todos schema if it is missing.
// AUTOINCREMENT keeps SQLite from handing out the id of a deleted row again.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			completed BOOLEAN NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_todos_title
		ON todos(title)
	`)
	return err
}

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/todos/internal/models"
)

// ============================================================================
// Todo Operations
// ============================================================================

const todoColumns = `id, title, description, completed`

// InsertTodo creates a new todo and returns the stored row
func (s *Session) InsertTodo(ctx context.Context, title string, description *string, completed bool) (*models.Todo, error) {
	var todo *models.Todo
	err := withTx(ctx, s.conn, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO todos (title, description, completed)
			 VALUES (?, ?, ?)`,
			title, ptrToNullString(description), completed,
		)
		if err != nil {
			return err
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}

		todo, err = scanTodo(tx.QueryRowContext(ctx,
			`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// ListTodos returns up to limit todos after skipping the first skip, ordered by id
func (s *Session) ListTodos(ctx context.Context, skip, limit int) ([]*models.Todo, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+todoColumns+`
		 FROM todos
		 ORDER BY id
		 LIMIT ? OFFSET ?`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	return todos, nil
}

// GetTodoByID retrieves a todo by ID. A missing row wraps sql.ErrNoRows.
func (s *Session) GetTodoByID(ctx context.Context, id int) (*models.Todo, error) {
	todo, err := scanTodo(s.conn.QueryRowContext(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get todo %d: %w", id, err)
	}
	return todo, nil
}

// UpdateTodo overwrites every mutable field of a todo and returns the stored row.
// A missing row wraps sql.ErrNoRows and nothing is written.
func (s *Session) UpdateTodo(ctx context.Context, id int, title string, description *string, completed bool) (*models.Todo, error) {
	var todo *models.Todo
	err := withTx(ctx, s.conn, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE todos
			 SET title = ?, description = ?, completed = ?
			 WHERE id = ?`,
			title, ptrToNullString(description), completed, id,
		)
		if err != nil {
			return err
		}
		if err := requireAffected(result); err != nil {
			return err
		}

		todo, err = scanTodo(tx.QueryRowContext(ctx,
			`SELECT `+todoColumns+` FROM todos WHERE id = ?`, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update todo %d: %w", id, err)
	}
	return todo, nil
}

// DeleteTodo removes a todo. A missing row wraps sql.ErrNoRows.
func (s *Session) DeleteTodo(ctx context.Context, id int) error {
	err := withTx(ctx, s.conn, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
		if err != nil {
			return err
		}
		return requireAffected(result)
	})
	if err != nil {
		return fmt.Errorf("failed to delete todo %d: %w", id, err)
	}
	return nil
}

// CountTodos returns the number of stored todos
func (s *Session) CountTodos(ctx context.Context) (int, error) {
	var count int
	err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM todos").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return count, nil
}

// ============================================================================
// ROW HELPERS
// ============================================================================

func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		todo        models.Todo
		description sql.NullString
	)
	if err := row.Scan(&todo.ID, &todo.Title, &description, &todo.Completed); err != nil {
		return nil, err
	}
	todo.Description = nullStringToPtr(description)
	return &todo, nil
}

// requireAffected maps "zero rows touched" to sql.ErrNoRows
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

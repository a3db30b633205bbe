package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestInsertTodo(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	todo, err := sess.InsertTodo(ctx, "Buy milk", nil, false)
	if err != nil {
		t.Fatalf("InsertTodo failed: %v", err)
	}

	if todo.ID != 1 {
		t.Errorf("Expected ID 1, got %d", todo.ID)
	}
	if todo.Title != "Buy milk" {
		t.Errorf("Expected title 'Buy milk', got '%s'", todo.Title)
	}
	if todo.Description != nil {
		t.Errorf("Expected nil description, got %q", *todo.Description)
	}
	if todo.Completed {
		t.Error("Expected completed to be false")
	}
}

func TestInsertTodo_KeepsEmptyDescription(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	todo, err := sess.InsertTodo(ctx, "Empty", strPtr(""), true)
	if err != nil {
		t.Fatalf("InsertTodo failed: %v", err)
	}

	fetched, err := sess.GetTodoByID(ctx, todo.ID)
	if err != nil {
		t.Fatalf("GetTodoByID failed: %v", err)
	}
	if fetched.Description == nil || *fetched.Description != "" {
		t.Errorf("Expected empty (non-nil) description, got %v", fetched.Description)
	}
	if !fetched.Completed {
		t.Error("Expected completed to be true")
	}
}

func TestInsertTodo_UniqueIDs(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	seen := make(map[int]bool)
	for i := 0; i < 20; i++ {
		todo, err := sess.InsertTodo(ctx, "same title", nil, false)
		if err != nil {
			t.Fatalf("InsertTodo failed: %v", err)
		}
		if seen[todo.ID] {
			t.Fatalf("Duplicate ID %d", todo.ID)
		}
		seen[todo.ID] = true
	}
}

func TestGetTodoByID_RoundTrip(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	created, err := sess.InsertTodo(ctx, "Write report", strPtr("quarterly numbers"), true)
	if err != nil {
		t.Fatalf("InsertTodo failed: %v", err)
	}

	fetched, err := sess.GetTodoByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodoByID failed: %v", err)
	}

	if fetched.ID != created.ID || fetched.Title != created.Title ||
		fetched.DescriptionText() != "quarterly numbers" || fetched.Completed != created.Completed {
		t.Errorf("Round trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestGetTodoByID_NotFound(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))

	_, err := sess.GetTodoByID(context.Background(), 999)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}

func TestUpdateTodo_ReplacesAllFields(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	created, err := sess.InsertTodo(ctx, "Buy milk", strPtr("2 litres"), false)
	if err != nil {
		t.Fatalf("InsertTodo failed: %v", err)
	}

	updated, err := sess.UpdateTodo(ctx, created.ID, "Buy oat milk", nil, true)
	if err != nil {
		t.Fatalf("UpdateTodo failed: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("Expected ID %d to be preserved, got %d", created.ID, updated.ID)
	}
	if updated.Title != "Buy oat milk" {
		t.Errorf("Expected title 'Buy oat milk', got '%s'", updated.Title)
	}
	if updated.Description != nil {
		t.Errorf("Expected description to be cleared, got %q", *updated.Description)
	}
	if !updated.Completed {
		t.Error("Expected completed to be true")
	}

	fetched, err := sess.GetTodoByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodoByID failed: %v", err)
	}
	if *fetched != *updated {
		t.Errorf("Expected fetched %+v to equal updated %+v", fetched, updated)
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	_, err := sess.UpdateTodo(ctx, 42, "ghost", nil, false)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}

	count, err := sess.CountTodos(ctx)
	if err != nil {
		t.Fatalf("CountTodos failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no rows to be created, got %d", count)
	}
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	created, err := sess.InsertTodo(ctx, "Temporary", nil, false)
	if err != nil {
		t.Fatalf("InsertTodo failed: %v", err)
	}

	if err := sess.DeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTodo failed: %v", err)
	}

	_, err = sess.GetTodoByID(ctx, created.ID)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows after deletion, got %v", err)
	}

	if err := sess.DeleteTodo(ctx, created.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows on second delete, got %v", err)
	}
}

func TestDeleteTodo_IDsNotReused(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	first, err := sess.InsertTodo(ctx, "first", nil, false)
	if err != nil {
		t.Fatalf("InsertTodo failed: %v", err)
	}
	if err := sess.DeleteTodo(ctx, first.ID); err != nil {
		t.Fatalf("DeleteTodo failed: %v", err)
	}

	second, err := sess.InsertTodo(ctx, "second", nil, false)
	if err != nil {
		t.Fatalf("InsertTodo failed: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("Expected a fresh ID, got reused ID %d", second.ID)
	}
}

func TestListTodos_SkipLimit(t *testing.T) {
	t.Parallel()
	sess := setupTestSession(t, setupTestStore(t))
	ctx := context.Background()

	const n = 7
	for i := 0; i < n; i++ {
		if _, err := sess.InsertTodo(ctx, "todo", nil, false); err != nil {
			t.Fatalf("InsertTodo failed: %v", err)
		}
	}

	tests := []struct {
		name      string
		skip      int
		limit     int
		wantCount int
		wantFirst int
	}{
		{"all", 0, 100, 7, 1},
		{"first page", 0, 3, 3, 1},
		{"middle page", 3, 3, 3, 4},
		{"tail", 5, 3, 2, 6},
		{"skip past end", 10, 3, 0, 0},
		{"zero limit", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos, err := sess.ListTodos(ctx, tt.skip, tt.limit)
			if err != nil {
				t.Fatalf("ListTodos failed: %v", err)
			}
			if todos == nil {
				t.Fatal("Expected non-nil slice")
			}
			if len(todos) != tt.wantCount {
				t.Fatalf("Expected %d todos, got %d", tt.wantCount, len(todos))
			}
			for i, todo := range todos {
				if todo.ID != tt.wantFirst+i {
					t.Errorf("Expected ID %d at index %d, got %d", tt.wantFirst+i, i, todo.ID)
				}
			}
		})
	}
}

func TestSessionRelease_Idempotent(t *testing.T) {
	t.Parallel()
	store := setupTestStore(t)

	sess, err := store.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	sess.Release()
	sess.Release()

	// The single pooled connection must be available again
	again, err := store.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire after release failed: %v", err)
	}
	again.Release()
}

package todo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestService creates a service backed by an in-memory database session
func setupTestService(t *testing.T, maxLimit int) Service {
	t.Helper()
	ctx := context.Background()

	db, err := database.InitDB(ctx, database.MemoryPath)
	require.NoError(t, err)
	store := database.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })

	sess, err := store.Acquire(ctx)
	require.NoError(t, err)
	t.Cleanup(sess.Release)

	return NewService(sess, maxLimit)
}

func strPtr(s string) *string {
	return &s
}

// failingRepo simulates a storage failure on every call
type failingRepo struct {
	err error
}

func (r failingRepo) InsertTodo(context.Context, string, *string, bool) (*models.Todo, error) {
	return nil, r.err
}

func (r failingRepo) ListTodos(context.Context, int, int) ([]*models.Todo, error) {
	return nil, r.err
}

func (r failingRepo) GetTodoByID(context.Context, int) (*models.Todo, error) {
	return nil, r.err
}

func (r failingRepo) UpdateTodo(context.Context, int, string, *string, bool) (*models.Todo, error) {
	return nil, r.err
}

func (r failingRepo) DeleteTodo(context.Context, int) error {
	return r.err
}

func (r failingRepo) CountTodos(context.Context) (int, error) {
	return 0, r.err
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateTodo(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)

	todo, err := svc.CreateTodo(context.Background(), CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Equal(t, 1, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Nil(t, todo.Description)
	assert.False(t, todo.Completed)
}

func TestCreateTodo_AcceptsAnyTitle(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)
	ctx := context.Background()

	titles := []string{"", "   ", strings.Repeat("x", 5000)}
	for _, title := range titles {
		created, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: title})
		require.NoError(t, err)

		fetched, err := svc.GetTodo(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, title, fetched.Title)
	}

	count, err := svc.CountTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(titles), count)
}

func TestGetTodo_NotFound(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)

	_, err := svc.GetTodo(context.Background(), 999)
	assert.ErrorIs(t, err, ErrTodoNotFound)
	assert.False(t, IsValidationError(err))
}

func TestGetTodo_InvalidID(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)

	for _, id := range []int{0, -1} {
		_, err := svc.GetTodo(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidTodoID)
	}
}

func TestUpdateTodo_ReplacesFields(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "Buy milk", Description: strPtr("whole")})
	require.NoError(t, err)

	updated, err := svc.UpdateTodo(ctx, UpdateTodoRequest{ID: created.ID, Title: "Buy oat milk", Completed: true})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Nil(t, updated.Description, "update must not merge with the old description")
	assert.True(t, updated.Completed)

	fetched, err := svc.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}

func TestUpdateTodo_NotFound(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)

	_, err := svc.UpdateTodo(context.Background(), UpdateTodoRequest{ID: 5, Title: "nope"})
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestUpdateTodo_EmptyTitle(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)

	updated, err := svc.UpdateTodo(ctx, UpdateTodoRequest{ID: created.ID, Title: ""})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Title)

	_, err = svc.UpdateTodo(ctx, UpdateTodoRequest{ID: 0, Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidTodoID)
	assert.True(t, IsValidationError(err))
}

func TestDeleteTodo(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "Temporary"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(ctx, created.ID))

	_, err = svc.GetTodo(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTodoNotFound)

	assert.ErrorIs(t, svc.DeleteTodo(ctx, created.ID), ErrTodoNotFound)

	next, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "Next"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, next.ID)
}

func TestListTodos(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 0)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "todo"})
		require.NoError(t, err)
	}

	todos, err := svc.ListTodos(ctx, ListTodosRequest{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, 2, todos[0].ID)
	assert.Equal(t, 3, todos[1].ID)

	_, err = svc.ListTodos(ctx, ListTodosRequest{Skip: -1, Limit: 2})
	assert.ErrorIs(t, err, ErrInvalidSkip)

	_, err = svc.ListTodos(ctx, ListTodosRequest{Skip: 0, Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestListTodos_ClampsLimit(t *testing.T) {
	t.Parallel()
	svc := setupTestService(t, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "todo"})
		require.NoError(t, err)
	}

	todos, err := svc.ListTodos(ctx, ListTodosRequest{Skip: 0, Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestStorageFailure_Propagates(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk on fire")
	svc := NewService(failingRepo{err: boom}, 0)
	ctx := context.Background()

	_, err := svc.CreateTodo(ctx, CreateTodoRequest{Title: "x"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetTodo(ctx, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTodoNotFound)

	_, err = svc.UpdateTodo(ctx, UpdateTodoRequest{ID: 1, Title: "x"})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, svc.DeleteTodo(ctx, 1), boom)

	_, err = svc.ListTodos(ctx, ListTodosRequest{Limit: 10})
	assert.ErrorIs(t, err, boom)
}

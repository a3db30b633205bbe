package todo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/todos/internal/models"
)

const (
	// DefaultLimit is applied when a list request does not specify one
	DefaultLimit = 100
	// DefaultMaxLimit caps list requests when no other cap is configured
	DefaultMaxLimit = 1000
)

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	ListTodos(ctx context.Context, req ListTodosRequest) ([]*models.Todo, error)
	GetTodo(ctx context.Context, id int) (*models.Todo, error)
	CountTodos(ctx context.Context) (int, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

// CreateTodoRequest encapsulates data for creating a todo
type CreateTodoRequest struct {
	Title       string
	Description *string
	Completed   bool
}

// UpdateTodoRequest encapsulates data for replacing a todo.
// Every field is written; a nil Description clears the stored one.
type UpdateTodoRequest struct {
	ID          int
	Title       string
	Description *string
	Completed   bool
}

// ListTodosRequest encapsulates offset pagination
type ListTodosRequest struct {
	Skip  int
	Limit int
}

// repository defines the data access methods needed by the todo service
// This interface is private to the service layer
type repository interface {
	InsertTodo(ctx context.Context, title string, description *string, completed bool) (*models.Todo, error)
	ListTodos(ctx context.Context, skip, limit int) ([]*models.Todo, error)
	GetTodoByID(ctx context.Context, id int) (*models.Todo, error)
	UpdateTodo(ctx context.Context, id int, title string, description *string, completed bool) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
	CountTodos(ctx context.Context) (int, error)
}

// service implements Service interface with private repository
type service struct {
	repo     repository
	maxLimit int
}

// NewService creates a new todo service. maxLimit caps list requests;
// values <= 0 fall back to DefaultMaxLimit.
func NewService(repo repository, maxLimit int) Service {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &service{
		repo:     repo,
		maxLimit: maxLimit,
	}
}

// ListTodos retrieves a page of todos in insertion order
func (s *service) ListTodos(ctx context.Context, req ListTodosRequest) ([]*models.Todo, error) {
	if req.Skip < 0 {
		return nil, ErrInvalidSkip
	}
	if req.Limit < 0 {
		return nil, ErrInvalidLimit
	}

	limit := min(req.Limit, s.maxLimit)
	return s.repo.ListTodos(ctx, req.Skip, limit)
}

// GetTodo retrieves a specific todo
func (s *service) GetTodo(ctx context.Context, id int) (*models.Todo, error) {
	if id <= 0 {
		return nil, ErrInvalidTodoID
	}

	todo, err := s.repo.GetTodoByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return todo, nil
}

// CountTodos returns the number of stored todos
func (s *service) CountTodos(ctx context.Context) (int, error) {
	return s.repo.CountTodos(ctx)
}

// CreateTodo creates a new todo. Any string is a valid title.
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (*models.Todo, error) {
	todo, err := s.repo.InsertTodo(ctx, req.Title, req.Description, req.Completed)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

// UpdateTodo replaces title, description and completed of an existing todo
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) (*models.Todo, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidTodoID
	}

	todo, err := s.repo.UpdateTodo(ctx, req.ID, req.Title, req.Description, req.Completed)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return todo, nil
}

// DeleteTodo permanently removes a todo
func (s *service) DeleteTodo(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidTodoID
	}

	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

// mapNotFound turns a missing row into ErrTodoNotFound and passes
// storage failures through untouched.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTodoNotFound
	}
	return err
}

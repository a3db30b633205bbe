package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/todos/internal/database"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// App holds the store and builds request-scoped services.
// This is the main application container shared by the HTTP layer and tests.
type App struct {
	store    *database.Store
	logger   *slog.Logger
	maxLimit int
}

// New creates a new App around the given store.
func New(store *database.Store, opts ...Option) *App {
	cfg := &appConfig{
		logger:   slog.Default(),
		maxLimit: todoservice.DefaultMaxLimit,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		store:    store,
		logger:   cfg.logger,
		maxLimit: cfg.maxLimit,
	}
}

// WithTodoService acquires a store session, hands a todo service bound to it
// to fn, and releases the session on every exit path.
func (a *App) WithTodoService(ctx context.Context, fn func(todoservice.Service) error) error {
	sess, err := a.store.Acquire(ctx)
	if err != nil {
		return err
	}
	defer sess.Release()

	return fn(todoservice.NewService(sess, a.maxLimit))
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Ping checks that the store is reachable.
func (a *App) Ping(ctx context.Context) error {
	return a.store.Ping(ctx)
}

// Close releases the underlying store.
func (a *App) Close() error {
	return a.store.Close()
}

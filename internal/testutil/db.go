package testutil

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/todos/internal/api"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/database"
)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestApp creates an App over a fresh in-memory database
func SetupTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	opts = append([]app.Option{app.WithLogger(DiscardLogger())}, opts...)
	a := app.New(database.NewStore(db), opts...)
	t.Cleanup(func() { _ = a.Close() })

	return a
}

// SetupTestAPIServer serves the todo routes from an in-memory App over a
// real HTTP listener. The server is closed when the test ends.
func SetupTestAPIServer(t *testing.T, opts ...app.Option) *httptest.Server {
	t.Helper()

	a := SetupTestApp(t, opts...)

	e := echo.New()
	e.HTTPErrorHandler = api.ErrorHandler(a.Logger())
	api.NewHandler(a).Register(e)

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return srv
}

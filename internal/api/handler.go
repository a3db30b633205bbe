// Package api exposes the todo service over HTTP.
package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/models"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// Handler maps HTTP requests onto todo service calls
type Handler struct {
	app *app.App
}

// NewHandler creates a handler backed by the application container
func NewHandler(a *app.App) *Handler {
	return &Handler{app: a}
}

// Register mounts the todo routes. Both /todos and /todos/ are served.
func (h *Handler) Register(e *echo.Echo) {
	for _, prefix := range []string{"/todos", "/todos/"} {
		e.POST(prefix, h.CreateTodo)
		e.GET(prefix, h.ListTodos)
	}
	e.GET("/todos/:id", h.GetTodo)
	e.PUT("/todos/:id", h.UpdateTodo)
	e.DELETE("/todos/:id", h.DeleteTodo)
}

// CreateTodo handles POST /todos/
func (h *Handler) CreateTodo(c echo.Context) error {
	payload, err := readTodoPayload(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	var created *models.Todo
	err = h.app.WithTodoService(ctx, func(svc todoservice.Service) error {
		created, err = svc.CreateTodo(ctx, todoservice.CreateTodoRequest{
			Title:       payload.Title,
			Description: payload.Description,
			Completed:   payload.completed(),
		})
		return err
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// ListTodos handles GET /todos/?skip=&limit=
func (h *Handler) ListTodos(c echo.Context) error {
	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", todoservice.DefaultLimit)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	var todos []*models.Todo
	err = h.app.WithTodoService(ctx, func(svc todoservice.Service) error {
		todos, err = svc.ListTodos(ctx, todoservice.ListTodosRequest{Skip: skip, Limit: limit})
		return err
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, todos)
}

// GetTodo handles GET /todos/:id
func (h *Handler) GetTodo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	var todo *models.Todo
	err = h.app.WithTodoService(ctx, func(svc todoservice.Service) error {
		todo, err = svc.GetTodo(ctx, id)
		return err
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, todo)
}

// UpdateTodo handles PUT /todos/:id
func (h *Handler) UpdateTodo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	payload, err := readTodoPayload(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	var updated *models.Todo
	err = h.app.WithTodoService(ctx, func(svc todoservice.Service) error {
		updated, err = svc.UpdateTodo(ctx, todoservice.UpdateTodoRequest{
			ID:          id,
			Title:       payload.Title,
			Description: payload.Description,
			Completed:   payload.completed(),
		})
		return err
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteTodo handles DELETE /todos/:id
func (h *Handler) DeleteTodo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	err = h.app.WithTodoService(ctx, func(svc todoservice.Service) error {
		return svc.DeleteTodo(ctx, id)
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ============================================================================
// REQUEST PARSING HELPERS
// ============================================================================

func readTodoPayload(c echo.Context) (*todoPayload, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	payload, err := decodeTodoPayload(body)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return payload, nil
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "path.id: value is not a valid integer")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, defaultVal int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "query."+name+": value is not a valid integer")
	}
	return val, nil
}

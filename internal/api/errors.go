package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	todoservice "github.com/thenoetrevino/todos/internal/services/todo"
)

// NotFoundDetail is the detail message for a missing todo
const NotFoundDetail = "Todo not found"

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// toHTTPError maps handler and service errors onto HTTP errors.
// Anything unrecognised is a storage failure and becomes a 500.
func toHTTPError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	var pe *PayloadError
	switch {
	case errors.As(err, &pe):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, pe.Error())
	case errors.Is(err, todoservice.ErrTodoNotFound), errors.Is(err, todoservice.ErrInvalidTodoID):
		// Non-positive ids can never match a row
		return echo.NewHTTPError(http.StatusNotFound, NotFoundDetail)
	case todoservice.IsValidationError(err):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return &echo.HTTPError{
			Code:     http.StatusInternalServerError,
			Message:  http.StatusText(http.StatusInternalServerError),
			Internal: err,
		}
	}
}

// ErrorHandler writes {"detail": ...} bodies and logs server-side failures
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he := toHTTPError(err)
		if he.Code >= http.StatusInternalServerError {
			cause := err
			if he.Internal != nil {
				cause = he.Internal
			}
			logger.Error("request failed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", cause,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(he.Code)
		} else {
			writeErr = c.JSON(he.Code, ErrorResponse{Detail: fmt.Sprint(he.Message)})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

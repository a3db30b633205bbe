package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to stdout and stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetID() int }:
			_, err := fmt.Fprintf(f.stdout(), "%d\n", v.GetID())
			return err
		case []*models.Todo:
			for _, todo := range v {
				if _, err := fmt.Fprintf(f.stdout(), "%d\n", todo.ID); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Message prints a human-readable status line; suppressed in JSON and quiet modes
func (f *OutputFormatter) Message(format string, args ...interface{}) {
	if f.JSON || f.Quiet {
		return
	}
	fmt.Fprintf(f.stdout(), format+"\n", args...)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current output mode and returns an
// *ExitCodeError whose code matches the failure category
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := classify(err)

	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: exit, Err: err}
}

// Usage reports a usage error and returns an *ExitCodeError with ExitUsage
func (f *OutputFormatter) Usage(message, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion("USAGE_ERROR", message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: ExitUsage, Err: errors.New(message)}
}

func classify(err error) (code string, exit int, suggestion string) {
	var ve *client.ValidationError
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrNotFound):
		return "TODO_NOT_FOUND", ExitNotFound, "Use 'todos todo list' to see existing todos"
	case errors.As(err, &ve):
		return "VALIDATION_ERROR", ExitValidation, ""
	case errors.As(err, &apiErr):
		return "SERVER_ERROR", ExitError, ""
	default:
		return "REQUEST_FAILED", ExitError, "Is the server running? Start it with 'todos serve'"
	}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	switch v := data.(type) {
	case *models.Todo:
		_, err := fmt.Fprintln(f.stdout(), styles.RenderTodoCard(v))
		return err
	case []*models.Todo:
		if len(v) == 0 {
			_, err := fmt.Fprintln(f.stdout(), styles.SubtitleStyle.Render("No todos"))
			return err
		}
		for _, todo := range v {
			if _, err := fmt.Fprintln(f.stdout(), styles.RenderTodoLine(todo)); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
		return err
	}
}

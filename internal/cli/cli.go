package cli

import (
	"context"
	"errors"
	"time"

	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	Client *client.Client // HTTP client for the todo API
	Config *config.Config
}

// NewCLI builds a CLI talking to the API configured in cfg
func NewCLI(cfg *config.Config) *CLI {
	timeout := time.Duration(cfg.Client.TimeoutSeconds) * time.Second
	return &CLI{
		Client: client.New(cfg.Client.URL, timeout),
		Config: cfg,
	}
}

type cliContextKey struct{}

// WithCLI stores the CLI instance on ctx for subcommands
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI, or builds one from
// the user config when none was stored
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if c, ok := ctx.Value(cliContextKey{}).(*CLI); ok && c != nil {
			return c, nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewCLI(cfg), nil
}

// ExitCodeError carries the process exit code for a failed command
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ece *ExitCodeError
	if errors.As(err, &ece) {
		return ece.Code
	}
	return ExitError
}

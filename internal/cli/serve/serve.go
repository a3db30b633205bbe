package serve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/daemon"
	"github.com/thenoetrevino/todos/internal/database"
	"github.com/thenoetrevino/todos/internal/logging"
)

// ServeCmd returns the serve command which runs the HTTP API
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the todo HTTP API",
		Long: `Run the todo HTTP API in the foreground.

The listen address, database path and log level come from the config file
and TODOS_* environment variables; flags override both.

Examples:
  todos serve
  todos serve --addr=127.0.0.1:9000 --db=/tmp/todos.db --log-level=debug
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :8000)")
	cmd.Flags().String("db", "", "SQLite database path")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := *cliInstance.Config

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	if err := logging.Init(cfg.Log); err != nil {
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: fmt.Errorf("failed to initialize logging: %w", err)}
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	server, application, err := Prepare(ctx, &cfg, logging.Logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	slog.Info("todos server starting", "addr", server.Addr(), "db_path", cfg.Database.Path, "pid", os.Getpid())

	// Blocks until shutdown
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("todos server shut down gracefully")
	return nil
}

// Prepare opens the database and binds the HTTP server described by cfg.
// The caller owns the returned App and must Close it after the server stops.
func Prepare(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*daemon.Server, *app.App, error) {
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(
		database.NewStore(db),
		app.WithLogger(logger),
		app.WithMaxListLimit(cfg.API.MaxListLimit),
	)

	server, err := daemon.NewServer(cfg.Server, application)
	if err != nil {
		if closeErr := application.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
		return nil, nil, err
	}

	return server, application, nil
}

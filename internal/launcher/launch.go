package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/todos/internal/client"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/logging"
	"github.com/thenoetrevino/todos/internal/tui"
)

// Launch starts the TUI against the API configured in cfg
func Launch(parent context.Context, cfg *config.Config) error {
	// The TUI owns the terminal, so logs must go to a file or nowhere
	logCfg := cfg.Log
	if logCfg.File == "" {
		logCfg.File = defaultLogFile()
	}
	if err := logging.Init(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	api := client.New(cfg.Client.URL, time.Duration(cfg.Client.TimeoutSeconds)*time.Second)
	slog.Info("starting tui", "api_url", cfg.Client.URL)

	p := tea.NewProgram(tui.New(ctx, api, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// Cancellation via signal is a normal exit
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.DevNull
	}
	return filepath.Join(home, ".todos", "tui.log")
}

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/cli/serve"
	"github.com/thenoetrevino/todos/internal/cli/styles"
	"github.com/thenoetrevino/todos/internal/cli/todo"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/launcher"
)

// NewRootCmd builds the todos command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todos",
		Short: "Todos - a small todo service with CLI and TUI clients",
		Long: `Todos runs a JSON HTTP API for todo items backed by SQLite,
and ships command line and terminal UI clients for it.

  todos serve        run the API
  todos todo ...     manage todos from scripts
  todos tui          interactive list`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadCLI,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/todos/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the todo API for client commands")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	})

	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(todo.TodoCmd())
	rootCmd.AddCommand(tuiCmd())

	return rootCmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive todo list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return launcher.Launch(cmd.Context(), cliInstance.Config)
		},
	}
}

// loadCLI reads the config once and stores the CLI on the command context
func loadCLI(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		err = fmt.Errorf("failed to load configuration: %w", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.Client.URL = apiURL
	}

	styles.Init(cfg.ColorScheme)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithCLI(ctx, cli.NewCLI(cfg)))
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// ExitCodeErrors have already been reported by the command
		var ece *cli.ExitCodeError
		if !errors.As(err, &ece) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}
		return cli.ExitCode(err)
	}
	return cli.ExitSuccess
}

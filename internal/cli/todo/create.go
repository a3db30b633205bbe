package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/client"
)

// CreateCmd returns the todo create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new todo",
		Long: `Create a new todo on the server.

Examples:
  # Simple todo (human-readable output)
  todos todo create --title="Buy milk"

  # JSON output for agents
  todos todo create --title="Buy milk" --json

  # Quiet mode for bash capture
  TODO_ID=$(todos todo create --title="Buy milk" --quiet)

  # Description from stdin
  echo "2 liters, oat" | todos todo create --title="Buy milk" --description=-
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Todo title (required)")
	_ = cmd.MarkFlagRequired("title")

	// Optional flags
	cmd.Flags().String("description", "", "Todo description, markdown allowed (use - for stdin)")
	cmd.Flags().Bool("completed", false, "Mark the todo as already completed")

	addOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	title, _ := cmd.Flags().GetString("title")
	completed, _ := cmd.Flags().GetBool("completed")

	input := client.TodoInput{Title: title, Completed: completed}
	if cmd.Flags().Changed("description") {
		description, err := readDescription(cmd, formatter)
		if err != nil {
			return err
		}
		input.Description = description
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	todo, err := cliInstance.Client.Create(ctx, input)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(todo)
	}
	formatter.Message("✓ Todo '%s' created successfully (ID: %d)", todo.Title, todo.ID)
	return nil
}

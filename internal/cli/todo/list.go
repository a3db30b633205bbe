package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long:  "List todos in id order. Use --skip and --limit to page through them.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cmd.Flags().Int("skip", 0, "Number of todos to skip")
	cmd.Flags().Int("limit", 0, "Maximum number of todos to return (server default when 0)")

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	skip, _ := cmd.Flags().GetInt("skip")
	limit, _ := cmd.Flags().GetInt("limit")
	if skip < 0 || limit < 0 {
		return formatter.Usage("--skip and --limit must not be negative", "")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	todos, err := cliInstance.Client.List(ctx, skip, limit)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(todos)
}

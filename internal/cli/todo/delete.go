package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// DeleteCmd returns the todo delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	id, err := parseID(formatter, args[0])
	if err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := cliInstance.Client.Delete(ctx, id); err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		return formatter.Success(map[string]interface{}{"id": id, "deleted": true})
	}
	formatter.Message("✓ Todo %d deleted", id)
	return nil
}

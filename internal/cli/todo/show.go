package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// ShowCmd returns the todo show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a todo with its rendered description",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	todo, err := cliInstance.Client.Get(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(todo)
}

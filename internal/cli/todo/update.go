package todo

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
	"github.com/thenoetrevino/todos/internal/client"
)

// UpdateCmd returns the todo update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a todo",
		Long: `Update a todo. Fields without a flag keep their current value.

Examples:
  todos todo update 3 --completed
  todos todo update 3 --title="Buy oat milk" --completed=false
  todos todo update 3 --clear-description
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (use - for stdin)")
	cmd.Flags().Bool("clear-description", false, "Remove the description")
	cmd.Flags().Bool("completed", false, "Completion state")

	addOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := newFormatter(cmd)

	id, err := parseID(formatter, args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	clearDescription, _ := flags.GetBool("clear-description")
	if clearDescription && flags.Changed("description") {
		return formatter.Usage("--description and --clear-description are mutually exclusive", "")
	}
	if !flags.Changed("title") && !flags.Changed("description") && !clearDescription && !flags.Changed("completed") {
		return formatter.Usage("nothing to update",
			"Pass at least one of --title, --description, --clear-description, --completed")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// The API replaces every field, so start from the stored record
	current, err := cliInstance.Client.Get(ctx, id)
	if err != nil {
		return formatter.Fail(err)
	}

	input := client.TodoInput{
		Title:       current.Title,
		Description: current.Description,
		Completed:   current.Completed,
	}
	if flags.Changed("title") {
		input.Title, _ = flags.GetString("title")
	}
	if flags.Changed("description") {
		description, err := readDescription(cmd, formatter)
		if err != nil {
			return err
		}
		input.Description = description
	}
	if clearDescription {
		input.Description = nil
	}
	if flags.Changed("completed") {
		input.Completed, _ = flags.GetBool("completed")
	}

	updated, err := cliInstance.Client.Update(ctx, id, input)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(updated)
	}
	formatter.Message("✓ Todo %d updated", updated.ID)
	return nil
}

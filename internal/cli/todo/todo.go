package todo

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/todos/internal/cli"
)

// TodoCmd returns the todo parent command
func TodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos on a running server",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// addOutputFlags registers the agent-friendly flags shared by every subcommand
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func newFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

func parseID(formatter *cli.OutputFormatter, arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, formatter.Usage("todo id must be an integer, got: "+arg, "")
	}
	return id, nil
}

// readDescription returns the --description flag, reading stdin when it is "-"
func readDescription(cmd *cobra.Command, formatter *cli.OutputFormatter) (*string, error) {
	description, _ := cmd.Flags().GetString("description")
	if description == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			if fmtErr := formatter.Error("STDIN_READ_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return nil, &cli.ExitCodeError{Code: cli.ExitDataErr, Err: err}
		}
		description = string(data)
	}
	return &description, nil
}

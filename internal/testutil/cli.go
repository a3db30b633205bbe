package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

// CommandResult holds the captured streams of a cobra command run
type CommandResult struct {
	Stdout string
	Stderr string
	Err    error
}

// ExecuteCommand runs cmd with args and stdin, capturing its output
func ExecuteCommand(t *testing.T, ctx context.Context, cmd *cobra.Command, stdin string, args ...string) CommandResult {
	t.Helper()

	SetupCobraCommand(cmd, args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err := cmd.ExecuteContext(ctx)

	return CommandResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

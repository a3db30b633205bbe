package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, malformed arguments.
	ExitUsage = 2

	// ExitNotFound indicates the requested todo does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable stdin, responses that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates the server rejected the input.
	// Use for: bodies of the wrong shape, negative paging values.
	ExitValidation = 5
)

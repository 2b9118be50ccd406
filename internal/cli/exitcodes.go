package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error
// reporting across all commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, unexpected failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: a task referencing a project absent from the lookup, or a
	// task ID the service doesn't know.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: responses that cannot be decoded.
	ExitDataErr = 4

	// ExitConfig indicates a configuration problem.
	// Use for: missing API token, unreadable config file.
	ExitConfig = 5
)

package model

import "fmt"

// ExitCode defines the standard exit codes shared by all devkit binaries.
// These codes allow shell scripts and CI systems to programmatically
// determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	// User-initiated cancellation also exits with this code.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitUsageError indicates missing or malformed command-line arguments.
	ExitUsageError ExitCode = 2

	// ExitValidationError indicates an input value violated a documented
	// constraint (e.g., password length not a multiple of four).
	ExitValidationError ExitCode = 3

	// ExitNotFound indicates a required external resource was absent
	// (e.g., no interpreter versions installed).
	ExitNotFound ExitCode = 4

	// ExitExternalTool indicates an invoked external command (git,
	// update-alternatives, sudo) returned a non-zero status.
	ExitExternalTool ExitCode = 5

	// ExitBackupIncomplete indicates at least one backup item failed.
	// The remaining items were still attempted.
	ExitBackupIncomplete ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

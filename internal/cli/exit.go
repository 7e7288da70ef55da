package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the advent CLI.
const (
	ExitSuccess      = 0 // Successful execution (result mismatches included)
	ExitFailure      = 1 // A solver returned an error
	ExitUsage        = 2 // Bad flag combination or flag value
	ExitCommandError = 3 // Unknown day, bad fixture, missing cookie, failed download
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (one of the Exit* constants)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCodeFor extracts the exit code from an error.
//
// Errors that are not ExitErrors come from cobra's own flag parsing and
// validation, so they count as usage errors.
func ExitCodeFor(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

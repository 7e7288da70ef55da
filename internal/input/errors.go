package input

import (
	"errors"
	"fmt"
)

// LoadError represents a configuration problem detected while resolving
// puzzle input. These are command errors: the harness reports them and
// stops, it never retries.
type LoadError struct {
	// Code identifies the error category.
	Code LoadErrorCode

	// Message is a human-readable description.
	Message string

	// Path is the file involved, when there is one.
	Path string

	// Err is the underlying error (optional).
	Err error
}

// LoadErrorCode categorizes load errors.
type LoadErrorCode string

const (
	// CodeMissingCookie indicates a real-input download was requested
	// but no session cookie file exists.
	CodeMissingCookie LoadErrorCode = "MISSING_COOKIE"

	// CodeBadFixtureHeader indicates a cached fixture does not start
	// with the "Result: " header line.
	CodeBadFixtureHeader LoadErrorCode = "BAD_FIXTURE_HEADER"

	// CodeDownloadFailed indicates the puzzle service request failed.
	CodeDownloadFailed LoadErrorCode = "DOWNLOAD_FAILED"
)

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is a LoadError with the given code.
// Uses errors.As to handle wrapped errors.
func HasCode(err error, code LoadErrorCode) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}

package runner

import "fmt"

// UnknownDayError reports a day with no registered solution.
type UnknownDayError struct {
	Day int
}

// Error implements the error interface.
func (e *UnknownDayError) Error() string {
	return fmt.Sprintf("no solution registered for day %d", e.Day)
}

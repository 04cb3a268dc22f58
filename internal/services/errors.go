package services

import "fmt"

// ValidationError rejects a malformed request before any planning begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// DayError surfaces an external dependency failure for one trip day. By
// default it aborts the whole generation; in best-effort mode the day is
// yielded empty with a warning instead.
type DayError struct {
	DayNumber  int
	Dependency string
	Err        error
}

func (e *DayError) Error() string {
	return fmt.Sprintf("day %d: %s failed: %v", e.DayNumber, e.Dependency, e.Err)
}

func (e *DayError) Unwrap() error { return e.Err }

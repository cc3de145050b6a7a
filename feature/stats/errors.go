package stats

import (
	"errors"
	"fmt"
)

// ErrDataAccess marks failures of the relational store: unreachable, timed out or
// a violated constraint.
var ErrDataAccess = errors.New("data access failed")

// ErrNotFound is returned by single-row accessors when nothing matches.
var ErrNotFound = errors.New("not found")

// DataAccessError records which store operation failed.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDataAccess, e.Op, e.Err)
}

// Unwrap exposes both ErrDataAccess and the driver error.
func (e *DataAccessError) Unwrap() []error {
	return []error{ErrDataAccess, e.Err}
}

func wrapDataAccess(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Op: op, Err: err}
}

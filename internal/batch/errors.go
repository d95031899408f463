package batch

import (
	"errors"
	"fmt"
)

// ErrNoRows reports an input with a header but no data rows.
var ErrNoRows = errors.New("input contains no data rows")

// ColumnNotFoundError reports that the requested text column is missing
// from the uploaded file.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("the specified column name %q does not exist in the CSV file", e.Column)
}

// MalformedInputError reports input that could not be parsed as a table.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return "could not parse input as CSV: " + e.Err.Error()
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

package gef

import (
	"errors"
	"fmt"
)

var (
	// ErrNoEndOfHeader is returned when the input has no #EOH line.
	ErrNoEndOfHeader = errors.New("end of header marker not found")

	// ErrMissingColumn is returned when the header does not map a column
	// the profile needs.
	ErrMissingColumn = errors.New("required column not declared")

	// ErrEmptyProfile is returned when no data row survived filtering.
	ErrEmptyProfile = errors.New("no valid data rows")

	errNoEquals    = errors.New("missing '='")
	errMissingArgs = errors.New("missing parameter")
)

// HeaderError reports a malformed header line.
type HeaderError struct {
	Line int // 1-based line number
	Text string
	Err  error
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("header line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *HeaderError) Unwrap() error { return e.Err }

// DataLineError reports a data row that lacks a required column or holds a
// non-numeric value where a number is required.
type DataLineError struct {
	Line int // 1-based line number
	Text string
	Err  error
}

func (e *DataLineError) Error() string {
	return fmt.Sprintf("data line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *DataLineError) Unwrap() error { return e.Err }

// WrongFileTypeError is returned for GEF files that do not hold a CPT, such
// as borehole logs.
type WrongFileTypeError struct {
	Code string
}

func (e *WrongFileTypeError) Error() string {
	return fmt.Sprintf("borehole file, not CPT (procedure code %q)", e.Code)
}

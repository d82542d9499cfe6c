package results

import "errors"

var (
	// ErrInputNotFound is returned when the results file does not exist.
	ErrInputNotFound = errors.New("results: input file not found")

	// ErrMalformedRow is returned when a row does not match the declared
	// schema. Parsing is strict: a single bad row fails the whole read.
	ErrMalformedRow = errors.New("results: malformed row")

	// ErrEmptyInput is returned when the results file contains no rows.
	ErrEmptyInput = errors.New("results: input contains no rows")
)

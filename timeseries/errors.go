package timeseries

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by tsviz wraps exactly one of these.
var (
	// ErrParse marks malformed or empty source data. It is terminal for an upload.
	ErrParse = errors.New("parse failure")
	// ErrConversion marks a cell that is neither a number nor a date. The
	// pipeline recovers from it locally; it is only returned by strict helpers.
	ErrConversion = errors.New("conversion failure")
	// ErrIO marks a failed acquisition after retries were exhausted.
	ErrIO = errors.New("io failure")
)

// Terminal parse conditions.
var (
	ErrNoRows           = fmt.Errorf("%w: no data rows", ErrParse)
	ErrNoNumericColumns = fmt.Errorf("%w: no numeric columns found", ErrParse)
	ErrUnknownColumn    = fmt.Errorf("%w: unknown column", ErrParse)
)

// SourceError describes a failure while reading a named source.
type SourceError struct {
	Source string
	Op     string // "open", "read", "parse", "fetch"
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(source, op string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Op:     op,
		Err:    err,
	}
}

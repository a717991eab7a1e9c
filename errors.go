package ndbc

import (
	"errors"
	"fmt"
)

// Standard errors returned by this package. Every failure wraps one of
// these sentinels, so callers can classify them with errors.Is.
var (
	// ErrInvalidArgument indicates a malformed column-width or column-type
	// specification passed by the caller.
	ErrInvalidArgument = errors.New("ndbc: invalid argument")

	// ErrFileNotFound indicates the input path does not resolve to a file.
	ErrFileNotFound = errors.New("ndbc: file not found")

	// ErrHeaderMismatch indicates a header label has no known field mapping.
	ErrHeaderMismatch = errors.New("ndbc: header mismatch")

	// ErrFormat indicates a structurally invalid table, such as rows that
	// disagree on column count.
	ErrFormat = errors.New("ndbc: invalid format")
)

// HeaderMismatchError reports a header label that matched no known field
// alias. The label is carried so the alias table can be extended.
type HeaderMismatchError struct {
	// Label is the offending header label.
	Label string
}

// Error returns the error message with the offending label.
func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("ndbc: header mismatch: unknown label %q", e.Label)
}

// Unwrap ties HeaderMismatchError to ErrHeaderMismatch so both errors.Is
// and errors.As work on a failed parse.
func (e *HeaderMismatchError) Unwrap() error {
	return ErrHeaderMismatch
}

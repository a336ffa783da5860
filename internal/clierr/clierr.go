// Package clierr defines the typed, fail-fast errors surfaced by the
// driver. The core packages never attempt to salvage partial work after
// one of these is produced; the slicer and emitter return as soon as the
// first error is detected.
package clierr

import "fmt"

// Kind classifies a fatal error so the driver can choose an exit path and
// a message prefix.
type Kind int

const (
	// InvalidArgument covers wrong argument counts, unknown CLI modes,
	// and unresolved variable/component/module slicing criteria.
	InvalidArgument Kind = iota
	// IoError covers failure to read the input file or to open or write
	// the output file.
	IoError
	// InternalInvariant covers a guard/update referenced during slicing
	// that has no matching vertex — a bug in vertex construction, not a
	// recoverable condition.
	InternalInvariant
	// ParseError is propagated from the external parser / front end.
	ParseError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case IoError:
		return "io error"
	case InternalInvariant:
		return "internal invariant violated"
	case ParseError:
		return "parse error"
	default:
		return "error"
	}
}

// Error is a single fatal error, optionally wrapping an underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// New constructs an Error with no wrapped cause.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error wrapping an underlying cause.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

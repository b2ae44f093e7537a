package pathid

import (
	"errors"
	"fmt"
)

// ParseError reports a path text component that is not a valid
// non-negative integer.
type ParseError struct {
	// Input is the full text being parsed.
	Input string

	// Component is the offending dot-separated component.
	Component string

	// Index is the zero-based position of the component.
	Index int

	// Reason is a short description of the problem.
	Reason string

	// Err is the underlying strconv error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: component %d (%q): %s", e.Input, e.Index, e.Component, e.Reason)
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error { return e.Err }

// OverflowError reports that an encoding operation would exceed the
// uint64 range. The fold is aborted rather than allowed to wrap, since
// silent wraparound would break the bijection and corrupt identifiers
// downstream.
type OverflowError struct {
	// Op is the operation that overflowed: "append" or "concat".
	Op string

	// Element is the path element being appended (zero for concat).
	Element uint64
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	if e.Op == "append" {
		return fmt.Sprintf("%s %d: path identifier overflows uint64", e.Op, e.Element)
	}
	return fmt.Sprintf("%s: path identifier overflows uint64", e.Op)
}

// NotCanonicalError reports a rational value that no encoder run could
// have produced, detected by FromRational's defensive validation.
type NotCanonicalError struct {
	Num    uint64
	Den    uint64
	Reason string
}

// Error implements the error interface.
func (e *NotCanonicalError) Error() string {
	return fmt.Sprintf("rational %d/%d is not a valid path identifier: %s", e.Num, e.Den, e.Reason)
}

// IsParse reports whether err is (or wraps) a *ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsOverflow reports whether err is (or wraps) an *OverflowError.
func IsOverflow(err error) bool {
	var oe *OverflowError
	return errors.As(err, &oe)
}

// IsNotCanonical reports whether err is (or wraps) a *NotCanonicalError.
func IsNotCanonical(err error) bool {
	var ne *NotCanonicalError
	return errors.As(err, &ne)
}

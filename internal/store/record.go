package store

import (
	"errors"
	"fmt"

	"github.com/roach88/cfpath/internal/pathid"
)

// Record is a stored, labeled path identifier.
type Record struct {
	// ID is a UUIDv7 assigned when the record is first inserted.
	ID string

	// Label is the human-chosen unique key.
	Label string

	// Path is the identifier itself.
	Path pathid.ID
}

// NotFoundError reports a label with no stored record.
type NotFoundError struct {
	Label string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no path stored under label %q", e.Label)
}

// ConflictError reports an attempt to store a different identifier
// under an already-used label.
type ConflictError struct {
	Label    string
	Existing pathid.ID
	Proposed pathid.ID
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("label %q already maps to path %q, refusing to overwrite with %q",
		e.Label, e.Existing, e.Proposed)
}

// IsNotFound reports whether err is (or wraps) a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is (or wraps) a *ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// u2i converts a uint64 matrix entry to its int64 bit pattern for an
// INTEGER column. The conversion is bijective, so round-tripping
// through i2u is exact for the full uint64 range.
func u2i(v uint64) int64 { return int64(v) }

// i2u is the inverse of u2i.
func i2u(v int64) uint64 { return uint64(v) }

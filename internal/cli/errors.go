package cli

import (
	"github.com/roach88/cfpath/internal/pathid"
	"github.com/roach88/cfpath/internal/store"
)

// classifyPathError maps a pathid error to an exit code and CLI error
// code. Data problems (bad input text, overflow, non-canonical
// rationals) exit 1; anything else is a command error.
func classifyPathError(err error) (int, string) {
	switch {
	case pathid.IsParse(err):
		return ExitFailure, ErrCodeParse
	case pathid.IsOverflow(err):
		return ExitFailure, ErrCodeOverflow
	case pathid.IsNotCanonical(err):
		return ExitFailure, ErrCodeNotCanonical
	default:
		return ExitCommandError, ErrCodeBadArgs
	}
}

// classifyStoreError maps a store error to an exit code and CLI error
// code. Missing labels and label conflicts exit 1; database-level
// failures are command errors.
func classifyStoreError(err error) (int, string) {
	switch {
	case store.IsNotFound(err):
		return ExitFailure, ErrCodeNotFound
	case store.IsConflict(err):
		return ExitFailure, ErrCodeConflict
	default:
		return ExitCommandError, ErrCodeStore
	}
}

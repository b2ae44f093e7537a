package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/cfpath/internal/pathid"
)

// Put stores a path identifier under a label and returns the resulting
// record plus whether a new row was inserted.
//
// Put is idempotent: storing the identifier already held by the label
// returns the existing record with inserted=false. Storing a different
// identifier under an existing label is a *ConflictError — labels are
// never silently remapped.
func (s *Store) Put(ctx context.Context, label string, id pathid.ID) (Record, bool, error) {
	a, b, c, d := id.Matrix()

	// ON CONFLICT DO NOTHING, then read back: either way the row for
	// the label is the source of truth for what happened.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO paths (id, label, m0, m1, m2, m3, path_text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(label) DO NOTHING
	`,
		uuid.Must(uuid.NewV7()).String(),
		label,
		u2i(a), u2i(b), u2i(c), u2i(d),
		id.String(),
	)
	if err != nil {
		return Record{}, false, fmt.Errorf("put %q: %w", label, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return Record{}, false, fmt.Errorf("put %q: %w", label, err)
	}

	rec, err := s.Get(ctx, label)
	if err != nil {
		return Record{}, false, fmt.Errorf("put %q: %w", label, err)
	}

	if rec.Path != id {
		return Record{}, false, &ConflictError{Label: label, Existing: rec.Path, Proposed: id}
	}
	return rec, rows > 0, nil
}

// Delete removes the record stored under label. Deleting an absent
// label is a *NotFoundError.
func (s *Store) Delete(ctx context.Context, label string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM paths WHERE label = ?`, label)
	if err != nil {
		return fmt.Errorf("delete %q: %w", label, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %q: %w", label, err)
	}
	if rows == 0 {
		return &NotFoundError{Label: label}
	}
	return nil
}

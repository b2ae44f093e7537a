package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/cfpath/internal/pathid"
)

// Get returns the record stored under label, or *NotFoundError.
func (s *Store) Get(ctx context.Context, label string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, label, m0, m1, m2, m3
		FROM paths
		WHERE label = ?
	`, label)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, &NotFoundError{Label: label}
	}
	if err != nil {
		return Record{}, fmt.Errorf("get %q: %w", label, err)
	}
	return rec, nil
}

// GetByPath returns all records holding the given identifier, ordered
// deterministically by label. The result is empty (not nil) when the
// identifier is not stored anywhere.
func (s *Store) GetByPath(ctx context.Context, id pathid.ID) ([]Record, error) {
	a, b, c, d := id.Matrix()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, m0, m1, m2, m3
		FROM paths
		WHERE m0 = ? AND m1 = ? AND m2 = ? AND m3 = ?
		ORDER BY label COLLATE BINARY ASC
	`, u2i(a), u2i(b), u2i(c), u2i(d))
	if err != nil {
		return nil, fmt.Errorf("get by path: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// List returns every stored record, ordered deterministically by label.
// The result is empty (not nil) for an empty store.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, m0, m1, m2, m3
		FROM paths
		ORDER BY label COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanRecord.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one record and reassembles its identifier via
// FromMatrix; the stored entries originate from Matrix, satisfying its
// precondition.
func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var m0, m1, m2, m3 int64
	if err := row.Scan(&rec.ID, &rec.Label, &m0, &m1, &m2, &m3); err != nil {
		return Record{}, err
	}
	rec.Path = pathid.FromMatrix(i2u(m0), i2u(m1), i2u(m2), i2u(m3))
	return rec, nil
}

// collectRecords drains rows into a slice, returning an empty slice
// rather than nil when there are no rows.
func collectRecords(rows *sql.Rows) ([]Record, error) {
	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Package store persists labeled path identifiers in SQLite.
//
// The core encoding in internal/pathid is deliberately free of any
// persistence surface; this package is the external collaborator that
// stores identifiers in database columns. The contract is exact
// round-tripping: the four fixed-width matrix entries of an identifier
// are written as INTEGER columns (via the bijective uint64<->int64 bit
// conversion, since SQLite integers are signed) and reassembled with
// pathid.FromMatrix on read, so the identifier read back is == the one
// written.
//
// Records are keyed by a human-chosen label and carry a UUIDv7 id for
// external reference. Reads use deterministic ordering (label, BINARY
// collation) so listings are stable across runs.
package store

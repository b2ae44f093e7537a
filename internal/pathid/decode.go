package pathid

import "iter"

// Elements returns the path vector encoded by id, one element at a
// time. The sequence is finite (at most Depth steps) and restartable:
// each range over it starts a fresh walk from an internal copy of the
// matrix, and id itself is never mutated.
//
// Decoding runs the quotient form of the Euclidean algorithm on the
// matrix: each step divides out one elementary factor and emits the
// quotient minus the element offset, terminating at the identity. The
// root yields no elements at all.
func (id ID) Elements() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		cur := id
		for !cur.IsRoot() {
			q := cur.a / cur.c
			cur = ID{cur.c, cur.d, cur.a - cur.c*q, cur.b - cur.d*q}
			if !yield(q - fudge) {
				return
			}
		}
	}
}

// Vector returns the decoded path vector as a slice. The root decodes
// to an empty (non-nil) slice.
func (id ID) Vector() []uint64 {
	v := []uint64{}
	for e := range id.Elements() {
		v = append(v, e)
	}
	return v
}

// Depth returns the number of elements in the encoded path; the root
// has depth 0.
func (id ID) Depth() int {
	n := 0
	for range id.Elements() {
		n++
	}
	return n
}

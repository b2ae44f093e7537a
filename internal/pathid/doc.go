// Package pathid provides a bijective mapping between tree paths and
// single scalar identifiers.
//
// A path vector is an ordered sequence of non-negative integers locating
// a node in a tree, e.g. [3, 12, 5]. This package encodes such a vector
// into one immutable ID — algebraically a 2x2 matrix of uint64, equally
// viewable as a reduced positive rational — and decodes it back to the
// exact original vector. The construction is a continued fraction: each
// path element contributes one elementary matrix factor, and the matrix
// product accumulates the fraction's convergents.
//
// Key design constraints:
//   - pathid is the foundational layer: it imports no other internal
//     package, and everything else may import it.
//   - All arithmetic is checked; overflow surfaces as *OverflowError
//     and never wraps silently, because wraparound would corrupt the
//     bijection.
//   - IDs are immutable values. Decoding never mutates the ID; every
//     call to Elements starts a fresh walk.
//   - The zero value of ID is not valid. Use Root, New, Parse,
//     FromRational, or FromMatrix.
package pathid

package pathid

import "math/bits"

// fudge is the fixed offset added to every path element before it is
// folded into the continued fraction, and subtracted again on decode.
//
// Every rational number is the value of two finite continued fractions:
// one whose last term is 1, and one whose last term is greater than 1.
// Without correction that degeneracy would make distinct vectors such as
// [3,5,1] and [3,6] collide. Adding 2 to each element keeps every term
// of the internal continued fraction at 2 or above, so the "...,1" tail
// is never reachable from legitimate input and the mapping is exactly
// bijective — including for vectors containing 0, since 0+2 = 2.
const fudge = 2

// ID identifies a tree position as a single scalar value.
//
// Internally an ID is the 2x2 matrix
//
//	| a b |
//	| c d |
//
// equal to the ordered product of one elementary factor
// [[element+2, 1], [1, 0]] per path element. The root (empty path) is
// the identity matrix. The first column (a, c) is the numerator and
// denominator of the encoded continued fraction's value, always in
// lowest terms; the second column holds the previous convergent.
//
// ID is a comparable value type: == agrees exactly with "decodes to the
// same path vector". IDs are immutable; Append and Concat return new
// values.
type ID struct {
	a, b uint64
	c, d uint64
}

// Root returns the identifier of the empty path.
func Root() ID {
	return ID{1, 0, 0, 1}
}

// IsRoot reports whether id encodes the empty path.
//
// Among valid products of elementary factors, only the identity matrix
// has b == 0: for any non-empty path b is the numerator of the previous
// convergent, which is at least 1.
func (id ID) IsRoot() bool {
	return id.b == 0
}

// New encodes a path vector. The empty call New() returns Root.
//
// Returns *OverflowError if folding the vector exceeds the uint64
// range; encoding has no other failure mode.
func New(elements ...uint64) (ID, error) {
	id := Root()
	for _, e := range elements {
		next, err := id.Append(e)
		if err != nil {
			return ID{}, err
		}
		id = next
	}
	return id, nil
}

// Append returns the identifier of id's path with one more element on
// the end. It multiplies on the right by the elementary factor
// [[element+2, 1], [1, 0]]; the multiplication order is what encodes
// position, not just membership.
//
// Returns *OverflowError if the result does not fit in uint64.
func (id ID) Append(element uint64) (ID, error) {
	m, ok := addChecked(element, fudge)
	if !ok {
		return ID{}, &OverflowError{Op: "append", Element: element}
	}

	// | a b |   | m 1 |   | a*m+b  a |
	// | c d | x | 1 0 | = | c*m+d  c |
	am, ok1 := mulChecked(id.a, m)
	cm, ok2 := mulChecked(id.c, m)
	a, ok3 := addChecked(am, id.b)
	c, ok4 := addChecked(cm, id.d)
	if !(ok1 && ok2 && ok3 && ok4) {
		return ID{}, &OverflowError{Op: "append", Element: element}
	}
	return ID{a, id.a, c, id.c}, nil
}

// Concat returns the identifier of id's path followed by other's path.
// Because encoding is a matrix product, concatenation is a single
// (checked) 2x2 multiplication — no decode or re-encode is needed.
func (id ID) Concat(other ID) (ID, error) {
	a, ok1 := mulAddChecked(id.a, other.a, id.b, other.c)
	b, ok2 := mulAddChecked(id.a, other.b, id.b, other.d)
	c, ok3 := mulAddChecked(id.c, other.a, id.d, other.c)
	d, ok4 := mulAddChecked(id.c, other.b, id.d, other.d)
	if !(ok1 && ok2 && ok3 && ok4) {
		return ID{}, &OverflowError{Op: "concat"}
	}
	return ID{a, b, c, d}, nil
}

// Matrix returns the four matrix entries in row-major order. Together
// with FromMatrix it is the exact round-trip surface for external
// storage of identifiers.
func (id ID) Matrix() (a, b, c, d uint64) {
	return id.a, id.b, id.c, id.d
}

// FromMatrix reassembles an identifier from entries previously obtained
// via Matrix.
//
// Precondition: the entries must describe a valid product of elementary
// factors (i.e. originate from Matrix). Behavior for other inputs is
// undefined; no validation is performed.
func FromMatrix(a, b, c, d uint64) ID {
	return ID{a, b, c, d}
}

// Rational returns the identifier's value as a reduced positive
// rational: num/den is the continued fraction encoded by the path. The
// root is reported as (1, 0), the only identifier with denominator 0.
//
// The pair is always in lowest terms because every elementary factor
// has determinant -1, so gcd(a, c) = 1.
func (id ID) Rational() (num, den uint64) {
	return id.a, id.c
}

// Compare orders identifiers by their rational value. It returns -1 if
// id's value is smaller than other's, +1 if larger, and 0 exactly when
// id == other. The root, whose value is 1/0, sorts after every other
// identifier.
func (id ID) Compare(other ID) int {
	if id == other {
		return 0
	}
	if id.IsRoot() {
		return 1
	}
	if other.IsRoot() {
		return -1
	}
	// a1/c1 <=> a2/c2 via 128-bit cross multiplication.
	hi1, lo1 := bits.Mul64(id.a, other.c)
	hi2, lo2 := bits.Mul64(other.a, id.c)
	switch {
	case hi1 != hi2:
		if hi1 < hi2 {
			return -1
		}
		return 1
	case lo1 != lo2:
		if lo1 < lo2 {
			return -1
		}
		return 1
	default:
		// Equal values with distinct matrices cannot come out of the
		// encoder (the rational determines the path); treat as equal
		// for ordering purposes anyway.
		return 0
	}
}

// mulChecked multiplies and reports whether the product fit in uint64.
func mulChecked(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi == 0
}

// addChecked adds and reports whether the sum fit in uint64.
func addChecked(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	return sum, carry == 0
}

// mulAddChecked computes w*x + y*z with overflow detection.
func mulAddChecked(w, x, y, z uint64) (uint64, bool) {
	p1, ok1 := mulChecked(w, x)
	p2, ok2 := mulChecked(y, z)
	sum, ok3 := addChecked(p1, p2)
	return sum, ok1 && ok2 && ok3
}

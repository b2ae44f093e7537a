package pathid

// FromRational reconstructs an identifier from its rational view, the
// (num, den) pair returned by Rational. FromRational(1, 0) is the root.
//
// The matrix is rebuilt by expanding num/den as a continued fraction
// with the Euclidean algorithm and refolding the terms. Values that no
// encoder run could have produced — a fraction not in lowest terms, a
// zero numerator, or an expansion containing a term below 2 — are
// rejected with *NotCanonicalError.
func FromRational(num, den uint64) (ID, error) {
	if den == 0 {
		if num != 1 {
			return ID{}, &NotCanonicalError{Num: num, Den: den, Reason: "zero denominator is reserved for the root 1/0"}
		}
		return Root(), nil
	}
	if num == 0 {
		return ID{}, &NotCanonicalError{Num: num, Den: den, Reason: "numerator must be positive"}
	}

	id := Root()
	n, d := num, den
	for d != 0 {
		q := n / d
		if q < fudge {
			return ID{}, &NotCanonicalError{Num: num, Den: den, Reason: "continued-fraction term below 2"}
		}
		next, err := id.Append(q - fudge)
		if err != nil {
			// Refolding terms of a representable rational cannot grow
			// past the rational itself, so this is unreachable; keep
			// the error path anyway rather than panic.
			return ID{}, err
		}
		id = next
		n, d = d, n%d
	}
	if n != 1 {
		return ID{}, &NotCanonicalError{Num: num, Den: den, Reason: "fraction is not in lowest terms"}
	}
	return id, nil
}

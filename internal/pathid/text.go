package pathid

import (
	"strconv"
	"strings"
)

// Parse builds an identifier from a path's canonical source text: a
// dot-separated list of non-negative decimal integers such as "3.12.5".
// The empty string parses to the root.
//
// A component that is empty (leading, trailing, or doubled dots) or not
// a decimal uint64 is reported as *ParseError. A vector too large to
// encode is reported as *OverflowError.
func Parse(s string) (ID, error) {
	if s == "" {
		return Root(), nil
	}

	id := Root()
	for i, comp := range strings.Split(s, ".") {
		if comp == "" {
			return ID{}, &ParseError{Input: s, Component: comp, Index: i, Reason: "empty component"}
		}
		e, err := strconv.ParseUint(comp, 10, 64)
		if err != nil {
			return ID{}, &ParseError{Input: s, Component: comp, Index: i, Reason: "not a non-negative integer", Err: err}
		}
		id, err = id.Append(e)
		if err != nil {
			return ID{}, err
		}
	}
	return id, nil
}

// String renders the identifier's path as normalized dot-separated
// text: decimal components without leading zeros, no empty components.
// The root renders as the empty string, so Parse(id.String()) == id for
// every valid identifier.
func (id ID) String() string {
	var b strings.Builder
	first := true
	for e := range id.Elements() {
		if !first {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(e, 10))
		first = false
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the dot-separated
// form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it accepts exactly
// what Parse accepts.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

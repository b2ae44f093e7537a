package pathid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		path []uint64
	}{
		{"root", "", []uint64{}},
		{"single", "3", []uint64{3}},
		{"pair", "3.12", []uint64{3, 12}},
		{"triple", "3.12.5", []uint64{3, 12, 5}},
		{"zero", "0", []uint64{0}},
		{"zeros", "0.0.0", []uint64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.text)
			require.NoError(t, err)

			want, err := New(tt.path...)
			require.NoError(t, err)
			assert.Equal(t, want, id)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"leading_dot", ".3"},
		{"trailing_dot", "3."},
		{"double_dot", "3..5"},
		{"non_numeric", "3.x.5"},
		{"negative", "3.-1"},
		{"float", "3.5e2"},
		{"too_large", "18446744073709551616"}, // MaxUint64 + 1
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, IsParse(err), "expected *ParseError, got %v", err)
		})
	}
}

func TestParseOverflowIsNotParseError(t *testing.T) {
	// A syntactically valid vector that is too deep to encode surfaces
	// as overflow, not as a parse error.
	_, err := Parse("4294967296.4294967296")
	require.Error(t, err)
	assert.True(t, IsOverflow(err))
	assert.False(t, IsParse(err))
}

func TestStringNormalizes(t *testing.T) {
	// Leading zeros are accepted on input and never reproduced.
	id, err := Parse("03.012")
	require.NoError(t, err)
	assert.Equal(t, "3.12", id.String())
}

func TestStringRoundTrip(t *testing.T) {
	for _, tt := range referenceVectors {
		t.Run(tt.name, func(t *testing.T) {
			id, err := New(tt.path...)
			require.NoError(t, err)

			back, err := Parse(id.String())
			require.NoError(t, err)
			assert.Equal(t, id, back)
		})
	}
}

func TestRootString(t *testing.T) {
	assert.Equal(t, "", Root().String())
}

func TestTextMarshaling(t *testing.T) {
	id, err := New(3, 12, 5)
	require.NoError(t, err)

	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "3.12.5", string(text))

	var back ID
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, id, back)

	var bad ID
	err = bad.UnmarshalText([]byte("not.a.path"))
	require.Error(t, err)
	assert.True(t, IsParse(err))
}

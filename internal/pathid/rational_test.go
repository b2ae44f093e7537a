package pathid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		path []uint64
		num  uint64
		den  uint64
	}{
		{"root", []uint64{}, 1, 0},
		{"single", []uint64{3}, 5, 1},
		{"pair", []uint64{3, 12}, 71, 14},
		{"triple", []uint64{3, 12, 5}, 502, 99},
		{"quad", []uint64{3, 12, 5, 1}, 1577, 311},
		{"quint", []uint64{3, 12, 5, 1, 21}, 36773, 7252},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := New(tt.path...)
			require.NoError(t, err)

			num, den := id.Rational()
			assert.Equal(t, tt.num, num)
			assert.Equal(t, tt.den, den)
		})
	}
}

func TestFromRationalRoundTrip(t *testing.T) {
	for _, tt := range referenceVectors {
		t.Run(tt.name, func(t *testing.T) {
			id, err := New(tt.path...)
			require.NoError(t, err)

			num, den := id.Rational()
			back, err := FromRational(num, den)
			require.NoError(t, err)

			// The full matrix is recovered, not just the value.
			assert.Equal(t, id, back)
			assert.Equal(t, tt.path, back.Vector())
		})
	}
}

func TestFromRationalRejectsNonCanonical(t *testing.T) {
	tests := []struct {
		name string
		num  uint64
		den  uint64
	}{
		{"zero_numerator", 0, 1},
		{"zero_over_zero", 0, 0},
		{"bad_root_numerator", 7, 0},
		{"not_reduced", 10, 2}, // 5/1 times 2
		{"term_below_two", 3, 2},
		{"one_over_one", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRational(tt.num, tt.den)
			require.Error(t, err)
			assert.True(t, IsNotCanonical(err), "expected *NotCanonicalError, got %v", err)
		})
	}
}

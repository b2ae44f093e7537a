package pathid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, tt := range referenceVectors {
		t.Run(tt.name, func(t *testing.T) {
			id, err := New(tt.path...)
			require.NoError(t, err)

			assert.Equal(t, tt.path, id.Vector())
			assert.Equal(t, len(tt.path), id.Depth())
		})
	}
}

func TestRoundTripEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		path []uint64
	}{
		{"single_zero", []uint64{0}},
		{"all_zeros", []uint64{0, 0, 0, 0}},
		{"trailing_zero", []uint64{5, 0}},
		{"trailing_one", []uint64{5, 1}},
		{"large_element", []uint64{1 << 40}},
		{"deep", []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := New(tt.path...)
			require.NoError(t, err)
			assert.Equal(t, tt.path, id.Vector())
		})
	}
}

// The ambiguity the element offset exists to prevent: [3,5,1] and [3,6]
// are the two continued-fraction spellings of the same rational, so
// without the offset they would collide.
func TestNoTrailingOneAmbiguity(t *testing.T) {
	a, err := New(3, 5, 1)
	require.NoError(t, err)
	b, err := New(3, 6)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, []uint64{3, 5, 1}, a.Vector())
	assert.Equal(t, []uint64{3, 6}, b.Vector())
}

func TestElementsRestartable(t *testing.T) {
	id, err := New(3, 12, 5)
	require.NoError(t, err)

	// Two full walks over the same ID yield the same elements.
	assert.Equal(t, id.Vector(), id.Vector())

	// An abandoned walk does not disturb the identifier.
	for range id.Elements() {
		break
	}
	assert.Equal(t, []uint64{3, 12, 5}, id.Vector())
}

func TestElementsEarlyStop(t *testing.T) {
	id, err := New(3, 12, 5, 1, 21)
	require.NoError(t, err)

	var got []uint64
	for e := range id.Elements() {
		got = append(got, e)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []uint64{3, 12}, got)
}

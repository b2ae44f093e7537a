package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	stdout, _, err := execute(t, "decode", "502/99")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "decode_text", []byte(stdout))
}

func TestDecodeJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "decode", "502/99")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "decode_json", []byte(stdout))
}

func TestDecodeRoot(t *testing.T) {
	stdout, _, err := execute(t, "decode", "1/0")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "decode_root_text", []byte(stdout))
}

func TestDecodeNotCanonical(t *testing.T) {
	stdout, _, err := execute(t, "decode", "3/2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "decode_not_canonical_text", []byte(stdout))
}

func TestDecodeBadArgument(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"no_slash", "502"},
		{"non_numeric_num", "x/99"},
		{"non_numeric_den", "502/y"},
		{"negative", "-502/99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "decode", tt.arg)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

// Round-trip through the CLI boundary: encode then decode.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	stdout, _, err := execute(t, "decode", "36773/7252")
	require.NoError(t, err)
	assert.Contains(t, stdout, "3.12.5.1.21")
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatText(t *testing.T) {
	stdout, _, err := execute(t, "concat", "3", "12.5")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "concat_text", []byte(stdout))
}

func TestConcatJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "concat", "3", "12.5")
	require.NoError(t, err)
	newGoldie(t).Assert(t, "concat_json", []byte(stdout))
}

func TestConcatWithRoot(t *testing.T) {
	stdout, _, err := execute(t, "concat", "", "3.12")
	require.NoError(t, err)
	assert.Contains(t, stdout, "path:     3.12")
}

func TestConcatParseError(t *testing.T) {
	_, _, err := execute(t, "concat", "3", "not.a.path")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeParse)
}

func TestConcatOverflow(t *testing.T) {
	_, _, err := execute(t, "concat", "4294967296", "4294967296")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeOverflow)
}

package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	out, err := New().Execute(context.Background(), "sh", "-c", "printf hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecuteFailureIncludesStderr(t *testing.T) {
	_, err := New().Execute(context.Background(), "sh", "-c", "echo first >&2; echo 'ERROR: video unavailable' >&2; exit 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERROR: video unavailable")
	assert.NotContains(t, err.Error(), "first")
}

func TestExecuteMissingBinary(t *testing.T) {
	_, err := New().Execute(context.Background(), "definitely-not-a-real-binary-xyz")
	assert.Error(t, err)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "", lastLine("  \n"))
	assert.Equal(t, "b", lastLine("a\nb\n"))
	assert.Equal(t, "single", lastLine("single"))
}

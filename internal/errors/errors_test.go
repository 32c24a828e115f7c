package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := New("no digits")
	wrapped := Wrapf(cause, "line %d", 3)

	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "line 3")
	assert.Contains(t, wrapped.Error(), "no digits")
	assert.True(t, Is(wrapped, cause))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("missing input"), "save it under inputs/")

	assert.Equal(t, "missing input", err.Error())
	assert.Contains(t, FlattenHints(err), "inputs/")
}

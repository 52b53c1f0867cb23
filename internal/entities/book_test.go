package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_ValueEmpty(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringList_ScanTolerance(t *testing.T) {
	t.Run("null decodes to empty list", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan(nil))
		assert.Equal(t, StringList{}, l)
	})

	t.Run("malformed text decodes to empty list", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan("not json at all"))
		assert.Equal(t, StringList{}, l)
	})

	t.Run("valid text preserves order", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan(`["want to own","liked"]`))
		assert.Equal(t, StringList{"want to own", "liked"}, l)
	})
}

func TestIsKnownTag(t *testing.T) {
	for _, tag := range TagOptions {
		assert.True(t, IsKnownTag(tag))
	}
	assert.False(t, IsKnownTag("favourite"))
}

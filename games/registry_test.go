package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsAreRegistered(t *testing.T) {
	vs := Variants()
	require.Len(t, vs, 3)

	keys := make([]string, len(vs))
	for i, v := range vs {
		keys[i] = v.Key
		assert.NotEmpty(t, v.Name)
		assert.NotEmpty(t, v.Description)
		assert.Greater(t, v.Rules.Width, 0)
		assert.Greater(t, v.Rules.Height, 0)
		assert.Greater(t, v.Rules.Depth, 0)
	}
	assert.Equal(t, []string{"classic", "simple", "cube"}, keys)
}

func TestLookup(t *testing.T) {
	v, ok := Lookup("cube")
	require.True(t, ok)
	assert.Equal(t, "Cube", v.Name)
	assert.Equal(t, 6, v.Rules.Depth)

	_, ok = Lookup("marathon")
	assert.False(t, ok)
}

func TestVariantsReturnsACopy(t *testing.T) {
	vs := Variants()
	vs[0].Key = "mutated"

	v, ok := Lookup("classic")
	require.True(t, ok)
	assert.Equal(t, "classic", v.Key)
}

package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringnet/ring"
)

// TestReducedGraph_Queries checks neighbor, degree and weight lookups on [0 1 2 3], window 2.
func TestReducedGraph_Queries(t *testing.T) {
	rg, err := ring.Collapse(build(t, [][]float64{{0}, {1}, {2}, {3}}, []float64{1}, 2))
	require.NoError(t, err)

	nb, err := rg.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, nb)

	deg, err := rg.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	str, err := rg.Strength(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, str)

	assert.True(t, rg.HasEdge(2, 0))
	assert.False(t, rg.HasEdge(1, 3))
	assert.Equal(t, 5.0, rg.TotalWeight())
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, rg.Components())

	_, err = rg.Neighbors(4)
	assert.ErrorIs(t, err, ring.ErrRowNotFound)
	_, err = rg.Degree(-1)
	assert.ErrorIs(t, err, ring.ErrRowNotFound)
	_, err = rg.Strength(9)
	assert.ErrorIs(t, err, ring.ErrRowNotFound)
}

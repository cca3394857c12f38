package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringnet/lattice"
)

// TestNeighbors_Order verifies the deterministic neighbor order of markers and rows.
func TestNeighbors_Order(t *testing.T) {
	// column 0: [0 1 2 3] window 2 → m0{0,1} m1{2,3} m2{}
	// column 1: [9 9 0 0] window 2 → m0{2,3} ... m4{0,1} m5{}
	g, err := lattice.Build(mustRows(t, [][]float64{{0, 9}, {1, 9}, {2, 0}, {3, 0}}), []float64{1, 3}, 2)
	require.NoError(t, err)

	nb, err := g.Neighbors(lattice.MarkerNode(0, 1))
	require.NoError(t, err)
	assert.Equal(t, []lattice.NodeID{
		lattice.MarkerNode(0, 0),
		lattice.MarkerNode(0, 2),
		lattice.RowNode(2),
		lattice.RowNode(3),
	}, nb)

	nb, err = g.Neighbors(lattice.MarkerNode(0, 0))
	require.NoError(t, err)
	assert.Equal(t, []lattice.NodeID{lattice.MarkerNode(0, 1), lattice.RowNode(0), lattice.RowNode(1)}, nb)

	nb, err = g.Neighbors(lattice.RowNode(0))
	require.NoError(t, err)
	assert.Equal(t, []lattice.NodeID{lattice.MarkerNode(0, 0), lattice.MarkerNode(1, 4)}, nb)

	rows, err := g.RowNeighbors(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, rows)
}

// TestNeighbors_Unknown verifies ErrNodeNotFound for ids outside the graph.
func TestNeighbors_Unknown(t *testing.T) {
	g, err := lattice.Build(mustRows(t, column(0, 1)), []float64{1}, 1)
	require.NoError(t, err)

	for _, id := range []lattice.NodeID{
		lattice.RowNode(-1),
		lattice.RowNode(2),
		lattice.MarkerNode(1, 0),
		lattice.MarkerNode(0, 3),
	} {
		_, err := g.Neighbors(id)
		assert.ErrorIs(t, err, lattice.ErrNodeNotFound, "id %v", id)
		assert.False(t, g.HasNode(id))
	}
	_, err = g.Dimension(1)
	assert.ErrorIs(t, err, lattice.ErrNodeNotFound)
	_, err = g.MarkerOf(0, 5)
	assert.ErrorIs(t, err, lattice.ErrNodeNotFound)
	_, err = g.RowNeighbors(0, 9)
	assert.ErrorIs(t, err, lattice.ErrNodeNotFound)
}

// TestEdges_KindsAndWeights checks chain/assignment edges carry the dimension weight.
func TestEdges_KindsAndWeights(t *testing.T) {
	g, err := lattice.Build(mustRows(t, [][]float64{{0, 0}, {1, 4}}), []float64{0.5, 2}, 1)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, g.EdgeCount())

	chain, assign := 0, 0
	for _, e := range edges {
		switch e.Kind {
		case lattice.EdgeChain:
			chain++
			assert.True(t, e.From.IsMarker() && e.To.IsMarker())
			assert.Equal(t, e.From.Marker.Index+1, e.To.Marker.Index)
		case lattice.EdgeAssignment:
			assign++
			assert.True(t, e.From.IsRow() && e.To.IsMarker())
		}
		dim := e.To.Marker.Dim
		assert.Equal(t, []float64{0.5, 2}[dim], e.Weight)
	}
	assert.Equal(t, g.ChainEdgeCount(), chain)
	assert.Equal(t, g.AssignmentEdgeCount(), assign)
}

// TestMarkerOf returns the bin marker with its formatted identity.
func TestMarkerOf(t *testing.T) {
	g, err := lattice.Build(mustRows(t, column(0.5, 1.25, 2)), []float64{1}, 0.5)
	require.NoError(t, err)

	m, err := g.MarkerOf(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Index)
	assert.Equal(t, 1.0, m.Value)
	assert.Equal(t, "0,1.0000", m.String())
	assert.Equal(t, lattice.MarkerNode(0, 1), m.ID())
	assert.Equal(t, "0#1", m.ID().String())
	assert.Equal(t, "1", lattice.RowNode(1).String())
}

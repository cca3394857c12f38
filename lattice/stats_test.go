package lattice_test

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringnet/lattice"
)

// TestStats counts rows, markers and empty bins of a two-column lattice.
func TestStats(t *testing.T) {
	g, err := lattice.Build(mustRows(t, [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}}), []float64{1, 1}, 2)
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, lattice.Stats{
		DataNodes:    4,
		MarkerNodes:  5,
		TotalNodes:   9,
		ChainEdges:   3,
		AssignEdges:  8,
		EmptyMarkers: 2,
		MarkersByDim: []int{3, 2},
	}, s)
}

// TestLogStats verifies the structured diagnostic lines.
func TestLogStats(t *testing.T) {
	g, err := lattice.Build(mustRows(t, column(0, 1, 2, 3)), []float64{1}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	lattice.LogStats(log.NewLogfmtLogger(&buf), g.Stats())

	out := buf.String()
	assert.Contains(t, out, `msg="node counts"`)
	assert.Contains(t, out, "data_nodes=4")
	assert.Contains(t, out, "marker_nodes=3")
	assert.Contains(t, out, "total_nodes=7")
	assert.Contains(t, out, "dim=0 markers=3")
}

// TestStats_WriteTable checks the text table layout.
func TestStats_WriteTable(t *testing.T) {
	s := lattice.Stats{DataNodes: 1200, MarkerNodes: 7, TotalNodes: 1207, MarkersByDim: []int{3, 4}}

	var buf bytes.Buffer
	require.NoError(t, s.WriteTable(&buf))

	out := buf.String()
	assert.Contains(t, out, "NODE COUNTS")
	assert.Contains(t, out, "Data point nodes:     1,200")
	assert.Contains(t, out, "Total nodes:          1,207")
	assert.Contains(t, out, "  Dimension  0:    3 markers")
	assert.Contains(t, out, "  Dimension  1:    4 markers")
}

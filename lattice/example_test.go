package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/ringnet/lattice"
	"github.com/katalvlaran/ringnet/matrix"
)

// ExampleBuild builds the lattice of one column [0 1 2 3] with window 2 and
// prints each marker with the rows assigned to it.
func ExampleBuild() {
	data, _ := matrix.FromRows([][]float64{{0}, {1}, {2}, {3}})
	g, err := lattice.Build(data, []float64{1.0}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dim, _ := g.Dimension(0)
	for _, m := range dim.Markers() {
		fmt.Printf("marker %s rows %v\n", m, dim.Members(m.Index))
	}
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	// Output:
	// marker 0,0.0000 rows [0 1]
	// marker 0,2.0000 rows [2 3]
	// marker 0,4.0000 rows []
	// nodes: 7 edges: 6
}

// ExampleExpandedGraph_Stats prints the diagnostic node counts.
func ExampleExpandedGraph_Stats() {
	data, _ := matrix.FromRows([][]float64{{0, 10}, {1, 10}, {2, 30}})
	g, _ := lattice.Build(data, []float64{1, 1}, 1)

	s := g.Stats()
	fmt.Println("data nodes:", s.DataNodes)
	fmt.Println("marker nodes:", s.MarkerNodes)
	fmt.Println("per dimension:", s.MarkersByDim)
	// Output:
	// data nodes: 3
	// marker nodes: 26
	// per dimension: [4 22]
}

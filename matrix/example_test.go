package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ringnet/matrix"
)

// ExampleColumnRange shows the range scan that fixes a dimension's markers.
func ExampleColumnRange() {
	m, _ := matrix.FromRows([][]float64{{0.4, 10}, {0.1, 30}, {0.9, 20}})

	for d := 0; d < m.Cols(); d++ {
		lo, hi, _ := matrix.ColumnRange(m, d)
		fmt.Printf("dim %d: [%g, %g]\n", d, lo, hi)
	}
	// Output:
	// dim 0: [0.1, 0.9]
	// dim 1: [10, 30]
}

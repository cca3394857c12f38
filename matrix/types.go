// SPDX-License-Identifier: MIT

package matrix

// Matrix is a read-only, two-dimensional table of float64 values.
//
// Rows are observations and columns are dimensions. Implementations must be
// safe for concurrent readers; the lattice builder reads columns in parallel.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions if rows or cols are not positive.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense matrix from a slice of equally sized rows.
// The input is deep-copied; later mutation of values does not affect the result.
// Returns ErrInvalidDimensions for an empty table and ErrNonRectangular
// when any row length differs from the first.
// Complexity: O(r*c) time and memory.
func FromRows(values [][]float64) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrInvalidDimensions)
	}
	rows, cols := len(values), len(values[0])
	m := &Dense{r: rows, c: cols, data: make([]float64, 0, rows*cols)}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Dense is not safe for concurrent Set; build the table first, then share it.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Column returns a copy of column col.
// Complexity: O(r).
func (m *Dense) Column(col int) ([]float64, error) {
	if col < 0 || col >= m.c {
		return nil, denseErrorf("Column", 0, col, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.r)
	for i := range out {
		out[i] = m.data[i*m.c+col]
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

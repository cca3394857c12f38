// Package matrix_test contains unit tests for the Dense table and the
// column helpers used by the lattice builder.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ringnet/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // rejected

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // rejected
}

// TestAtSetOutOfBounds ensures At and Set return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrIndexOutOfBounds)
}

// TestSetGet validates Set followed by At.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestFromRows covers deep copy, shape checks and ragged input.
func TestFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	src[1][0] = 99 // caller mutation must not leak in
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.FromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrNonRectangular)
}

// TestColumnCloneString checks the copy-returning accessors.
func TestColumnCloneString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 2}, {3, 4.5}})
	require.NoError(t, err)

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4.5}, col)
	col[0] = -1
	v, _ := m.At(0, 1)
	assert.Equal(t, 2.0, v)

	_, err = m.Column(2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ = m.At(0, 0)
	assert.Equal(t, 1.0, v)

	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

// TestColumnRange covers min/max, degenerate columns and the finiteness policy.
func TestColumnRange(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{3, 7}, {-1, 7}, {2, 7}})
	require.NoError(t, err)

	lo, hi, err := matrix.ColumnRange(m, 0)
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 3.0, hi)

	lo, hi, err = matrix.ColumnRange(m, 1)
	require.NoError(t, err)
	assert.Equal(t, lo, hi) // single-valued column is legal

	_, _, err = matrix.ColumnRange(m, 5)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, _, err = matrix.ColumnRange(nil, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.NoError(t, m.Set(1, 0, math.NaN()))
	_, _, err = matrix.ColumnRange(m, 0)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestValidateFinite reports the first non-finite cell.
func TestValidateFinite(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 1, math.Inf(-1)))
	err = matrix.ValidateFinite(m)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	assert.Contains(t, err.Error(), "(1,1)")

	assert.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

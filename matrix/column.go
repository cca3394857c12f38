// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// ColumnRange returns the minimum and maximum of column col.
// A NaN or ±Inf entry yields ErrNaNInf with the offending position attached;
// an empty matrix yields ErrInvalidDimensions.
// Complexity: O(Rows()).
func ColumnRange(m Matrix, col int) (lo, hi float64, err error) {
	if m == nil {
		return 0, 0, ErrNilMatrix
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return 0, 0, fmt.Errorf("ColumnRange(%d): %w", col, ErrInvalidDimensions)
	}
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, col)
		if err != nil {
			return 0, 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, fmt.Errorf("ColumnRange: value at (%d,%d): %w", i, col, ErrNaNInf)
		}
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}

	return lo, hi, nil
}

// ValidateFinite reports the first NaN or ±Inf cell of m, scanning row-major.
// Complexity: O(Rows()·Cols()).
func ValidateFinite(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFinite: value at (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"math"

	"github.com/katalvlaran/ringnet/matrix"
)

// validateInput enforces the Build preconditions in a fixed priority:
// data shape, weight count, window, weights, then data values.
// Complexity: O(R·D) for the finiteness scan.
func validateInput(data matrix.Matrix, weights []float64, window float64) error {
	if data == nil || data.Rows() < 1 || data.Cols() < 1 {
		return latticeErrorf(MethodBuild, ErrEmptyData, "matrix must be at least 1×1")
	}
	if len(weights) != data.Cols() {
		return latticeErrorf(MethodBuild, ErrWeightCount, "got %d weights for %d columns", len(weights), data.Cols())
	}
	if !isFinitePositive(window) {
		return latticeErrorf(MethodBuild, ErrBadWindow, "got %v", window)
	}
	for d, w := range weights {
		if !isFinitePositive(w) {
			return latticeErrorf(MethodBuild, ErrBadWeight, "weights[%d] = %v", d, w)
		}
	}
	if err := matrix.ValidateFinite(data); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return latticeErrorf(MethodBuild, ErrNaNInf, "%v", err)
		}
		return err
	}

	return nil
}

// isFinitePositive reports x > 0 and x is neither NaN nor Inf.
func isFinitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

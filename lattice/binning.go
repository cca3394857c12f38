// SPDX-License-Identifier: MIT

package lattice

import "math"

// boundaryTolerance is the distance, relative to the quotient, below which a
// quotient is considered to sit on the next bin boundary. It is a few dozen
// ulps: (0.3-0.1)/0.1 evaluates just below 2 and snaps to 2, while a value a
// genuine fraction of a window below a boundary keeps its floor bin at any
// bin number.
const boundaryTolerance = 64 * 2.220446049250313e-16

// MaxMarkersPerDimension bounds n+1 for a single dimension. A window that is
// tiny relative to the column range is rejected instead of allocating
// billions of markers.
const MaxMarkersPerDimension = 1 << 24

// binIndex is the single canonical rounding rule shared by marker-count
// computation and row assignment: floor((v-lo)/window), snapped up when the
// quotient is within boundaryTolerance of the next integer.
// Requires v >= lo and window > 0.
func binIndex(v, lo, window float64) int {
	q := (v - lo) / window
	k := math.Floor(q)
	if (k+1)-q <= boundaryTolerance*math.Max(1, math.Abs(q)) {
		k++
	}

	return int(k)
}

// markerValue returns m_i = lo + i*window.
func markerValue(lo, window float64, i int) float64 {
	return lo + float64(i)*window
}

// Package lattice builds the expanded "marker lattice" graph of a numeric table.
//
// What:
//
//   - One node per data row (identity = 0-based row index of the input matrix).
//   - Per dimension d, a chain of marker nodes m0 < m1 < ... < mn at
//     m0 = min_d, m_i = m0 + i*window, n = floor((max_d-min_d)/window) + 1.
//   - Chain edges m_i to m_{i+1} and one assignment edge per (row, dimension)
//     to the marker of the row's bin, all weighted by weights[d].
//
// Example, one column [0 1 2 3], window 2:
//
//	m0(0)───m1(2)───m2(4)
//	 │ │     │ │
//	 0 1     2 3
//
// Identity:
//
//	NodeID is a tagged value (KindRow | KindMarker). Markers are keyed by
//	(dimension, bin index), never by formatted float, so identity is exact.
//	Bin indices for the marker count and for every row come from one
//	rounding rule (floor, snapped within a few ulps of the next boundary).
//
// Complexity:
//
//   - Build: O(R·D + Σ n_d) time and memory.
//   - Neighbors: O(D) for rows, O(bin size) for markers.
//
// Options:
//
//   - WithWorkers(k): build up to k dimensions concurrently (errgroup).
//   - WithContext(ctx): abort between dimensions on cancellation.
//   - WithLogger(l): go-kit logger for debug output.
//
// Errors:
//
//   - ErrInvalidInput, and its specific kinds ErrEmptyData, ErrWeightCount,
//     ErrBadWindow, ErrBadWeight, ErrNaNInf.
//   - ErrNodeNotFound for queries on unknown nodes or dimensions.
//
// Diagnostics:
//
//	Stats, LogStats and Stats.WriteTable report row, marker and per-dimension
//	marker counts without affecting the graph.
package lattice

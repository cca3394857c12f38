// Package matrix holds the numeric input table consumed by the lattice builder.
//
// The table is a rectangular R×D grid of float64 values: row r is one
// observation (its index is the row's identity in every graph built from
// it) and column d is one dimension.
//
// What:
//
//   - Matrix is the minimal read interface (Rows, Cols, At) the builders need.
//   - Dense is a row-major implementation backed by a flat slice.
//   - FromRows deep-copies a [][]float64 and rejects ragged input.
//   - ColumnRange and ValidateFinite implement the numeric policy:
//     NaN and ±Inf are rejected, everything else is accepted.
//
// Complexity:
//
//   - At/Set: O(1). FromRows/Clone: O(R·D). ColumnRange: O(R).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols ≤ 0.
//   - ErrIndexOutOfBounds:  row or column index outside the table.
//   - ErrNonRectangular:    rows of differing length in FromRows.
//   - ErrNaNInf:            a non-finite value where a finite one is required.
//   - ErrNilMatrix:         nil Matrix passed to a helper.
package matrix

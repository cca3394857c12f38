// SPDX-License-Identifier: MIT
// Package: ringnet/lattice
//
// errors.go: sentinel errors for the lattice package.
//
// Error policy:
//   • Every input-validation failure satisfies errors.Is(err, ErrInvalidInput)
//     and, more specifically, errors.Is(err, ErrX) for its own kind.
//   • Validation runs before construction; Build never returns a partial graph.
//   • Numeric degeneracy (single-value columns, empty bins) is not an error.
//   • Option constructors panic on meaningless values; Build itself never panics.

package lattice

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella sentinel for rejected Build arguments.
// Usage: if errors.Is(err, ErrInvalidInput) { /* fix data, weights or window */ }.
var ErrInvalidInput = errors.New("lattice: invalid input")

// ErrEmptyData indicates a nil matrix or one with no rows or no columns.
var ErrEmptyData = fmt.Errorf("%w: data has no rows or columns", ErrInvalidInput)

// ErrWeightCount indicates len(weights) differs from the number of columns.
var ErrWeightCount = fmt.Errorf("%w: weight count does not match column count", ErrInvalidInput)

// ErrBadWindow indicates a window size that is not a finite positive number.
var ErrBadWindow = fmt.Errorf("%w: window size must be finite and > 0", ErrInvalidInput)

// ErrBadWeight indicates a dimension weight that is not a finite positive number.
var ErrBadWeight = fmt.Errorf("%w: dimension weight must be finite and > 0", ErrInvalidInput)

// ErrNaNInf indicates a NaN or ±Inf value in the data matrix.
var ErrNaNInf = fmt.Errorf("%w: data contains NaN or Inf", ErrInvalidInput)

// ErrNodeNotFound indicates a query referenced a node absent from the graph.
var ErrNodeNotFound = errors.New("lattice: node not found")

// latticeErrorf prefixes a validation failure with the method name and keeps
// the sentinel reachable through %w.
func latticeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// SPDX-License-Identifier: MIT

package graphio

import "errors"

// Sentinel errors for graphio operations.
var (
	// ErrMissingColumn indicates a requested column is absent from the CSV header.
	ErrMissingColumn = errors.New("graphio: column not found in header")

	// ErrDuplicateColumn indicates a header name that appears more than once.
	ErrDuplicateColumn = errors.New("graphio: duplicate column in header")

	// ErrParse indicates a cell could not be parsed as a float.
	ErrParse = errors.New("graphio: cannot parse value")

	// ErrNoRows indicates the CSV has a header but no data rows, or no header at all.
	ErrNoRows = errors.New("graphio: no data rows")

	// ErrLabelCount indicates a label slice whose length differs from the node count.
	ErrLabelCount = errors.New("graphio: label count does not match row count")
)

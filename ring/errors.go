// SPDX-License-Identifier: MIT

package ring

import "errors"

// Sentinel errors for ring operations.
var (
	// ErrNilGraph indicates Collapse received a nil expanded graph.
	ErrNilGraph = errors.New("ring: expanded graph is nil")

	// ErrRowNotFound indicates a query referenced a row outside [0, R).
	ErrRowNotFound = errors.New("ring: row not found")
)

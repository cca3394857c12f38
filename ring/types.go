// SPDX-License-Identifier: MIT
// Package: ringnet/ring
//
// types.go: row pairs, reduced edges and the ReducedGraph container.

package ring

// Pair is an unordered pair of row indices normalized so that U <= V.
// U == V denotes a self-loop. Pair is comparable and used as a map key.
type Pair struct {
	U int // smaller row index
	V int // larger row index
}

// NewPair returns the normalized pair {min(a,b), max(a,b)}.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{U: a, V: b}
}

// IsLoop reports whether p joins a row to itself.
func (p Pair) IsLoop() bool { return p.U == p.V }

// Edge is an undirected, weighted edge of the reduced graph.
// U <= V always holds.
type Edge struct {
	U      int
	V      int
	Weight float64
}

// ReducedGraph is the row-only output of Collapse.
//
// Node identity is the 0-based row index of the input matrix; all R rows are
// present even when isolated. At most one edge exists per unordered pair and
// its Weight is the sum of every ring and bridge contribution.
// ReducedGraph is immutable and safe for concurrent readers.
type ReducedGraph struct {
	rows    int
	weights map[Pair]float64
	adj     [][]int // adj[r]: distinct neighbors of r ascending; r itself for a loop
}

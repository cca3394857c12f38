// Package ring collapses a lattice.ExpandedGraph into a row-only graph.
//
// Every marker is replaced by a ring over the rows assigned to it, and
// consecutive non-empty markers of a dimension are joined by one bridge
// edge between the first rows of their rings:
//
//	m0{0,1} ── m1{2,3}        0 ══ 1      ring (0,1) weight 2w
//	                    ⇒     │           bridge (0,2) weight w
//	                          2 ══ 3      ring (2,3) weight 2w
//
// Empty markers are skipped outright, so an empty bin between two populated
// bins leaves the dimension's chain disconnected at that point.
//
// Weights from every ring step, every bridge and every dimension are summed
// per unordered row pair in an Accumulator; the ReducedGraph stores at most
// one edge per pair, self-loops included.
//
// Complexity:
//
//   - Collapse: O(Σ_d (n_d + R)) time.
//   - Components: O(R + E).
//
// Errors:
//
//   - ErrNilGraph: Collapse(nil).
//   - ErrRowNotFound: query on a row outside [0, R).
package ring

// Package ringnet turns a numeric table into a sparse weighted graph of its
// rows, ready for clustering or partitioning.
//
// Pipeline:
//
//	matrix.Matrix ──lattice.Build──▶ ExpandedGraph ──ring.Collapse──▶ ReducedGraph
//	   R×D table         rows + per-dimension markers         rows only
//
// ConstructNet runs both stages and logs the lattice node counts in between.
// Row identity is the 0-based row index of the input table at every stage, so
// callers can join the result back to per-row metadata by index.
//
// Subpackages:
//
//	matrix/   - numeric input table (Matrix, Dense, FromRows, ColumnRange)
//	lattice/  - Lattice Builder: markers, chain and assignment edges, Stats
//	ring/     - Ring Collapser: rings, bridges, Accumulator, Components
//	graphio/  - CSV table reader, JSON / CSV graph and partition writers
//	config/   - YAML run configuration
//	cmd/ringnet - command-line front end
//	examples/ - runnable census-tract scenario
//
// Quick example, one column [0 1 2 3], weight 1, window 2:
//
//	0 ══ 1        ══ ring edge, weight 2 (2-ring visited twice)
//	│             │  bridge edge, weight 1
//	2 ══ 3
package ringnet

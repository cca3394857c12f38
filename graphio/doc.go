// Package graphio moves tables and graphs across the process boundary.
//
// Input:
//
//   - ReadMatrixCSV reads a headed CSV into a matrix.Dense, selecting numeric
//     columns by name and keeping an optional label column (e.g. a geographic
//     identifier) aligned with row indices.
//
// Output:
//
//   - WriteJSON writes a node-link document of a ring.ReducedGraph.
//   - WriteEdgeListCSV writes "source,target,weight" rows.
//   - WritePartitionCSV writes "row,label,component" rows.
//
// Every output keys rows by their 0-based index in the input table; indices
// are never compacted or reassigned, so downstream tools can join on them.
package graphio

// SPDX-License-Identifier: MIT
// Package: ringnet/lattice
//
// types.go: node identity, markers, edges and the ExpandedGraph container.
//
// Identity policy:
//   • NodeID is a comparable tagged value: either a data row or a marker.
//   • A marker is identified by (dimension, bin index). The bin boundary
//     value is derived from the index and never used as identity, so two
//     markers can neither collide nor fail to merge through rounding.
//   • Text formatting of marker values happens only in String().

package lattice

import "fmt"

// NodeKind tags a NodeID as a data row or a marker.
type NodeKind uint8

const (
	// KindRow marks a node standing for one row of the input matrix.
	KindRow NodeKind = iota
	// KindMarker marks a synthesized bin-boundary node of one dimension.
	KindMarker
)

// String returns "row" or "marker".
func (k NodeKind) String() string {
	if k == KindMarker {
		return "marker"
	}

	return "row"
}

// MarkerKey is the canonical identity of a marker: its dimension and its
// position i in the sequence m0 < m1 < ... < mn of that dimension.
type MarkerKey struct {
	Dim   int // dimension (column) index
	Index int // bin index i, value = m0 + i*window
}

// NodeID identifies a node of the expanded graph.
// Exactly one of Row / Marker is meaningful, selected by Kind.
type NodeID struct {
	Kind   NodeKind
	Row    int       // 0-based matrix row index when Kind == KindRow
	Marker MarkerKey // marker identity when Kind == KindMarker
}

// RowNode returns the NodeID of matrix row r.
func RowNode(r int) NodeID {
	return NodeID{Kind: KindRow, Row: r}
}

// MarkerNode returns the NodeID of marker i in dimension dim.
func MarkerNode(dim, i int) NodeID {
	return NodeID{Kind: KindMarker, Marker: MarkerKey{Dim: dim, Index: i}}
}

// IsRow reports whether id names a data row.
func (id NodeID) IsRow() bool { return id.Kind == KindRow }

// IsMarker reports whether id names a marker.
func (id NodeID) IsMarker() bool { return id.Kind == KindMarker }

// String formats rows as their index and markers as "dim#index".
func (id NodeID) String() string {
	if id.Kind == KindMarker {
		return fmt.Sprintf("%d#%d", id.Marker.Dim, id.Marker.Index)
	}

	return fmt.Sprintf("%d", id.Row)
}

// Marker is a bin boundary of one dimension.
type Marker struct {
	Dim   int     // dimension index
	Index int     // position in the dimension's chain
	Value float64 // m0 + Index*window
}

// ID returns the NodeID of the marker.
func (m Marker) ID() NodeID { return MarkerNode(m.Dim, m.Index) }

// String formats the marker as "dim,value" with four decimals.
func (m Marker) String() string {
	return fmt.Sprintf("%d,%.4f", m.Dim, m.Value)
}

// EdgeKind distinguishes the two kinds of edges in an expanded graph.
type EdgeKind uint8

const (
	// EdgeChain links consecutive markers m_i and m_{i+1} of one dimension.
	EdgeChain EdgeKind = iota
	// EdgeAssignment links a data row to the marker of the bin it falls in.
	EdgeAssignment
)

// String returns "chain" or "assignment".
func (k EdgeKind) String() string {
	if k == EdgeAssignment {
		return "assignment"
	}

	return "chain"
}

// Edge is an undirected, weighted edge of the expanded graph.
// For chain edges From/To are markers i and i+1; for assignment edges From
// is the row and To is its marker.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight float64
	Kind   EdgeKind
}

// Dimension holds the marker chain and bin membership of one column.
// It is immutable once Build returns.
type Dimension struct {
	Index  int     // column index d
	Weight float64 // weights[d], shared by chain and assignment edges
	Window float64 // bin width
	Min    float64 // min over the column, equals Markers[0].Value
	Max    float64 // max over the column

	markers []Marker // m0..mn, strictly increasing
	members [][]int  // members[i]: rows assigned to marker i, ascending
	bins    []int    // bins[r]: marker index of row r
}

// ExpandedGraph is the output of Build: one node per data row, one node per
// marker, chain edges per dimension and one assignment edge per (row, dimension).
// It is immutable and safe for concurrent readers.
type ExpandedGraph struct {
	rows int
	dims []*Dimension
}

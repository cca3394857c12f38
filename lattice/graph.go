// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Rows returns R, the number of data-row nodes.
func (g *ExpandedGraph) Rows() int { return g.rows }

// Dimensions returns D, the number of columns the graph was built from.
func (g *ExpandedGraph) Dimensions() int { return len(g.dims) }

// Dimension returns dimension d, or ErrNodeNotFound when d is out of range.
func (g *ExpandedGraph) Dimension(d int) (*Dimension, error) {
	if d < 0 || d >= len(g.dims) {
		return nil, fmt.Errorf("Dimension(%d): %w", d, ErrNodeNotFound)
	}

	return g.dims[d], nil
}

// MarkerCount returns Σ_d (n_d + 1).
// Complexity: O(D).
func (g *ExpandedGraph) MarkerCount() int {
	total := 0
	for _, dim := range g.dims {
		total += len(dim.markers)
	}

	return total
}

// NodeCount returns R + Σ_d (n_d + 1).
func (g *ExpandedGraph) NodeCount() int { return g.rows + g.MarkerCount() }

// ChainEdgeCount returns Σ_d n_d.
func (g *ExpandedGraph) ChainEdgeCount() int {
	total := 0
	for _, dim := range g.dims {
		total += dim.N()
	}

	return total
}

// AssignmentEdgeCount returns R·D.
func (g *ExpandedGraph) AssignmentEdgeCount() int { return g.rows * len(g.dims) }

// EdgeCount returns chain plus assignment edges.
func (g *ExpandedGraph) EdgeCount() int { return g.ChainEdgeCount() + g.AssignmentEdgeCount() }

// HasNode reports whether id names a row or marker of g.
func (g *ExpandedGraph) HasNode(id NodeID) bool {
	switch id.Kind {
	case KindRow:
		return id.Row >= 0 && id.Row < g.rows
	case KindMarker:
		if id.Marker.Dim < 0 || id.Marker.Dim >= len(g.dims) {
			return false
		}
		i := id.Marker.Index
		return i >= 0 && i < len(g.dims[id.Marker.Dim].markers)
	}

	return false
}

// Neighbors lists the nodes adjacent to id in a deterministic order.
//
//   - Row r: its marker in each dimension, in dimension order.
//   - Marker m_i: m_{i-1} and m_{i+1} (when present), then the rows of bin i
//     in ascending row order.
//
// Returns ErrNodeNotFound for an unknown id.
// Complexity: O(D) for rows, O(|bin|) for markers.
func (g *ExpandedGraph) Neighbors(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) {
		return nil, fmt.Errorf("Neighbors(%s %s): %w", id.Kind, id, ErrNodeNotFound)
	}
	if id.IsRow() {
		out := make([]NodeID, len(g.dims))
		for d, dim := range g.dims {
			out[d] = MarkerNode(d, dim.bins[id.Row])
		}
		return out, nil
	}

	dim := g.dims[id.Marker.Dim]
	i := id.Marker.Index
	out := make([]NodeID, 0, len(dim.members[i])+2)
	if i > 0 {
		out = append(out, MarkerNode(dim.Index, i-1))
	}
	if i < dim.N() {
		out = append(out, MarkerNode(dim.Index, i+1))
	}
	for _, r := range dim.members[i] {
		out = append(out, RowNode(r))
	}

	return out, nil
}

// RowNeighbors returns the rows adjacent to marker (dim, i) in ascending
// order; markers adjacent to it are skipped.
func (g *ExpandedGraph) RowNeighbors(dim, i int) ([]int, error) {
	id := MarkerNode(dim, i)
	if !g.HasNode(id) {
		return nil, fmt.Errorf("RowNeighbors(%s): %w", id, ErrNodeNotFound)
	}

	return g.dims[dim].Members(i), nil
}

// Degree returns the number of edges incident to id.
func (g *ExpandedGraph) Degree(id NodeID) (int, error) {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		return 0, err
	}

	return len(nbrs), nil
}

// MarkerOf returns the marker row r is assigned to in dimension d.
func (g *ExpandedGraph) MarkerOf(r, d int) (Marker, error) {
	if r < 0 || r >= g.rows || d < 0 || d >= len(g.dims) {
		return Marker{}, fmt.Errorf("MarkerOf(%d,%d): %w", r, d, ErrNodeNotFound)
	}
	dim := g.dims[d]

	return dim.markers[dim.bins[r]], nil
}

// Edges materializes every edge of g. Order: for each dimension, its chain
// edges by ascending marker index, then its assignment edges by ascending row.
// Complexity: O(Σ n_d + R·D).
func (g *ExpandedGraph) Edges() []Edge {
	out := make([]Edge, 0, g.EdgeCount())
	for d, dim := range g.dims {
		for i := 0; i < dim.N(); i++ {
			out = append(out, Edge{
				From:   MarkerNode(d, i),
				To:     MarkerNode(d, i+1),
				Weight: dim.Weight,
				Kind:   EdgeChain,
			})
		}
		for r, i := range dim.bins {
			out = append(out, Edge{
				From:   RowNode(r),
				To:     MarkerNode(d, i),
				Weight: dim.Weight,
				Kind:   EdgeAssignment,
			})
		}
	}

	return out
}

// N returns the bin count n; the dimension has n+1 markers and n chain edges.
func (dim *Dimension) N() int { return len(dim.markers) - 1 }

// Markers returns a copy of m0..mn.
func (dim *Dimension) Markers() []Marker {
	out := make([]Marker, len(dim.markers))
	copy(out, dim.markers)

	return out
}

// Marker returns marker i and whether it exists.
func (dim *Dimension) Marker(i int) (Marker, bool) {
	if i < 0 || i >= len(dim.markers) {
		return Marker{}, false
	}

	return dim.markers[i], true
}

// Members returns a copy of the rows assigned to marker i, ascending.
// Out-of-range i yields nil.
func (dim *Dimension) Members(i int) []int {
	if i < 0 || i >= len(dim.members) {
		return nil
	}
	out := make([]int, len(dim.members[i]))
	copy(out, dim.members[i])

	return out
}

// BinOf returns the marker index row r is assigned to, or -1 if r is unknown.
func (dim *Dimension) BinOf(r int) int {
	if r < 0 || r >= len(dim.bins) {
		return -1
	}

	return dim.bins[r]
}


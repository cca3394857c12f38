// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Stats is a read-only count snapshot of an expanded graph.
// It is purely observational and has no effect on collapsing.
type Stats struct {
	DataNodes    int   // R
	MarkerNodes  int   // Σ_d (n_d + 1)
	TotalNodes   int   // DataNodes + MarkerNodes
	ChainEdges   int   // Σ_d n_d
	AssignEdges  int   // R·D
	EmptyMarkers int   // markers with no assigned row, over all dimensions
	MarkersByDim []int // MarkersByDim[d] = n_d + 1
}

// Stats computes the node and edge counts of g.
// Complexity: O(Σ n_d).
func (g *ExpandedGraph) Stats() Stats {
	s := Stats{
		DataNodes:    g.rows,
		ChainEdges:   g.ChainEdgeCount(),
		AssignEdges:  g.AssignmentEdgeCount(),
		MarkersByDim: make([]int, len(g.dims)),
	}
	for d, dim := range g.dims {
		s.MarkersByDim[d] = len(dim.markers)
		s.MarkerNodes += len(dim.markers)
		for _, m := range dim.members {
			if len(m) == 0 {
				s.EmptyMarkers++
			}
		}
	}
	s.TotalNodes = s.DataNodes + s.MarkerNodes

	return s
}

// LogStats writes s as structured info-level lines: one summary line and one
// line per dimension.
func LogStats(logger log.Logger, s Stats) {
	level.Info(logger).Log(
		"msg", "node counts",
		"data_nodes", humanize.Comma(int64(s.DataNodes)),
		"marker_nodes", humanize.Comma(int64(s.MarkerNodes)),
		"total_nodes", humanize.Comma(int64(s.TotalNodes)),
		"empty_markers", humanize.Comma(int64(s.EmptyMarkers)),
	)
	for d, n := range s.MarkersByDim {
		level.Info(logger).Log("msg", "markers per dimension", "dim", d, "markers", humanize.Comma(int64(n)))
	}
}

// WriteTable prints s as a fixed-width text table.
func (s Stats) WriteTable(w io.Writer) error {
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	var sb strings.Builder
	fmt.Fprintln(&sb, rule)
	fmt.Fprintln(&sb, "NODE COUNTS")
	fmt.Fprintln(&sb, rule)
	fmt.Fprintf(&sb, "Data point nodes:     %s\n", humanize.Comma(int64(s.DataNodes)))
	fmt.Fprintf(&sb, "Marker nodes (total): %s\n", humanize.Comma(int64(s.MarkerNodes)))
	fmt.Fprintf(&sb, "Total nodes:          %s\n", humanize.Comma(int64(s.TotalNodes)))
	fmt.Fprintf(&sb, "Empty markers:        %s\n", humanize.Comma(int64(s.EmptyMarkers)))
	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, thin)
	fmt.Fprintln(&sb, "Marker nodes per dimension:")
	fmt.Fprintln(&sb, thin)
	for d, n := range s.MarkersByDim {
		fmt.Fprintf(&sb, "  Dimension %2d: %4d markers\n", d, n)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// SPDX-License-Identifier: MIT

package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/ringnet/ring"
)

// WriteEdgeListCSV writes "source,target,weight" followed by one record per
// edge in ring.ReducedGraph.Edges order.
func WriteEdgeListCSV(w io.Writer, g *ring.ReducedGraph) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "target", "weight"}); err != nil {
		return fmt.Errorf("WriteEdgeListCSV: %w", err)
	}
	for _, e := range g.Edges() {
		rec := []string{
			strconv.Itoa(e.U),
			strconv.Itoa(e.V),
			strconv.FormatFloat(e.Weight, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteEdgeListCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WritePartitionCSV writes "row,label,component" for every row of every
// component. labels may be nil, leaving the label column empty.
func WritePartitionCSV(w io.Writer, components [][]int, labels []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"row", "label", "component"}); err != nil {
		return fmt.Errorf("WritePartitionCSV: %w", err)
	}
	for c, comp := range components {
		for _, r := range comp {
			label := ""
			if labels != nil {
				if r < 0 || r >= len(labels) {
					return fmt.Errorf("WritePartitionCSV: row %d: %w", r, ErrLabelCount)
				}
				label = labels[r]
			}
			if err := cw.Write([]string{strconv.Itoa(r), label, strconv.Itoa(c)}); err != nil {
				return fmt.Errorf("WritePartitionCSV: %w", err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

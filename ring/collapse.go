// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ringnet/lattice"
)

// MethodCollapse is the error-context prefix of Collapse.
const MethodCollapse = "Collapse"

// Collapse removes every marker of g and replaces it with direct row edges.
//
// Per dimension, visiting markers in ascending value order, with N_i the rows
// adjacent to marker i in ascending row order:
//
//  1. Empty N_i: skip; no ring and no bridge in either direction.
//  2. Ring: add (N_i[k], N_i[(k+1) mod |N_i|]) for every k. One row gives a
//     self-loop; two rows give the same pair twice and twice the weight.
//  3. Bridge: when marker i+1 exists and N_{i+1} is non-empty, add exactly
//     one edge from N_i[0] to N_{i+1}[0].
//
// Every contribution weighs the dimension weight and contributions to the
// same pair are summed. Dimensions are independent: each one fills a private
// Accumulator (concurrently with WithWorkers) and the partials are merged in
// dimension order by this goroutine.
//
// The result has exactly g.Rows() nodes. The only errors are ErrNilGraph and
// cancellation of the WithContext context.
//
// Complexity: O(Σ_d (n_d + R)) time, O(E) memory for E reduced edges.
func Collapse(g *lattice.ExpandedGraph, opts ...Option) (*ReducedGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodCollapse, ErrNilGraph)
	}
	cfg := newCollapseConfig(opts...)

	parts := make([]*Accumulator, g.Dimensions())
	eg, ctx := errgroup.WithContext(cfg.ctx)
	eg.SetLimit(cfg.workers)
	for d := range parts {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			acc, rings, err := collapseDimension(g, d)
			if err != nil {
				return err
			}
			parts[d] = acc
			level.Debug(cfg.logger).Log(
				"msg", "collapsed dimension",
				"dim", d,
				"rings", rings,
				"pairs", acc.Len(),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodCollapse, err)
	}

	merged := NewAccumulator()
	for _, acc := range parts {
		merged.Merge(acc)
	}

	return newReducedGraph(g.Rows(), merged), nil
}

// collapseDimension rings and bridges the markers of dimension d into a fresh
// Accumulator and reports how many non-empty rings it produced.
// Marker indices ascend with marker values, so index order is value order.
func collapseDimension(g *lattice.ExpandedGraph, d int) (*Accumulator, int, error) {
	dim, err := g.Dimension(d)
	if err != nil {
		return nil, 0, err
	}
	acc := NewAccumulator()
	w := dim.Weight
	last := dim.N()

	next, err := g.RowNeighbors(d, 0)
	if err != nil {
		return nil, 0, err
	}
	rings := 0
	for i := 0; i <= last; i++ {
		curr := next
		next = nil
		if i < last {
			if next, err = g.RowNeighbors(d, i+1); err != nil {
				return nil, 0, err
			}
		}
		if len(curr) == 0 {
			continue
		}

		rings++
		for k := range curr {
			acc.Add(curr[k], curr[(k+1)%len(curr)], w)
		}
		if len(next) > 0 {
			acc.Add(curr[0], next[0], w)
		}
	}

	return acc, rings, nil
}

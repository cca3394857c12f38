// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"sort"
)

// newReducedGraph freezes acc into a ReducedGraph over rows 0..rows-1.
// Complexity: O(E log E).
func newReducedGraph(rows int, acc *Accumulator) *ReducedGraph {
	g := &ReducedGraph{
		rows:    rows,
		weights: make(map[Pair]float64, acc.Len()),
		adj:     make([][]int, rows),
	}
	for p, w := range acc.weights {
		g.weights[p] = w
		g.adj[p.U] = append(g.adj[p.U], p.V)
		if !p.IsLoop() {
			g.adj[p.V] = append(g.adj[p.V], p.U)
		}
	}
	for _, nbrs := range g.adj {
		sort.Ints(nbrs)
	}

	return g
}

// NodeCount returns R; every input row is a node.
func (g *ReducedGraph) NodeCount() int { return g.rows }

// HasNode reports whether r is a row of g.
func (g *ReducedGraph) HasNode(r int) bool { return r >= 0 && r < g.rows }

// EdgeCount returns the number of distinct unordered pairs, loops included.
func (g *ReducedGraph) EdgeCount() int { return len(g.weights) }

// Weight returns the accumulated weight of {u, v} and whether the edge exists.
func (g *ReducedGraph) Weight(u, v int) (float64, bool) {
	w, ok := g.weights[NewPair(u, v)]

	return w, ok
}

// HasEdge reports whether {u, v} is an edge.
func (g *ReducedGraph) HasEdge(u, v int) bool {
	_, ok := g.weights[NewPair(u, v)]

	return ok
}

// Edges returns every edge sorted by U, then V.
// Complexity: O(E log E).
func (g *ReducedGraph) Edges() []Edge {
	out := make([]Edge, 0, len(g.weights))
	for p, w := range g.weights {
		out = append(out, Edge{U: p.U, V: p.V, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// Neighbors returns the distinct neighbors of r ascending; r appears in its
// own list when it carries a self-loop.
func (g *ReducedGraph) Neighbors(r int) ([]int, error) {
	if !g.HasNode(r) {
		return nil, fmt.Errorf("Neighbors(%d): %w", r, ErrRowNotFound)
	}
	out := make([]int, len(g.adj[r]))
	copy(out, g.adj[r])

	return out, nil
}

// Degree returns the number of edge endpoints at r; a self-loop counts twice.
func (g *ReducedGraph) Degree(r int) (int, error) {
	if !g.HasNode(r) {
		return 0, fmt.Errorf("Degree(%d): %w", r, ErrRowNotFound)
	}
	deg := 0
	for _, v := range g.adj[r] {
		if v == r {
			deg += 2
			continue
		}
		deg++
	}

	return deg, nil
}

// Strength returns the sum of incident edge weights at r; a self-loop counts twice.
// Neighbors are visited in ascending order, so the sum is deterministic.
func (g *ReducedGraph) Strength(r int) (float64, error) {
	if !g.HasNode(r) {
		return 0, fmt.Errorf("Strength(%d): %w", r, ErrRowNotFound)
	}
	s := 0.0
	for _, v := range g.adj[r] {
		w := g.weights[NewPair(r, v)]
		if v == r {
			w *= 2
		}
		s += w
	}

	return s, nil
}

// TotalWeight returns the sum of all edge weights, each loop counted once.
func (g *ReducedGraph) TotalWeight() float64 {
	total := 0.0
	for _, e := range g.Edges() {
		total += e.Weight
	}

	return total
}

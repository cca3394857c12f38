// SPDX-License-Identifier: MIT

package ring

import "sort"

// Components finds the connected components of g.
// Each component lists its rows ascending; components are ordered by their
// smallest row. Isolated rows form singleton components. The result is the
// partition format consumed downstream, keyed by original row index.
//
// Time:   O(R + E).
// Memory: O(R) for visited flags and the queue.
func (g *ReducedGraph) Components() [][]int {
	seen := make([]bool, g.rows)
	var comps [][]int

	for r0 := 0; r0 < g.rows; r0++ {
		if seen[r0] {
			continue
		}
		// BFS to collect component
		queue := []int{r0}
		seen[r0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// ComponentOf returns, for every row, the index of its component in Components().
func (g *ReducedGraph) ComponentOf() []int {
	labels := make([]int, g.rows)
	for c, comp := range g.Components() {
		for _, r := range comp {
			labels[r] = c
		}
	}

	return labels
}

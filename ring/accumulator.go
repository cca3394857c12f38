// SPDX-License-Identifier: MIT

package ring

// Accumulator sums edge weights per unordered row pair.
// Adding the same pair twice adds the weights; nothing is ever overwritten.
// An Accumulator is not safe for concurrent writers: give each goroutine its
// own and Merge them from a single goroutine.
type Accumulator struct {
	weights map[Pair]float64
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{weights: make(map[Pair]float64)}
}

// Add accumulates w onto the pair {u, v}.
// Complexity: O(1) amortized.
func (a *Accumulator) Add(u, v int, w float64) {
	a.weights[NewPair(u, v)] += w
}

// Merge adds every pair of other into a. Merging partials in a fixed order
// makes the per-pair summation order, and therefore the result, deterministic.
// Complexity: O(other.Len()).
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil {
		return
	}
	for p, w := range other.weights {
		a.weights[p] += w
	}
}

// Weight returns the accumulated weight of {u, v} and whether it was touched.
func (a *Accumulator) Weight(u, v int) (float64, bool) {
	w, ok := a.weights[NewPair(u, v)]

	return w, ok
}

// Len returns the number of distinct pairs.
func (a *Accumulator) Len() int { return len(a.weights) }

// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ringnet/matrix"
)

// MethodBuild is the error-context prefix of Build.
const MethodBuild = "Build"

// Build constructs the expanded graph of data.
//
// For each column d it creates the marker chain m0 < ... < mn with
// m0 = min_d, m_i = m0 + i*window and n = floor((max_d-min_d)/window) + 1,
// links consecutive markers with chain edges of weight weights[d], and links
// every row to the marker of its bin (floor binning) with an assignment edge
// of the same weight.
//
// Preconditions (ErrInvalidInput family): data is at least 1×1,
// len(weights) == data.Cols(), window and every weight finite and > 0,
// every data value finite.
//
// Dimensions are independent; WithWorkers(k) builds up to k of them at once.
// Each goroutine owns its dimension slot, so the result is identical to a
// sequential build.
//
// Complexity: O(R·D + Σ n_d) time and memory.
func Build(data matrix.Matrix, weights []float64, window float64, opts ...Option) (*ExpandedGraph, error) {
	cfg := newBuildConfig(opts...)
	if err := validateInput(data, weights, window); err != nil {
		return nil, err
	}

	cols := data.Cols()
	dims := make([]*Dimension, cols)

	eg, ctx := errgroup.WithContext(cfg.ctx)
	eg.SetLimit(cfg.workers)
	for d := 0; d < cols; d++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dim, err := buildDimension(data, d, weights[d], window)
			if err != nil {
				return err
			}
			dims[d] = dim
			level.Debug(cfg.logger).Log(
				"msg", "built dimension",
				"dim", d,
				"min", dim.Min,
				"max", dim.Max,
				"markers", len(dim.markers),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return &ExpandedGraph{rows: data.Rows(), dims: dims}, nil
}

// buildDimension computes the marker chain and bin membership of column d.
func buildDimension(data matrix.Matrix, d int, weight, window float64) (*Dimension, error) {
	lo, hi, err := matrix.ColumnRange(data, d)
	if err != nil {
		return nil, err
	}
	if (hi-lo)/window >= MaxMarkersPerDimension-1 {
		return nil, latticeErrorf(MethodBuild, ErrBadWindow,
			"window %v too small for range [%v,%v] of column %d", window, lo, hi, d)
	}

	// n bins, n+1 markers; max == min still yields n = 1.
	n := binIndex(hi, lo, window) + 1

	markers := make([]Marker, n+1)
	for i := range markers {
		markers[i] = Marker{Dim: d, Index: i, Value: markerValue(lo, window, i)}
	}

	rows := data.Rows()
	members := make([][]int, n+1)
	bins := make([]int, rows)
	for r := 0; r < rows; r++ {
		v, err := data.At(r, d)
		if err != nil {
			return nil, err
		}
		i := binIndex(v, lo, window)
		if i > n {
			i = n
		}
		bins[r] = i
		members[i] = append(members[i], r) // rows visited ascending
	}

	return &Dimension{
		Index:   d,
		Weight:  weight,
		Window:  window,
		Min:     lo,
		Max:     hi,
		markers: markers,
		members: members,
		bins:    bins,
	}, nil
}

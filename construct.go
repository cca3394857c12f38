// SPDX-License-Identifier: MIT

package ringnet

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/ringnet/lattice"
	"github.com/katalvlaran/ringnet/matrix"
	"github.com/katalvlaran/ringnet/ring"
)

// Option customizes ConstructNet; every option is forwarded to both stages.
type Option func(*netConfig)

type netConfig struct {
	workers int
	ctx     context.Context
	logger  log.Logger
}

// WithWorkers sets the per-stage dimension fan-out. Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("ringnet: WithWorkers(n<0)")
	}
	return func(c *netConfig) { c.workers = n }
}

// WithContext attaches a cancellation context. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("ringnet: WithContext(nil)")
	}
	return func(c *netConfig) { c.ctx = ctx }
}

// WithLogger sets the go-kit logger. Panics on nil.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic("ringnet: WithLogger(nil)")
	}
	return func(c *netConfig) { c.logger = logger }
}

// ConstructNet builds the lattice of data, logs its node counts and collapses
// it into the reduced row graph. Errors are those of lattice.Build (the
// ErrInvalidInput family) and cancellation.
func ConstructNet(data matrix.Matrix, weights []float64, window float64, opts ...Option) (*ring.ReducedGraph, error) {
	_, rg, err := ConstructNetWithLattice(data, weights, window, opts...)

	return rg, err
}

// ConstructNetWithLattice is ConstructNet that also returns the expanded graph
// for inspection. Neither graph is returned on error.
func ConstructNetWithLattice(data matrix.Matrix, weights []float64, window float64, opts ...Option) (*lattice.ExpandedGraph, *ring.ReducedGraph, error) {
	cfg := &netConfig{workers: 1, ctx: context.Background(), logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(cfg)
	}

	g, err := lattice.Build(data, weights, window,
		lattice.WithWorkers(cfg.workers),
		lattice.WithContext(cfg.ctx),
		lattice.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, nil, err
	}
	lattice.LogStats(cfg.logger, g.Stats())

	rg, err := ring.Collapse(g,
		ring.WithWorkers(cfg.workers),
		ring.WithContext(cfg.ctx),
		ring.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, nil, err
	}
	level.Info(cfg.logger).Log(
		"msg", "collapsed network",
		"nodes", rg.NodeCount(),
		"edges", rg.EdgeCount(),
		"components", len(rg.Components()),
	)

	return g, rg, nil
}

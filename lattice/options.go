// SPDX-License-Identifier: MIT
// Package: ringnet/lattice
//
// options.go: functional options for Build.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Defaults: sequential build, background context, no-op logger.
//   • The worker count never changes the result, only how it is computed.

package lattice

import (
	"context"

	"github.com/go-kit/log"
)

// Option customizes Build by mutating a buildConfig before construction.
type Option func(*buildConfig)

// buildConfig is the resolved option set of one Build call.
type buildConfig struct {
	workers int
	ctx     context.Context
	logger  log.Logger
}

// newBuildConfig applies opts over the defaults, left to right.
func newBuildConfig(opts ...Option) *buildConfig {
	cfg := &buildConfig{
		workers: 1,
		ctx:     context.Background(),
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithWorkers sets how many dimensions are built concurrently.
// 0 and 1 both mean sequential. Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("lattice: WithWorkers(n<0)")
	}
	workers := max(n, 1)
	return func(c *buildConfig) { c.workers = workers }
}

// WithContext attaches a context checked between dimensions.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("lattice: WithContext(nil)")
	}
	return func(c *buildConfig) { c.ctx = ctx }
}

// WithLogger sets the go-kit logger used for per-dimension debug output.
// Panics on nil; use log.NewNopLogger() to silence.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic("lattice: WithLogger(nil)")
	}
	return func(c *buildConfig) { c.logger = logger }
}

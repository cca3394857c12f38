// SPDX-License-Identifier: MIT

package ring

import (
	"context"

	"github.com/go-kit/log"
)

// Option customizes Collapse.
type Option func(*collapseConfig)

// collapseConfig is the resolved option set of one Collapse call.
type collapseConfig struct {
	workers int
	ctx     context.Context
	logger  log.Logger
}

// newCollapseConfig applies opts over the defaults, left to right.
func newCollapseConfig(opts ...Option) *collapseConfig {
	cfg := &collapseConfig{
		workers: 1,
		ctx:     context.Background(),
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithWorkers sets how many dimensions are collapsed concurrently.
// 0 and 1 both mean sequential. Panics on negative n.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("ring: WithWorkers(n<0)")
	}
	workers := max(n, 1)
	return func(c *collapseConfig) { c.workers = workers }
}

// WithContext attaches a context checked between dimensions. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("ring: WithContext(nil)")
	}
	return func(c *collapseConfig) { c.ctx = ctx }
}

// WithLogger sets the go-kit logger for per-dimension debug output. Panics on nil.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic("ring: WithLogger(nil)")
	}
	return func(c *collapseConfig) { c.logger = logger }
}

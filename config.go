// SPDX-License-Identifier: MIT
package vrpcore

import (
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/vrpcore/costs"
)

// Config resolves every Option into an immutable value, in the style of
// lvlath/builder's BuilderOption/newBuilderConfig pattern: options mutate a
// private struct during construction, then NewProblem never touches it
// again.
type Config struct {
	driverCostMode  costs.CostMode
	reloadThreshold float64
	fastService     bool
	logger          hclog.Logger
}

// Option customizes a Config during NewProblem.
type Option func(*Config)

// WithDriverCostMode resolves spec.md §9's Open Question on whether soft
// activity cost should combine driver and vehicle rates (the default) or
// charge the vehicle alone.
func WithDriverCostMode(mode costs.CostMode) Option {
	return func(c *Config) { c.driverCostMode = mode }
}

// WithReloadThreshold overrides capacity.DefaultReloadThreshold, the
// fraction of capacity that forces a route's remaining reload markers into
// play. Panics if threshold is not in (0, 1].
func WithReloadThreshold(threshold float64) Option {
	if threshold <= 0 || threshold > 1 {
		panic("vrpcore: WithReloadThreshold outside (0, 1]")
	}
	return func(c *Config) { c.reloadThreshold = threshold }
}

// WithFastService enables the zero-duration/single-span soft-cost
// short-circuit described in SPEC_FULL.md's supplemented features.
func WithFastService(enabled bool) Option {
	return func(c *Config) { c.fastService = enabled }
}

// WithLogger attaches an hclog.Logger for Registry diagnostic tracing
// (InsertionContext hands it to every Registry it builds and logs nothing
// itself). Panics on nil; pass hclog.NewNullLogger() explicitly
// to silence tracing rather than omitting the option.
func WithLogger(logger hclog.Logger) Option {
	if logger == nil {
		panic("vrpcore: WithLogger(nil)")
	}
	return func(c *Config) { c.logger = logger }
}

// newConfig resolves opts over the defaults: driver+vehicle soft cost,
// capacity's own DefaultReloadThreshold (signalled by the zero value),
// fast-service disabled, and a null logger.
func newConfig(opts ...Option) Config {
	c := Config{driverCostMode: costs.DriverAndVehicle, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewSimpleActivityCost builds a costs.SimpleActivityCost honoring
// WithDriverCostMode, for callers content with the default service-cost
// oracle rather than writing their own costs.ActivityCost.
func NewSimpleActivityCost(rates costs.RateLookup, opts ...Option) *costs.SimpleActivityCost {
	cfg := newConfig(opts...)
	return &costs.SimpleActivityCost{Rates: rates, Mode: cfg.driverCostMode}
}

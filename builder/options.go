// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on programmer error (nil RNG, nil sampler,
//     non-positive retry bound, negative edge target).
//   • The weight range is user input, so it is validated by Generate and
//     reported as ErrInvalidConfiguration instead of panicking.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes generation by mutating a builderConfig before
// the first phase runs.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The generator takes exclusive use of r
// for the duration of the call. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and regression fixtures to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightRange sets the inclusive weight range [low, high].
// Complexity: O(1).
func WithWeightRange(low, high float64) BuilderOption {
	return func(c *builderConfig) {
		c.low, c.high = low, high
	}
}

// WithWeightFn overrides the candidate weight sampler. Panics on nil.
// Complexity: O(1).
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithIntegerWeights draws integral weights via IntegerWeightFn.
// Complexity: O(1).
func WithIntegerWeights() BuilderOption {
	return WithWeightFn(IntegerWeightFn)
}

// WithMaxWeightRetries bounds the draws spent on one edge. Panics if n < 1.
// Complexity: O(1).
func WithMaxWeightRetries(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxWeightRetries(n<1)")
	}
	return func(c *builderConfig) {
		c.maxRetries = n
	}
}

// WithEdgeTarget requests exactly m edges, ignoring the density argument of
// Generate (which is still validated). Panics if m < 0.
// Complexity: O(1).
func WithEdgeTarget(m int) BuilderOption {
	if m < 0 {
		panic("builder: WithEdgeTarget(m<0)")
	}
	return func(c *builderConfig) {
		c.edgeTarget = m
	}
}

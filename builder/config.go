// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// config.go — internal configuration and defaults.
//
// Design:
//   • builderConfig is the single source of truth for all generation knobs.
//   • Defaults are documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng         = nil      (Generate seeds from the clock)
//   • weightFn    = UniformWeightFn
//   • low/high    = 1 / 10
//   • maxRetries  = DefaultMaxWeightRetries
//   • edgeTarget  = -1       (derive from density)

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by the generation phases.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// RNG for every stochastic choice; nil means "seed from the clock".
	rng *rand.Rand
	// Candidate weight sampler.
	weightFn WeightFn
	// Weight range [low, high]; validated by Generate, not by the option.
	low, high float64
	// Draw bound per edge in the uniqueness loop.
	maxRetries int
	// Exact edge count; negative means derive from density.
	edgeTarget int
}

// noEdgeTarget marks an edge count derived from density.
const noEdgeTarget = -1

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		weightFn:   UniformWeightFn,
		low:        DefaultWeightLow,
		high:       DefaultWeightHigh,
		maxRetries: DefaultMaxWeightRetries,
		edgeTarget: noEdgeTarget,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ensureRand returns cfg with an RNG, seeding a private source from the
// clock when none was configured.
func (cfg builderConfig) ensureRand() builderConfig {
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

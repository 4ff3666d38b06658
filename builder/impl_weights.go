// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// impl_weights.go — globally unique edge weights.
//
// Model:
//   - For each edge in order: draw cfg.weightFn(rng, low, high); redraw while
//     the value was already issued; record it once accepted.
//   - The redraw loop is bounded by cfg.maxRetries draws per edge.
//
// Contract:
//   - Every weight lies in [low, high]; a sampler leaving the range yields
//     ErrInvalidConfiguration.
//   - Weights are pairwise distinct; failure to find a fresh one within the
//     bound yields ErrWeightSpaceExhausted.
//
// Complexity:
//   - Time:  O(|E|) expected draws for continuous samplers.
//   - Space: O(|E|) for the issued-weight set.

package builder

import (
	"fmt"
	"math"
)

// AssignWeights attaches a distinct weight to every edge, resolving options
// like Generate does (range, sampler, retry bound, RNG).
func AssignWeights(edges []Edge, opts ...BuilderOption) ([]WeightedEdge, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateRange(MethodAssignWeights, cfg.low, cfg.high); err != nil {
		return nil, err
	}

	return assignWeights(edges, cfg.ensureRand())
}

// assignWeights is the option-free core shared with Generate.
// cfg must carry a validated range and a non-nil rng.
func assignWeights(edges []Edge, cfg builderConfig) ([]WeightedEdge, error) {
	used := make(map[float64]struct{}, len(edges))
	out := make([]WeightedEdge, 0, len(edges))

	for i, e := range edges {
		w, err := drawFresh(cfg, used)
		if err != nil {
			return nil, fmt.Errorf("%s: edge #%d (%d,%d): %w", MethodAssignWeights, i, e.U, e.V, err)
		}
		used[w] = struct{}{}
		out = append(out, WeightedEdge{Edge: e, Weight: w})
	}

	return out, nil
}

// drawFresh returns a weight in [cfg.low, cfg.high] absent from used.
func drawFresh(cfg builderConfig, used map[float64]struct{}) (float64, error) {
	for attempt := 0; attempt < cfg.maxRetries; attempt++ {
		w := cfg.weightFn(cfg.rng, cfg.low, cfg.high)
		if math.IsNaN(w) || w < cfg.low || w > cfg.high {
			return 0, fmt.Errorf("sampler returned %g outside [%g,%g]: %w",
				w, cfg.low, cfg.high, ErrInvalidConfiguration)
		}
		if _, dup := used[w]; !dup {
			return w, nil
		}
	}

	return 0, fmt.Errorf("no unused weight in [%g,%g] after %d draws: %w",
		cfg.low, cfg.high, cfg.maxRetries, ErrWeightSpaceExhausted)
}

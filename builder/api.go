// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// api.go — public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Generate(size, density, opts...). Resolves the config,
//     validates, then runs SpanningTree → FillDensity → AssignWeights.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options and seed ⇒ identical graph.
//   - All-or-nothing: any phase error returns (nil, err); no partial graph.

package builder

import (
	"fmt"
)

// Generate builds a random connected graph on size vertices with
// EdgeTarget(size, density) edges (or the WithEdgeTarget count) and pairwise
// distinct weights.
//
// Errors:
//   - ErrInvalidConfiguration: size < 1, density ∉ [0,1], bad weight range.
//   - ErrInvalidDensity:       edge target above size·(size-1)/2 or below size-1.
//   - ErrWeightSpaceExhausted: weight redraw bound exceeded.
//
// Complexity: O(size + m) expected time and space for m edges.
func Generate(size int, density float64, opts ...BuilderOption) (*Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate everything before touching the RNG.
	if err := validateSize(MethodGenerate, size); err != nil {
		return nil, err
	}
	if err := validateDensity(MethodGenerate, density); err != nil {
		return nil, err
	}
	if err := validateRange(MethodGenerate, cfg.low, cfg.high); err != nil {
		return nil, err
	}

	desired := EdgeTarget(size, density)
	if cfg.edgeTarget != noEdgeTarget {
		desired = cfg.edgeTarget
	}
	if maxM := MaxEdges(size); desired > maxM {
		return nil, builderErrorf(MethodGenerate, ErrInvalidDensity,
			"requested %d edges, size=%d allows %d", desired, size, maxM)
	}

	cfg = cfg.ensureRand()

	// 2) Connectivity backbone.
	tree, err := SpanningTree(size, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	// 3) Density fill.
	edges, err := FillDensity(size, tree, desired, cfg.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	// 4) Unique weights.
	weighted, err := assignWeights(edges, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return &Graph{
		Size:             size,
		Edges:            weighted,
		TreeEdges:        len(tree),
		RequestedDensity: density,
	}, nil
}

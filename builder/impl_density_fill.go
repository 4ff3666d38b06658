// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// impl_density_fill.go — top up a spanning tree to the requested edge count.
//
// Model:
//   - Vertex pairs {u<v} are enumerated lazily by co-lexicographic rank
//     (pairIndex / pairAt) and held in a pool.Index, so the complete pair
//     set is never materialized.
//   - Draw-and-remove ranks until the target is met. A drawn tree pair is
//     discarded: it leaves the pool without being counted. The accepted
//     pairs are therefore a uniform sample without replacement from the
//     non-tree pairs.
//
// Contract:
//   - size-1 ≤ desired ≤ size·(size-1)/2 (else ErrInvalidDensity).
//   - tree holds size-1 canonical in-range edges (else ErrInvalidConfiguration).
//   - Output: tree edges (in input order) followed by desired-(size-1)
//     filler edges; all distinct, none a self-loop.
//   - Pool exhaustion before the target is reported as ErrInvalidDensity.
//
// Complexity:
//   - Time:  O(desired) expected for sparse targets; at most O(size²) draws.
//   - Space: O(draws).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mstgen/pool"
)

// FillDensity extends tree with distinct random edges until it holds desired edges.
func FillDensity(size int, tree []Edge, desired int, rng *rand.Rand) ([]Edge, error) {
	if err := validateSize(MethodFillDensity, size); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodFillDensity, ErrNeedRandSource)
	}

	maxM, floor := MaxEdges(size), size-1
	if desired > maxM {
		return nil, builderErrorf(MethodFillDensity, ErrInvalidDensity,
			"desired=%d exceeds %d distinct pairs for size=%d", desired, maxM, size)
	}
	if desired < floor {
		return nil, builderErrorf(MethodFillDensity, ErrInvalidDensity,
			"desired=%d below connectivity floor %d", desired, floor)
	}
	if len(tree) != floor {
		return nil, builderErrorf(MethodFillDensity, ErrInvalidConfiguration,
			"tree has %d edges, want %d", len(tree), floor)
	}

	inTree := make(map[Edge]struct{}, len(tree))
	for _, e := range tree {
		if e.U < 0 || e.U >= e.V || e.V >= size {
			return nil, builderErrorf(MethodFillDensity, ErrInvalidConfiguration,
				"tree edge (%d,%d) not canonical in [0,%d)", e.U, e.V, size)
		}
		if _, dup := inTree[e]; dup {
			return nil, builderErrorf(MethodFillDensity, ErrInvalidConfiguration,
				"tree edge (%d,%d) repeated", e.U, e.V)
		}
		inTree[e] = struct{}{}
	}

	edges := make([]Edge, len(tree), desired)
	copy(edges, tree)
	if desired == floor {
		return edges, nil
	}

	pairs := pool.NewIndex(maxM)
	for len(edges) < desired {
		k, err := pairs.PickRemove(rng)
		if err != nil {
			return nil, builderErrorf(MethodFillDensity, ErrInvalidDensity,
				"pair pool exhausted at %d of %d edges", len(edges), desired)
		}
		e := pairAt(k)
		if _, ok := inTree[e]; ok {
			continue
		}
		edges = append(edges, e)
	}

	return edges, nil
}

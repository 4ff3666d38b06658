// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// impl_spanning_tree.go — random spanning tree (connectivity backbone).
//
// Model:
//   - visited:    vertices already in the tree (pool.Slice, pick without removal).
//   - notVisited: vertices still outside (pool.Slice, pick-and-remove).
//   - Seed visited with one vertex drawn from notVisited.
//   - While notVisited is non-empty: draw u from visited, draw-and-remove v
//     from notVisited, add v to visited, emit {u,v}.
//
// Attaching to a uniformly drawn visited vertex (not the last one visited)
// gives trees with varied branching rather than random paths.
//
// Contract:
//   - size ≥ 1 (else ErrInvalidConfiguration); rng != nil (else ErrNeedRandSource).
//   - Exactly size-1 canonical edges; size = 1 yields none.
//   - v has never been drawn before, so no edge can repeat.
//
// Complexity:
//   - Time:  O(size).
//   - Space: O(size).

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mstgen/pool"
)

// SpanningTree returns size-1 edges forming a random tree over 0..size-1.
func SpanningTree(size int, rng *rand.Rand) ([]Edge, error) {
	if err := validateSize(MethodSpanningTree, size); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", MethodSpanningTree, ErrNeedRandSource)
	}

	notVisited := pool.Range(size)
	first, err := notVisited.PickRemove(rng)
	if err != nil {
		return nil, fmt.Errorf("%s: seed vertex: %w", MethodSpanningTree, err)
	}
	visited := pool.NewSlice(first)

	tree := make([]Edge, 0, size-1)
	for notVisited.Len() > 0 {
		u, err := visited.Pick(rng)
		if err != nil {
			return nil, fmt.Errorf("%s: attach point: %w", MethodSpanningTree, err)
		}
		v, err := notVisited.PickRemove(rng)
		if err != nil {
			return nil, fmt.Errorf("%s: next vertex: %w", MethodSpanningTree, err)
		}
		visited.Add(v)
		tree = append(tree, NewEdge(u, v))
	}

	return tree, nil
}

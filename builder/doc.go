// Package builder synthesizes random connected weighted graphs with a
// prescribed vertex count and edge density, for use as benchmark inputs to
// minimum-spanning-tree implementations.
//
// Generation runs in three phases, each exported on its own:
//
//   - SpanningTree: a random tree over all vertices. Every new vertex is
//     attached to a vertex drawn uniformly from the already-connected set,
//     so trees branch instead of degenerating into random paths.
//   - FillDensity:  extra distinct pairs sampled without replacement from
//     the vertex pairs not used by the tree, up to the requested edge count.
//   - AssignWeights: one weight per edge drawn from [low, high] and
//     redrawn on collision, so that all weights of a graph are distinct.
//
// Generate chains the three phases and returns a *Graph, or an error and no
// graph at all.
//
// Edge count:
//
//	m = max(size-1, round(density · size·(size-1)/2))
//
// Options:
//
//   - WithSeed / WithRand:   reproducible generation. Without either, each
//     call seeds its own source from the clock.
//   - WithWeightRange:       [low, high], default [1, 10].
//   - WithWeightFn / WithIntegerWeights: candidate sampler.
//   - WithMaxWeightRetries:  bound of the collision redraw loop.
//   - WithEdgeTarget:        exact edge count instead of density.
//
// Errors:
//
//	ErrInvalidConfiguration — size < 1, density ∉ [0,1], low ≥ high.
//	ErrInvalidDensity       — requested edges outside [size-1, size·(size-1)/2].
//	ErrWeightSpaceExhausted — no fresh weight within the retry bound.
//
// Concurrency:
//
//	Generate keeps no package state; independent calls may run in parallel
//	as long as they do not share a *rand.Rand.
package builder

// Package builder_test contains functional tests for Generate and its
// phases: connectivity, edge counts, uniqueness, ranges and determinism.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstgen/builder"
)

// reachable counts vertices reachable from 0 by breadth-first search.
func reachable(size int, edges []builder.Edge) int {
	if size == 0 {
		return 0
	}
	adj := make([][]int, size)
	for _, e := range edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	seen := make([]bool, size)
	seen[0] = true
	queue := []int{0}
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				count++
				queue = append(queue, v)
			}
		}
	}
	return count
}

// plain strips weights.
func plain(g *builder.Graph) []builder.Edge {
	out := make([]builder.Edge, len(g.Edges))
	for i, we := range g.Edges {
		out[i] = we.Edge
	}
	return out
}

// requireValid asserts every structural invariant of a generated graph.
func requireValid(t *testing.T, g *builder.Graph, density, low, high float64) {
	t.Helper()

	require.Equal(t, builder.EdgeTarget(g.Size, density), g.EdgeCount(), "edge count")
	require.Equal(t, g.Size-1, g.TreeEdges)
	require.Equal(t, g.Size, reachable(g.Size, plain(g)), "connectivity")

	pairs := make(map[builder.Edge]bool, len(g.Edges))
	weights := make(map[float64]bool, len(g.Edges))
	for _, we := range g.Edges {
		require.Less(t, we.U, we.V, "canonical, no self-loop")
		require.GreaterOrEqual(t, we.U, 0)
		require.Less(t, we.V, g.Size)
		require.False(t, pairs[we.Edge], "duplicate edge %v", we.Edge)
		pairs[we.Edge] = true

		require.GreaterOrEqual(t, we.Weight, low)
		require.LessOrEqual(t, we.Weight, high)
		require.False(t, weights[we.Weight], "duplicate weight %g", we.Weight)
		weights[we.Weight] = true
	}
}

// TestGenerate_Properties sweeps a small grid and checks every invariant.
func TestGenerate_Properties(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 2, 3, 5, 10, 40, 101} {
		for _, density := range []float64{0, 0.01, 0.1, 0.25, 0.5, 0.9, 1} {
			g, err := builder.Generate(size, density, builder.WithSeed(int64(size*1000)+int64(density*100)))
			require.NoError(t, err, "size=%d density=%g", size, density)
			requireValid(t, g, density, builder.DefaultWeightLow, builder.DefaultWeightHigh)
			assert.Equal(t, density, g.RequestedDensity)
		}
	}
}

// TestGenerate_Scenarios covers the concrete reference cases.
func TestGenerate_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		density float64
		wantM   int
	}{
		{"single vertex", 1, 0, 0},
		{"connectivity floor dominates", 2, 0, 1},
		{"complete graph", 10, 1.0, 45},
		{"half density", 5, 0.5, 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.Generate(tc.size, tc.density, builder.WithSeed(11))
			require.NoError(t, err)
			assert.Equal(t, tc.wantM, g.EdgeCount())
			requireValid(t, g, tc.density, 1, 10)
		})
	}

	// the only edge of a 2-vertex graph is (0,1)
	g, err := builder.Generate(2, 0, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, builder.Edge{U: 0, V: 1}, g.Edges[0].Edge)

	// K_10 holds all 45 pairs exactly once
	g, err = builder.Generate(10, 1, builder.WithSeed(5))
	require.NoError(t, err)
	pairs := map[builder.Edge]int{}
	for _, we := range g.Edges {
		pairs[we.Edge]++
	}
	for v := 1; v < 10; v++ {
		for u := 0; u < v; u++ {
			assert.Equal(t, 1, pairs[builder.Edge{U: u, V: v}])
		}
	}
}

// TestGenerate_TriangleDifferentSeeds verifies that K_3 is forced while the
// weights still depend on the seed.
func TestGenerate_TriangleDifferentSeeds(t *testing.T) {
	t.Parallel()

	a, err := builder.Generate(3, 1, builder.WithSeed(1))
	require.NoError(t, err)
	b, err := builder.Generate(3, 1, builder.WithSeed(2))
	require.NoError(t, err)

	assert.ElementsMatch(t, plain(a), plain(b))

	wa := map[builder.Edge]float64{}
	for _, we := range a.Edges {
		wa[we.Edge] = we.Weight
	}
	differs := false
	for _, we := range b.Edges {
		if wa[we.Edge] != we.Weight {
			differs = true
		}
	}
	assert.True(t, differs, "weights should depend on the seed")
	requireValid(t, a, 1, 1, 10)
	requireValid(t, b, 1, 1, 10)
}

// TestGenerate_Deterministic verifies identical seeds give identical graphs.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Generate(60, 0.2, builder.WithSeed(2024))
	require.NoError(t, err)
	b, err := builder.Generate(60, 0.2, builder.WithSeed(2024))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.Generate(60, 0.2, builder.WithRand(rand.New(rand.NewSource(2024))))
	require.NoError(t, err)
	assert.Equal(t, a, c, "WithRand and WithSeed must agree for equal seeds")
}

// TestGenerate_Unseeded verifies the clock-seeded default still honors invariants.
func TestGenerate_Unseeded(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(30, 0.3)
	require.NoError(t, err)
	requireValid(t, g, 0.3, 1, 10)
}

// TestGenerate_CustomRange verifies weights follow WithWeightRange.
func TestGenerate_CustomRange(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(25, 0.4, builder.WithSeed(9), builder.WithWeightRange(-1, 1))
	require.NoError(t, err)
	requireValid(t, g, 0.4, -1, 1)

	g, err = builder.Generate(10, 0.5, builder.WithSeed(9),
		builder.WithWeightRange(1, 1000), builder.WithIntegerWeights())
	require.NoError(t, err)
	requireValid(t, g, 0.5, 1, 1000)
	for _, we := range g.Edges {
		assert.Equal(t, math.Trunc(we.Weight), we.Weight)
	}
}

// TestGenerate_Errors verifies each error class and that no graph is returned.
func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		density float64
		opts    []builder.BuilderOption
		want    error
	}{
		{"zero size", 0, 0.5, nil, builder.ErrInvalidConfiguration},
		{"negative size", -4, 0.5, nil, builder.ErrInvalidConfiguration},
		{"density below 0", 5, -0.1, nil, builder.ErrInvalidConfiguration},
		{"density above 1", 5, 1.5, nil, builder.ErrInvalidConfiguration},
		{"density NaN", 5, math.NaN(), nil, builder.ErrInvalidConfiguration},
		{"empty range", 5, 0.5, []builder.BuilderOption{builder.WithWeightRange(2, 2)}, builder.ErrInvalidConfiguration},
		{"inverted range", 5, 0.5, []builder.BuilderOption{builder.WithWeightRange(10, 1)}, builder.ErrInvalidConfiguration},
		{"infinite range", 5, 0.5, []builder.BuilderOption{builder.WithWeightRange(1, math.Inf(1))}, builder.ErrInvalidConfiguration},
		{"too many edges", 4, 0.5, []builder.BuilderOption{builder.WithEdgeTarget(7)}, builder.ErrInvalidDensity},
		{"below floor", 4, 0.5, []builder.BuilderOption{builder.WithEdgeTarget(2)}, builder.ErrInvalidDensity},
		{"integer weights exhausted", 10, 1, []builder.BuilderOption{builder.WithIntegerWeights()}, builder.ErrWeightSpaceExhausted},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]builder.BuilderOption{builder.WithSeed(1)}, tc.opts...)
			g, err := builder.Generate(tc.size, tc.density, opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
			assert.Contains(t, err.Error(), builder.MethodGenerate)
		})
	}
}

// TestGenerate_EdgeTarget verifies an exact edge count overrides density.
func TestGenerate_EdgeTarget(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(8, 0, builder.WithSeed(3), builder.WithEdgeTarget(20))
	require.NoError(t, err)
	assert.Equal(t, 20, g.EdgeCount())
	assert.Equal(t, 8, reachable(8, plain(g)))
}

// TestEdgeTarget covers the rounding rule and the connectivity floor.
func TestEdgeTarget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, builder.EdgeTarget(1, 0))
	assert.Equal(t, 0, builder.EdgeTarget(1, 1))
	assert.Equal(t, 1, builder.EdgeTarget(2, 0))
	assert.Equal(t, 5, builder.EdgeTarget(5, 0.5))
	assert.Equal(t, 45, builder.EdgeTarget(10, 1))
	assert.Equal(t, 9, builder.EdgeTarget(10, 0.1), "4.5 floors to size-1")
	assert.Equal(t, 12, builder.EdgeTarget(10, 0.27), "12.15 rounds down")
	assert.Equal(t, 13, builder.EdgeTarget(10, 0.29), "13.05 rounds down")
	assert.Equal(t, 8, builder.EdgeTarget(6, 0.5), "7.5 rounds half up")
	assert.Equal(t, 0, builder.EdgeTarget(0, 1))
}

// TestGraph_Density verifies achieved density reporting.
func TestGraph_Density(t *testing.T) {
	t.Parallel()

	g, err := builder.Generate(10, 1, builder.WithSeed(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, g.Density(), 1e-12)

	g, err = builder.Generate(1, 0, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, g.Density())
	assert.Empty(t, g.Edges)
}

// TestSpanningTree verifies tree shape and the direct-call contract.
func TestSpanningTree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(17))
	for _, size := range []int{1, 2, 7, 200} {
		tree, err := builder.SpanningTree(size, rng)
		require.NoError(t, err)
		require.Len(t, tree, size-1)
		require.Equal(t, size, reachable(size, tree))
	}

	_, err := builder.SpanningTree(0, rng)
	assert.ErrorIs(t, err, builder.ErrInvalidConfiguration)
	_, err = builder.SpanningTree(3, nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestSpanningTree_NotOnlyPaths verifies the attach rule produces branching:
// over many large trees at least one vertex must have degree ≥ 3, which a
// random path never has.
func TestSpanningTree_NotOnlyPaths(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	branched := false
	for i := 0; i < 10 && !branched; i++ {
		tree, err := builder.SpanningTree(50, rng)
		require.NoError(t, err)
		deg := make([]int, 50)
		for _, e := range tree {
			deg[e.U]++
			deg[e.V]++
		}
		for _, d := range deg {
			if d >= 3 {
				branched = true
			}
		}
	}
	assert.True(t, branched)
}

// TestFillDensity_Errors covers the direct-call contract of FillDensity.
func TestFillDensity_Errors(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	tree, err := builder.SpanningTree(4, rng)
	require.NoError(t, err)

	_, err = builder.FillDensity(4, tree, 7, rng)
	assert.ErrorIs(t, err, builder.ErrInvalidDensity)
	_, err = builder.FillDensity(4, tree, 2, rng)
	assert.ErrorIs(t, err, builder.ErrInvalidDensity)
	_, err = builder.FillDensity(4, tree[:2], 4, rng)
	assert.ErrorIs(t, err, builder.ErrInvalidConfiguration)
	_, err = builder.FillDensity(4, []builder.Edge{{U: 0, V: 1}, {U: 2, V: 1}, {U: 2, V: 3}}, 4, rng)
	assert.ErrorIs(t, err, builder.ErrInvalidConfiguration)
	_, err = builder.FillDensity(4, []builder.Edge{{U: 0, V: 1}, {U: 0, V: 1}, {U: 2, V: 3}}, 4, rng)
	assert.ErrorIs(t, err, builder.ErrInvalidConfiguration, "repeated tree edge")
	_, err = builder.FillDensity(4, tree, 4, nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	full, err := builder.FillDensity(4, tree, 6, rng)
	require.NoError(t, err)
	assert.Len(t, full, 6)
	assert.Equal(t, tree, full[:3], "tree edges first")
}

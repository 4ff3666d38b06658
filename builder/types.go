// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// types.go — graph data model produced by the builder.

package builder

import "math"

// Edge is an unordered pair of distinct vertices stored canonically (U < V).
type Edge struct {
	U int
	V int
}

// NewEdge returns the canonical form of the pair {a, b}.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// WeightedEdge attaches a weight to an Edge.
type WeightedEdge struct {
	Edge
	Weight float64
}

// Graph is a generated benchmark graph.
//
// Edges are kept in production order: the TreeEdges spanning-tree edges
// first, then the filler edges. A Graph is never mutated after Generate
// returns it.
type Graph struct {
	// Size is the vertex count; vertices are 0..Size-1.
	Size int
	// Edges holds every edge with its weight.
	Edges []WeightedEdge
	// TreeEdges is the length of the spanning-tree prefix of Edges.
	TreeEdges int
	// RequestedDensity is the density the graph was generated for.
	RequestedDensity float64
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Density returns the achieved density |E| / (n·(n-1)/2).
// A single-vertex graph has density 0.
func (g *Graph) Density() float64 {
	maxM := MaxEdges(g.Size)
	if maxM == 0 {
		return 0
	}

	return float64(len(g.Edges)) / float64(maxM)
}

// MaxEdges returns the edge count of the complete simple graph on size vertices.
func MaxEdges(size int) int {
	if size < 2 {
		return 0
	}

	return size * (size - 1) / 2
}

// EdgeTarget returns max(size-1, round(density·MaxEdges(size))).
// Rounding is half away from zero (math.Round).
func EdgeTarget(size int, density float64) int {
	if size < MinVertices {
		return 0
	}
	m := int(math.Round(density * float64(MaxEdges(size))))
	if floor := size - 1; m < floor {
		return floor
	}

	return m
}

// pairIndex maps a canonical edge to its co-lexicographic rank:
// (0,1)→0, (0,2)→1, (1,2)→2, (0,3)→3, ...
// The rank does not depend on the vertex count.
func pairIndex(e Edge) int {
	return e.V*(e.V-1)/2 + e.U
}

// pairAt is the inverse of pairIndex.
func pairAt(k int) Edge {
	v := int((1 + math.Sqrt(1+8*float64(k))) / 2)
	// correct float rounding at triangular boundaries
	for v*(v-1)/2 > k {
		v--
	}
	for (v+1)*v/2 <= k {
		v++
	}

	return Edge{U: k - v*(v-1)/2, V: v}
}

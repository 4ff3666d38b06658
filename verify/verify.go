// Package verify checks generated graphs against the contract of the
// external benchmark's "info" sub-command: the graph must be connected and
// its edge weights pairwise distinct. It reports the same JSON keys
// (connected, unique_weights, vertices, edges) plus a few structural
// statistics useful when sanity-checking a sweep.
//
// The graph is loaded into a gonum simple.WeightedUndirectedGraph; self-loops
// and repeated pairs, which gonum's simple graphs cannot hold, are counted
// and skipped on the way in.
package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/mstgen/builder"
)

// Sentinel errors returned (joined) by Check.
var (
	ErrNilGraph         = errors.New("verify: graph is nil")
	ErrDisconnected     = errors.New("verify: graph is not connected")
	ErrDuplicateWeights = errors.New("verify: edge weights are not unique")
	ErrSelfLoop         = errors.New("verify: graph has self-loops")
	ErrDuplicateEdge    = errors.New("verify: graph has parallel edges")
)

// Info is the inspection report of a graph.
type Info struct {
	Connected      bool    `json:"connected"`
	UniqueWeights  bool    `json:"unique_weights"`
	Vertices       int     `json:"vertices"`
	Edges          int     `json:"edges"`
	Density        float64 `json:"density"`
	SelfLoops      int     `json:"self_loops"`
	DuplicateEdges int     `json:"duplicate_edges"`
	MinDegree      int     `json:"min_degree"`
	MaxDegree      int     `json:"max_degree"`
	MeanDegree     float64 `json:"mean_degree"`
}

// Valid reports whether the graph satisfies every benchmark precondition.
func (i Info) Valid() bool {
	return i.Connected && i.UniqueWeights && i.SelfLoops == 0 && i.DuplicateEdges == 0
}

// Inspect builds the report for g. A graph without vertices is reported as
// connected (vacuously) with zero statistics.
func Inspect(g *builder.Graph) Info {
	info := Info{
		Vertices:      g.Size,
		Edges:         len(g.Edges),
		Density:       g.Density(),
		UniqueWeights: true,
	}

	ug := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.Size; v++ {
		ug.AddNode(simple.Node(v))
	}

	weights := make(map[float64]struct{}, len(g.Edges))
	for _, e := range g.Edges {
		if _, dup := weights[e.Weight]; dup {
			info.UniqueWeights = false
		}
		weights[e.Weight] = struct{}{}

		if e.U == e.V {
			info.SelfLoops++
			continue
		}
		if ug.HasEdgeBetween(int64(e.U), int64(e.V)) {
			info.DuplicateEdges++
			continue
		}
		ug.SetWeightedEdge(ug.NewWeightedEdge(simple.Node(e.U), simple.Node(e.V), e.Weight))
	}

	if g.Size == 0 {
		info.Connected = true
		return info
	}

	info.Connected = reachable(ug, 0) == g.Size

	degrees := make([]float64, g.Size)
	for v := 0; v < g.Size; v++ {
		degrees[v] = float64(ug.From(int64(v)).Len())
	}
	info.MinDegree = int(floats.Min(degrees))
	info.MaxDegree = int(floats.Max(degrees))
	info.MeanDegree = stat.Mean(degrees, nil)

	return info
}

// Check inspects g and returns nil when it is a valid benchmark input, or
// the joined sentinel errors describing every violation.
func Check(g *builder.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	info := Inspect(g)
	var errs []error
	if !info.Connected {
		errs = append(errs, ErrDisconnected)
	}
	if !info.UniqueWeights {
		errs = append(errs, ErrDuplicateWeights)
	}
	if info.SelfLoops > 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrSelfLoop, info.SelfLoops))
	}
	if info.DuplicateEdges > 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrDuplicateEdge, info.DuplicateEdges))
	}

	return errors.Join(errs...)
}

// reachable counts the vertices a breadth-first walk from start reaches.
func reachable(g traverse.Graph, start int64) int {
	count := 0
	var bf traverse.BreadthFirst
	bf.Walk(g, simple.Node(start), func(graph.Node, int) bool {
		count++
		return false
	})

	return count
}

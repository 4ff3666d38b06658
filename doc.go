// Package mstgen synthesizes random connected weighted graphs for
// minimum-spanning-tree benchmarks.
//
// What is mstgen?
//
//	A small generator plus the tooling around it:
//		• builder: random spanning tree, density fill, unique weights
//		• pool:    O(1) uniform pick-and-remove pools
//		• graphio: edge-list writer/reader, diagnostics, file naming
//		• verify:  connectivity / unique-weight checks, degree statistics
//		• dot:     Graphviz DOT and SVG export
//		• sweep:   parallel (size × density) dataset generation + manifest
//		• config:  defaults → mstgen.toml → MSTGEN_* env → flags
//
// Every generated graph is connected, has exactly
// max(V-1, round(density·V(V-1)/2)) edges, no self-loops, no duplicate
// edges, and pairwise distinct weights, so its MST is unique.
//
// Output format (one graph per file):
//
//	<V> <E>
//	<u> <v> <w>     × E, 0 ≤ u < v < V
//
// Quick example:
//
//	g, err := builder.Generate(100, 0.1, builder.WithSeed(42))
//	if err != nil { ... }
//	err = graphio.WriteFile(graphio.FileName(100, 0.1), g)
//
// Command line:
//
//	go install github.com/katalvlaran/mstgen/cmd/mstgen@latest
//	mstgen generate --size 100 --density 0.1 > g.txt
//	mstgen sweep --sizes 10,100,1000 --densities 0.01,0.1,1 --dir graphs/random
package mstgen

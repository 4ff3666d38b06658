// Package graphio reads and writes generated graphs in the plain-text
// edge-list format consumed by external MST benchmark tooling:
//
//	<size> <edge_count>
//	<u1> <v1> <w1>
//	<u2> <v2> <w2>
//	...
//
// Vertex indices are 0-based. Weights are written as the shortest decimal
// that parses back to the same float64, so weights that are distinct in
// memory stay distinct in the file.
//
// Besides the edge list the package provides:
//
//   - Diagnostics / WriteDiagnostics: requested vs achieved density, meant
//     for a channel separate from the edge list (stderr).
//   - WriteFile: atomic write via a temp file and rename; a failed write
//     leaves no file behind.
//   - FileName / ParseFileName: the random_<size>_<density>.txt naming
//     contract that downstream analysis scripts parse.
package graphio

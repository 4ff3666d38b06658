// Package pool provides removable pools: containers that hand out a uniformly
// random element in O(1) and, on request, forget it in O(1).
//
// Two flavours are offered:
//
//	Slice[T] — an explicit slice with swap-removal. Use it when the elements
//	           are materialized anyway (e.g. the n vertices of a graph).
//	Index    — a lazily enumerated range [0,n) backed by a sparse
//	           Fisher–Yates shuffle. Memory grows with the number of picks,
//	           not with n, so it can stand in for the n·(n−1)/2 vertex pairs
//	           of a graph without materializing them.
//
// Determinism:
//
//	Given the same *rand.Rand stream and the same call sequence, every pool
//	returns the same elements in the same order. No map iteration is involved
//	in any pick.
//
// Concurrency:
//
//	Pools are NOT safe for concurrent use. Each graph generation owns its
//	pools exclusively.
package pool

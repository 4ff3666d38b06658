// SPDX-License-Identifier: MIT
// Package: mstgen/pool
//
// index.go — lazily enumerated index pool (sparse Fisher–Yates).
//
// The pool conceptually holds the array a = [0, 1, ..., n-1]. A pick draws a
// position i in [0, remaining), returns a[i] and moves a[remaining-1] into
// position i. Only positions whose content differs from their own index are
// stored, so memory is O(picks) instead of O(n).

package pool

import "math/rand"

// Index is a removable pool over the integers [0, n).
type Index struct {
	remaining int
	displaced map[int]int // position -> value, only where value != position
}

// NewIndex returns a pool holding 0..n-1. A non-positive n yields an empty pool.
// Complexity: O(1).
func NewIndex(n int) *Index {
	if n < 0 {
		n = 0
	}

	return &Index{remaining: n, displaced: make(map[int]int)}
}

// Len reports how many indices have not been picked yet.
func (p *Index) Len() int { return p.remaining }

// PickRemove returns a uniformly random index that has not been returned
// before and removes it from the pool.
// Complexity: O(1) expected.
func (p *Index) PickRemove(rng *rand.Rand) (int, error) {
	if p.remaining == 0 {
		return 0, ErrEmpty
	}

	i := rng.Intn(p.remaining)
	last := p.remaining - 1
	x := p.at(i)

	if i != last {
		p.displaced[i] = p.at(last)
	} else {
		delete(p.displaced, i)
	}
	delete(p.displaced, last)
	p.remaining = last

	return x, nil
}

// at returns the value currently stored at position i.
func (p *Index) at(i int) int {
	if v, ok := p.displaced[i]; ok {
		return v
	}

	return i
}

// SPDX-License-Identifier: MIT
// Package: mstgen/pool
//
// slice.go — explicit removable pool with swap-removal.

package pool

import (
	"errors"
	"math/rand"
)

// ErrEmpty is returned when a pick is requested from a pool with no elements.
var ErrEmpty = errors.New("pool: empty")

// Slice is a removable pool over explicit elements.
// The order of the remaining elements is an implementation detail.
type Slice[T any] struct {
	items []T
}

// NewSlice returns a pool holding a copy of items.
// Complexity: O(len(items)).
func NewSlice[T any](items ...T) *Slice[T] {
	cp := make([]T, len(items))
	copy(cp, items)

	return &Slice[T]{items: cp}
}

// Range returns a pool holding the integers 0..n-1.
// A non-positive n yields an empty pool.
// Complexity: O(n).
func Range(n int) *Slice[int] {
	if n < 0 {
		n = 0
	}
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	return &Slice[int]{items: items}
}

// Len reports the number of elements still in the pool.
func (p *Slice[T]) Len() int { return len(p.items) }

// Add appends x to the pool. Complexity: amortized O(1).
func (p *Slice[T]) Add(x T) {
	p.items = append(p.items, x)
}

// Pick returns a uniformly random element without removing it.
// Complexity: O(1).
func (p *Slice[T]) Pick(rng *rand.Rand) (T, error) {
	var zero T
	if len(p.items) == 0 {
		return zero, ErrEmpty
	}

	return p.items[rng.Intn(len(p.items))], nil
}

// PickRemove returns a uniformly random element and removes it from the pool.
// The last element is moved into the vacated slot.
// Complexity: O(1).
func (p *Slice[T]) PickRemove(rng *rand.Rand) (T, error) {
	var zero T
	n := len(p.items)
	if n == 0 {
		return zero, ErrEmpty
	}

	i := rng.Intn(n)
	x := p.items[i]
	p.items[i] = p.items[n-1]
	p.items[n-1] = zero // drop reference for GC
	p.items = p.items[:n-1]

	return x, nil
}

// Items returns a copy of the remaining elements in their current order.
func (p *Slice[T]) Items() []T {
	cp := make([]T, len(p.items))
	copy(cp, p.items)

	return cp
}

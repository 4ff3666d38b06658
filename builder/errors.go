// SPDX-License-Identifier: MIT
// Package: mstgen/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Generation never panics at runtime; validation panics are confined to
//     option constructors (WithX...).
//   • Every error is fatal for the generation call: no partial graph is returned.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates a parameter outside its domain:
// size < 1, density outside [0,1] (or NaN), or a weight range with low ≥ high.
// Usage: if errors.Is(err, ErrInvalidConfiguration) { /* fix parameters */ }.
var ErrInvalidConfiguration = errors.New("builder: invalid configuration")

// ErrInvalidDensity indicates the requested edge count cannot be realized:
// it exceeds size·(size-1)/2 distinct pairs, or is below the size-1 edges
// needed for connectivity.
// Usage: if errors.Is(err, ErrInvalidDensity) { /* lower the edge target */ }.
var ErrInvalidDensity = errors.New("builder: edge count not realizable")

// ErrWeightSpaceExhausted indicates the weight redraw loop hit its bound
// without finding an unused weight (e.g. integer weights over a narrow range).
// Usage: if errors.Is(err, ErrWeightSpaceExhausted) { /* widen the range */ }.
var ErrWeightSpaceExhausted = errors.New("builder: weight space exhausted")

// ErrNeedRandSource indicates a phase was invoked directly with a nil *rand.Rand.
// Generate never returns it: it seeds its own source when none is configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf returns "<method>: <formatted message>: <sentinel>" with the
// sentinel wrapped for errors.Is.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// Package builder provides validation helpers enforcing the parameter
// contracts of Generate and of the individual phases.
//
// Each function returns an error wrapping ErrInvalidConfiguration via
// builderErrorf when its precondition is violated.
package builder

import "math"

// validateSize ensures size ≥ MinVertices.
// Complexity: O(1).
func validateSize(method string, size int) error {
	if size < MinVertices {
		return builderErrorf(method, ErrInvalidConfiguration,
			"size must be ≥ %d, got %d", MinVertices, size)
	}

	return nil
}

// validateDensity enforces density ∈ [MinDensity, MaxDensity]; NaN is rejected.
// Complexity: O(1).
func validateDensity(method string, density float64) error {
	if math.IsNaN(density) || density < MinDensity || density > MaxDensity {
		return builderErrorf(method, ErrInvalidConfiguration,
			"density must be in [%.1f,%.1f], got %g", MinDensity, MaxDensity, density)
	}

	return nil
}

// validateRange enforces finite bounds with low < high.
// Complexity: O(1).
func validateRange(method string, low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) {
		return builderErrorf(method, ErrInvalidConfiguration,
			"weight range must be finite, got [%g,%g]", low, high)
	}
	if low >= high {
		return builderErrorf(method, ErrInvalidConfiguration,
			"weight range requires low < high, got [%g,%g]", low, high)
	}

	return nil
}

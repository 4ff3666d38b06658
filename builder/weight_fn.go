// Package builder provides the candidate weight samplers used by AssignWeights.
package builder

import (
	"math"
	"math/rand"
)

// WeightFn draws one candidate weight in [low, high] from rng.
// Uniqueness is not its concern: AssignWeights rejects repeated values.
// A sampler that cannot produce a value in range should return NaN;
// AssignWeights reports it as ErrInvalidConfiguration.
type WeightFn func(rng *rand.Rand, low, high float64) float64

// UniformWeightFn samples the continuous uniform distribution on [low, high).
// Float64 granularity makes repeated values practically impossible, so the
// uniqueness loop terminates after one draw on average.
// The sample is interpolated as low·(1-f) + high·f, which stays finite even
// when high-low overflows.
// Complexity: O(1).
func UniformWeightFn(rng *rand.Rand, low, high float64) float64 {
	f := rng.Float64()

	return clamp(low*(1-f)+high*f, low, high)
}

// IntegerWeightFn samples integers uniformly from [ceil(low), floor(high)].
// Returns NaN if the range holds no integer.
// Spans of 2^63 or more do not fit Int63n; they are drawn by interpolation
// and floored, where float64 spacing already exceeds 1.
// Complexity: O(1).
func IntegerWeightFn(rng *rand.Rand, low, high float64) float64 {
	lo, hi := math.Ceil(low), math.Floor(high)
	if hi < lo {
		return math.NaN()
	}

	if span := hi - lo; span < math.MaxInt64 {
		return clamp(lo+float64(rng.Int63n(int64(span)+1)), lo, hi)
	}
	f := rng.Float64()

	return clamp(math.Floor(lo*(1-f)+hi*f), lo, hi)
}

// clamp bounds w to [low, high].
func clamp(w, low, high float64) float64 {
	switch {
	case w < low:
		return low
	case w > high:
		return high
	default:
		return w
	}
}

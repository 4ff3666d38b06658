// Package builder defines shared constants used by the generation phases,
// ensuring consistent defaults and validation across them.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the phase name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerate is the canonical name for the Generate orchestrator.
	MethodGenerate = "Generate"
	// MethodSpanningTree is the canonical name for the spanning-tree phase.
	MethodSpanningTree = "SpanningTree"
	// MethodFillDensity is the canonical name for the density-fill phase.
	MethodFillDensity = "FillDensity"
	// MethodAssignWeights is the canonical name for the weight phase.
	MethodAssignWeights = "AssignWeights"
)

//-----------------------------------------------------------------------------
// Size and Density Bounds
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count Generate accepts.
// A single vertex yields an empty, trivially connected graph.
const MinVertices = 1

// MinDensity is the lower bound for density, inclusive.
const MinDensity = 0.0

// MaxDensity is the upper bound for density, inclusive.
const MaxDensity = 1.0

//-----------------------------------------------------------------------------
// Weight Defaults
//-----------------------------------------------------------------------------

// DefaultWeightLow is the default lower bound of the weight range.
const DefaultWeightLow = 1.0

// DefaultWeightHigh is the default upper bound of the weight range.
const DefaultWeightHigh = 10.0

// DefaultMaxWeightRetries bounds the number of draws spent on a single edge
// before AssignWeights gives up with ErrWeightSpaceExhausted.
const DefaultMaxWeightRetries = 1000

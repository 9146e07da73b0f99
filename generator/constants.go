// Package generator defines shared constants used by the sampling steps,
// ensuring consistent defaults and error prefixes across components.
package generator

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	methodChooseSizes    = "ChooseSizes"
	methodSampleTotals   = "SampleRowTotals"
	methodDistribute     = "DistributeExponents"
	methodRepair         = "Repair"
	methodCoefficients   = "GenerateCoefficients"
	methodGenerate       = "Generate"
	methodGenerateBatch  = "GenerateBatch"
	methodSweepSizes     = "SweepSizes"
	methodAssembleVerify = "Generate: verify"
)

//-----------------------------------------------------------------------------
// Size selection
//-----------------------------------------------------------------------------

// MinMonomials is the smallest monomial count m a generated instance may have.
const MinMonomials = 1

// MinVariables is the smallest variable count n a generated instance may have.
const MinVariables = 2

// Default scale windows: m = ⌊√δ·α⌋, n = ⌊√δ/β⌋ with α, β uniform in these ranges.
const (
	DefaultAlphaLo = 0.6
	DefaultAlphaHi = 1.5
	DefaultBetaLo  = 0.2
	DefaultBetaHi  = 0.8
)

//-----------------------------------------------------------------------------
// Dirichlet concentrations
//-----------------------------------------------------------------------------

// rowTotalConcentration is the symmetric Dirichlet parameter for row totals
// (1 = uniform over the simplex).
const rowTotalConcentration = 1.0

// exponentConcentration is the symmetric Dirichlet parameter for exponent
// vectors; 2 biases toward near-equal shares and away from one-hot vectors.
const exponentConcentration = 2.0

//-----------------------------------------------------------------------------
// Repair and coefficient bounds
//-----------------------------------------------------------------------------

// DefaultRepairAttempts is the randomized transfer budget per duplicate row
// before the exhaustive scan takes over.
const DefaultRepairAttempts = 100

// Default coefficient range [-10, 10].
const (
	DefaultCoeffLo = -10.0
	DefaultCoeffHi = 10.0
)

// maxCoefficientDraws bounds the "resample until nonzero" loop per slot.
const maxCoefficientDraws = 1000

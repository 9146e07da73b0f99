// SPDX-License-Identifier: MIT

// Package generator builds synthetic multivariate polynomials whose baseline
// metric Kbase(P) = Σᵢ max(0, Eᵢ − 1) equals a requested difficulty δ exactly.
//
// What:
//   - SizeChooser (ChooseSizes, SizesForSeed, IsFeasible, SweepSizes): monomial
//     count m and variable count n, both sub-linear in δ.
//   - RowTotalSampler (SampleRowTotals): E₁..Eₘ ≥ 1 with Σ Eᵢ = δ + m.
//   - ExponentDistributor (DistributeExponents): one total degree spread over n
//     variables with Dirichlet(2) shares.
//   - ConstraintEnforcer (Repair): unique rows and covered columns through
//     row-sum-preserving unit transfers, bounded effort, never fails.
//   - BaselineCalculator (Baseline, BaselineFromTotals, RowContributions).
//   - CoefficientGenerator (GenerateCoefficients, GenerateIntegerCoefficients).
//   - InstanceAssembler (Generate, GenerateBatch): the full pipeline with a
//     post-hoc baseline check.
//
// Why:
//   - Constraint-system benchmarks need inputs of a precise, tunable cost. The
//     baseline depends only on row totals, so fixing Σ Eᵢ = δ + m up front and
//     only ever moving degree within a row pins the baseline to δ by
//     construction.
//
// Determinism:
//   - Every call owns one *rand.Rand (WithSeed, WithRand, or a fresh default)
//     and consumes it in a fixed order: α, β → row totals → rows 1..m →
//     repair → coefficients. Same (δ, seed, options) ⇒ identical Instance,
//     including its content-derived ID.
//
// Errors:
//   - ErrInvalidArgument for bad δ or coefficient windows (ErrInfeasible wraps it);
//     ErrInvariantViolation for internal failures; never a panic on caller input.
//
// Quick start:
//
//	inst, err := generator.Generate(10, generator.WithSeed(42))
//	if err != nil { /* handle */ }
//	fmt.Println(inst.Expression(), inst.Baseline) // baseline == 10
package generator

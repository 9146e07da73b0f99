// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// options.go — functional options for Generate / GenerateBatch.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors PANIC on meaningless programmer inputs (nil RNG,
//     negative attempt budget, non-positive scale windows).
//   • Caller data that is validated as part of the public contract (the
//     coefficient range) is NOT checked here: Generate reports it as
//     ErrInvalidArgument instead.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generator

import (
	"math"
	"math/rand"
)

// Option customizes a generation call by mutating a genConfig before sampling.
type Option func(*genConfig)

// WithSeed creates a new deterministic stream for the call and records the seed
// on the resulting Instance.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		s := seed
		c.seed = &s
		c.rng = NewRand(seed)
	}
}

// WithRand provides an explicit stream. The caller owns its seed policy;
// the Instance reports no seed. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
		c.seed = nil
	}
}

// WithCoefficientRange sets the closed window coefficients are drawn from.
// Validity (lo ≤ hi, finite, can yield a nonzero value) is checked by Generate.
func WithCoefficientRange(lo, hi float64) Option {
	return func(c *genConfig) {
		c.coeffs = CoefficientRange{Lo: lo, Hi: hi}
	}
}

// WithIntegerCoefficients draws coefficients uniformly from the nonzero
// integers of [⌈lo⌉, ⌊hi⌋] instead of the continuous window.
func WithIntegerCoefficients() Option {
	return func(c *genConfig) {
		c.integer = true
	}
}

// WithRepairAttempts sets the randomized transfer budget per duplicate row.
// Zero skips straight to the exhaustive scan. Panics if n < 0.
func WithRepairAttempts(n int) Option {
	if n < 0 {
		panic("generator: WithRepairAttempts(n<0)")
	}
	return func(c *genConfig) {
		c.attempts = n
	}
}

// WithScaleRanges overrides the α and β windows used by size selection.
// Panics unless 0 < lo ≤ hi for both windows and all bounds are finite.
func WithScaleRanges(alphaLo, alphaHi, betaLo, betaHi float64) Option {
	for _, v := range []float64{alphaLo, alphaHi, betaLo, betaHi} {
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			panic("generator: WithScaleRanges(bound<=0 or non-finite)")
		}
	}
	if alphaLo > alphaHi || betaLo > betaHi {
		panic("generator: WithScaleRanges(lo>hi)")
	}
	return func(c *genConfig) {
		c.scales = ScaleRanges{AlphaLo: alphaLo, AlphaHi: alphaHi, BetaLo: betaLo, BetaHi: betaHi}
	}
}

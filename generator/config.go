// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generation knobs.
//   • Defaults are documented; no globals are mutated.
//   • newConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng         = nil → DefaultRand() at resolution time (unseeded call)
//   • coeffs      = [-10, 10], float
//   • attempts    = 100 randomized transfers per duplicate row
//   • scales      = α ∈ [0.6, 1.5], β ∈ [0.2, 0.8]

package generator

import "math/rand"

// ScaleRanges holds the uniform windows for the size scale factors α and β.
type ScaleRanges struct {
	AlphaLo, AlphaHi float64 // m = max(1, ⌊√δ·α⌋)
	BetaLo, BetaHi   float64 // n = max(2, ⌊√δ/β⌋), β > 0
}

// DefaultScaleRanges are the windows used unless WithScaleRanges overrides them.
var DefaultScaleRanges = ScaleRanges{
	AlphaLo: DefaultAlphaLo,
	AlphaHi: DefaultAlphaHi,
	BetaLo:  DefaultBetaLo,
	BetaHi:  DefaultBetaHi,
}

// genConfig aggregates all knobs used by Generate and GenerateBatch.
// It is passed by VALUE so one call never observes another's state.
type genConfig struct {
	rng      *rand.Rand       // randomness handle; nil until resolved
	seed     *int64           // set by WithSeed, reported on the Instance
	coeffs   CoefficientRange // coefficient window
	integer  bool             // draw integer coefficients
	attempts int              // randomized repair transfers per duplicate row
	scales   ScaleRanges      // α/β windows for size selection
}

// newConfig constructs a config with defaults and applies all options in
// order. The RNG is left nil when no option supplies one; resolveRand fills it.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		coeffs:   CoefficientRange{Lo: DefaultCoeffLo, Hi: DefaultCoeffHi},
		attempts: DefaultRepairAttempts,
		scales:   DefaultScaleRanges,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// resolveRand guarantees a usable stream: the configured one or a fresh default.
func (c *genConfig) resolveRand() *rand.Rand {
	if c.rng == nil {
		c.rng = DefaultRand()
	}

	return c.rng
}

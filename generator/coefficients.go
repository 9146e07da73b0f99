// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// coefficients.go — CoefficientGenerator: m nonzero values from a closed window.
//
// Contract:
//   - Range is valid iff both bounds are finite, Lo ≤ Hi, the span Hi−Lo is
//     finite and the window holds a nonzero value (so [0,0] is rejected,
//     [0,1] and [-3,-3] are fine).
//   - Integer mode additionally needs |Lo|, |Hi| < 2^62, so ⌈Lo⌉, ⌊Hi⌋ and the
//     integer count all fit in int64.
//   - Float mode: cᵢ = Lo + U·(Hi−Lo), resampled while zero, at most
//     maxCoefficientDraws draws per slot.
//   - Integer mode: cᵢ uniform over the nonzero integers of [⌈Lo⌉, ⌊Hi⌋].
//   - Slots are filled independently in index order from the call's stream.

package generator

import (
	"fmt"
	"math"
	"math/rand"
)

// maxIntegerBound bounds |Lo| and |Hi| in integer mode.
const maxIntegerBound = 1 << 62

// CoefficientRange is the closed window [Lo, Hi] coefficients are drawn from.
type CoefficientRange struct {
	Lo, Hi float64
}

// DefaultCoefficientRange is [-10, 10].
var DefaultCoefficientRange = CoefficientRange{Lo: DefaultCoeffLo, Hi: DefaultCoeffHi}

// Validate reports ErrInvalidArgument when the window cannot yield a nonzero value.
func (r CoefficientRange) Validate() error {
	if math.IsNaN(r.Lo) || math.IsNaN(r.Hi) || math.IsInf(r.Lo, 0) || math.IsInf(r.Hi, 0) {
		return fmt.Errorf("coefficient range [%g, %g] must be finite: %w", r.Lo, r.Hi, ErrInvalidArgument)
	}
	if r.Lo > r.Hi {
		return fmt.Errorf("coefficient range [%g, %g] has lo > hi: %w", r.Lo, r.Hi, ErrInvalidArgument)
	}
	if math.IsInf(r.Hi-r.Lo, 0) {
		return fmt.Errorf("coefficient range [%g, %g] has a non-finite span: %w", r.Lo, r.Hi, ErrInvalidArgument)
	}
	if r.Lo == 0 && r.Hi == 0 {
		return fmt.Errorf("coefficient range [%g, %g] must allow nonzero values: %w", r.Lo, r.Hi, ErrInvalidArgument)
	}

	return nil
}

// Contains reports whether v lies in [Lo, Hi].
func (r CoefficientRange) Contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// String renders the window as "[lo, hi]".
func (r CoefficientRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lo, r.Hi)
}

// validateInteger is Validate plus the integer-mode requirements: bounded
// magnitudes and at least one nonzero integer in [⌈Lo⌉, ⌊Hi⌋].
func (r CoefficientRange) validateInteger() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if math.Abs(r.Lo) >= maxIntegerBound || math.Abs(r.Hi) >= maxIntegerBound {
		return fmt.Errorf("integer coefficient range %s exceeds ±2^62: %w", r, ErrInvalidArgument)
	}
	if _, _, count := r.integerBounds(); count <= 0 {
		return fmt.Errorf("no nonzero integer in %s: %w", r, ErrInvalidArgument)
	}

	return nil
}

// integerBounds returns ⌈Lo⌉, ⌊Hi⌋ and the number of nonzero integers between
// them. Callers validate with validateInteger first.
func (r CoefficientRange) integerBounds() (lo, hi, count int64) {
	lo = int64(math.Ceil(r.Lo))
	hi = int64(math.Floor(r.Hi))
	if lo > hi {
		return lo, hi, 0
	}
	count = hi - lo + 1
	if lo <= 0 && hi >= 0 {
		count-- // zero is excluded
	}

	return lo, hi, count
}

// verifyCoefficients checks that cs holds m nonzero values inside r.
func verifyCoefficients(cs []float64, m int, r CoefficientRange) error {
	if len(cs) != m {
		return fmt.Errorf("%s: %d coefficients for %d monomials: %w",
			methodAssembleVerify, len(cs), m, ErrInvariantViolation)
	}
	for i, c := range cs {
		if c == 0 || !r.Contains(c) {
			return fmt.Errorf("%s: coefficient %d = %g outside %s or zero: %w",
				methodAssembleVerify, i, c, r, ErrInvariantViolation)
		}
	}

	return nil
}

// GenerateCoefficients draws m nonzero float coefficients from r.
func GenerateCoefficients(rng *rand.Rand, m int, r CoefficientRange) ([]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodCoefficients, ErrNeedRandSource)
	}
	if m < 0 {
		return nil, fmt.Errorf("%s: m=%d < 0: %w", methodCoefficients, m, ErrInvalidArgument)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoefficients, err)
	}

	out := make([]float64, m)
	for i := range out {
		c, err := drawNonZero(rng, r)
		if err != nil {
			return nil, fmt.Errorf("%s: slot %d: %w", methodCoefficients, i, err)
		}
		out[i] = c
	}

	return out, nil
}

// drawNonZero performs the bounded "resample until nonzero" loop for one slot.
func drawNonZero(rng *rand.Rand, r CoefficientRange) (float64, error) {
	if r.Lo == r.Hi {
		return r.Lo, nil // point window; Validate already excluded zero
	}
	var draw int
	for draw = 0; draw < maxCoefficientDraws; draw++ {
		c := min(uniform(rng, r.Lo, r.Hi), r.Hi) // rounding may overshoot Hi
		if c != 0 {
			return c, nil
		}
	}

	return 0, fmt.Errorf("no nonzero value after %d draws from %s: %w", maxCoefficientDraws, r, ErrInvalidArgument)
}

// GenerateIntegerCoefficients draws m coefficients uniformly from the nonzero
// integers of [⌈Lo⌉, ⌊Hi⌋]. Values are returned as float64 for a uniform
// Instance layout.
func GenerateIntegerCoefficients(rng *rand.Rand, m int, r CoefficientRange) ([]float64, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodCoefficients, ErrNeedRandSource)
	}
	if m < 0 {
		return nil, fmt.Errorf("%s: m=%d < 0: %w", methodCoefficients, m, ErrInvalidArgument)
	}
	if err := r.validateInteger(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCoefficients, err)
	}
	lo, _, count := r.integerBounds()

	out := make([]float64, m)
	for i := range out {
		v := lo + rng.Int63n(count)
		if lo <= 0 && v >= 0 {
			v++ // skip zero
		}
		out[i] = float64(v)
	}

	return out, nil
}

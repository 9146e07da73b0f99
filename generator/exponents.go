// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// exponents.go — ExponentDistributor: spread one total degree over n variables.
//
// Contract:
//   - totalDegree ≥ 0, nVariables ≥ 1 (else ErrInvalidArgument).
//   - totalDegree == 0 ⇒ zero vector, no randomness consumed.
//   - nVariables == 1 ⇒ [totalDegree].
//   - Otherwise Dir(2,…,2) proportions, half-to-even rounding, drift repair.
//   - Output is non-negative and sums to exactly totalDegree.

package generator

import (
	"fmt"
	"math/rand"
)

// DistributeExponents returns a length-nVariables exponent vector summing to totalDegree.
func DistributeExponents(rng *rand.Rand, totalDegree, nVariables int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodDistribute, ErrNeedRandSource)
	}
	if nVariables < 1 {
		return nil, fmt.Errorf("%s: nVariables=%d < 1: %w", methodDistribute, nVariables, ErrInvalidArgument)
	}
	if totalDegree < 0 {
		return nil, fmt.Errorf("%s: totalDegree=%d < 0: %w", methodDistribute, totalDegree, ErrInvalidArgument)
	}
	if totalDegree == 0 {
		return make([]int, nVariables), nil
	}

	props := symmetricDirichlet(rng, nVariables, exponentConcentration)
	exps, drift := roundShares(props, totalDegree)
	correctDrift(rng, exps, drift)

	return exps, nil
}

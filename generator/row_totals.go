// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// row_totals.go — RowTotalSampler: m positive total degrees summing to a target.
//
// Contract:
//   - m ≥ 1 and targetSum ≥ m (else ErrInfeasible).
//   - Reserve 1 per row, spread remaining = targetSum − m with Dir(1,…,1)
//     proportions, round half-to-even, then repair the drift one unit at a time.
//   - remaining == 0 ⇒ all ones, no randomness consumed.
//
// Complexity:
//   - Time O(m + |drift|), Space O(m).

package generator

import (
	"fmt"
	"math/rand"
)

// SampleRowTotals returns [E₁..Eₘ] with every Eᵢ ≥ 1 and ΣEᵢ == targetSum.
func SampleRowTotals(rng *rand.Rand, m, targetSum int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSampleTotals, ErrNeedRandSource)
	}
	if m < MinMonomials {
		return nil, fmt.Errorf("%s: m=%d < min=%d: %w", methodSampleTotals, m, MinMonomials, ErrInvalidArgument)
	}
	if targetSum < m {
		return nil, fmt.Errorf("%s: cannot distribute %d across %d monomials with Eᵢ ≥ 1: %w",
			methodSampleTotals, targetSum, m, ErrInfeasible)
	}

	remaining := targetSum - m
	totals := make([]int, m)
	if remaining == 0 {
		for i := range totals {
			totals[i] = 1
		}
		return totals, nil
	}

	props := symmetricDirichlet(rng, m, rowTotalConcentration)
	extras, drift := roundShares(props, remaining)
	correctDrift(rng, extras, drift)

	for i, e := range extras {
		totals[i] = 1 + e
	}

	return totals, nil
}

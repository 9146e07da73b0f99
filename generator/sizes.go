// SPDX-License-Identifier: MIT
// Package: polygen/generator
//
// sizes.go — SizeChooser: monomial count m and variable count n from δ.
//
// Model:
//   - α ~ U[αlo, αhi], β ~ U[βlo, βhi], drawn in that order from the call's stream.
//   - m = max(1, ⌊√δ·α⌋): monomial count grows sub-linearly with difficulty.
//   - n = max(2, ⌊√δ/β⌋): matrix width stays sub-linear as well.
//
// Determinism:
//   - Exactly two Float64 draws per call; identical (δ, seed) ⇒ identical (m, n).

package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ChooseSizes picks (m, n) for delta using the default scale windows.
// Errors: ErrNeedRandSource (nil rng), ErrInvalidArgument (delta ≤ 0).
func ChooseSizes(delta int, rng *rand.Rand) (m, n int, err error) {
	return chooseSizes(delta, rng, DefaultScaleRanges)
}

// SizesForSeed is ChooseSizes on a fresh stream seeded with seed. It matches
// the sizes Generate(delta, WithSeed(seed)) picks.
func SizesForSeed(delta int, seed int64) (m, n int, err error) {
	return chooseSizes(delta, NewRand(seed), DefaultScaleRanges)
}

// chooseSizes is the kernel shared by the public entry points and Generate.
func chooseSizes(delta int, rng *rand.Rand, sc ScaleRanges) (m, n int, err error) {
	if rng == nil {
		return 0, 0, fmt.Errorf("%s: %w", methodChooseSizes, ErrNeedRandSource)
	}
	if delta <= 0 {
		return 0, 0, fmt.Errorf("%s: delta=%d must be > 0: %w", methodChooseSizes, delta, ErrInvalidArgument)
	}

	alpha := uniform(rng, sc.AlphaLo, sc.AlphaHi)
	beta := uniform(rng, sc.BetaLo, sc.BetaHi)

	root := math.Sqrt(float64(delta))
	m = max(MinMonomials, int(math.Floor(root*alpha)))
	n = max(MinVariables, int(math.Floor(root/beta)))

	return m, n, nil
}

// uniform draws from [lo, hi) (or returns lo when the window is a point).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// IsFeasible reports whether (m, n, delta) can carry an instance whose
// baseline is delta: m ≥ 1, n ≥ 2, delta ≥ 0 and δ+m ≥ m. It is a validation
// helper for callers and tests; Generate does not consult it.
func IsFeasible(m, n, delta int) bool {
	if m < MinMonomials || n < MinVariables || delta < 0 {
		return false
	}
	requiredTotal := delta + m // Σ Eᵢ
	minTotal := m              // every Eᵢ ≥ 1

	return requiredTotal >= minTotal
}

// SizeCount is one bucket of a size sweep.
type SizeCount struct {
	M, N  int
	Count int
}

// SweepSizes runs the size chooser once per seed and returns the (m, n)
// histogram ordered by descending count, then ascending m, then n.
func SweepSizes(delta int, seeds []int64) ([]SizeCount, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("%s: delta=%d must be > 0: %w", methodSweepSizes, delta, ErrInvalidArgument)
	}
	type pair struct{ m, n int }
	counts := make(map[pair]int)
	for _, s := range seeds {
		m, n, err := SizesForSeed(delta, s)
		if err != nil {
			return nil, fmt.Errorf("%s: seed=%d: %w", methodSweepSizes, s, err)
		}
		counts[pair{m, n}]++
	}

	out := make([]SizeCount, 0, len(counts))
	for p, c := range counts {
		out = append(out, SizeCount{M: p.m, N: p.n, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].M != out[j].M {
			return out[i].M < out[j].M
		}
		return out[i].N < out[j].N
	})

	return out, nil
}

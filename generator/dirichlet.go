// SPDX-License-Identifier: MIT

package generator

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distmv"
)

// streamSource adapts the call's *rand.Rand to the Source interface gonum's
// distributions draw from, so Dirichlet samples come from the same stream as
// every other step.
type streamSource struct{ r *rand.Rand }

func (s streamSource) Uint64() uint64 { return s.r.Uint64() }

func (s streamSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }

// symmetricDirichlet draws a proportion vector of length k from Dir(alpha,…,alpha).
// k == 1 is the degenerate simplex [1] and consumes no randomness.
func symmetricDirichlet(rng *rand.Rand, k int, alpha float64) []float64 {
	if k == 1 {
		return []float64{1}
	}
	alphas := make([]float64, k)
	for i := range alphas {
		alphas[i] = alpha
	}
	d := distmv.NewDirichlet(alphas, streamSource{r: rng})

	return d.Rand(make([]float64, k))
}

// roundShares converts proportions × total into integers with half-to-even
// rounding and returns the shares together with the drift total − Σshares.
func roundShares(props []float64, total int) ([]int, int) {
	out := make([]int, len(props))
	sum := 0
	for i, p := range props {
		out[i] = int(math.RoundToEven(p * float64(total)))
		sum += out[i]
	}

	return out, total - sum
}

// correctDrift fixes rounding drift one unit at a time: a positive drift
// increments a uniformly chosen entry; a negative drift decrements a uniformly
// chosen entry, falling back to a random positive entry when the chosen one is
// zero. Entries never go negative and Σvals changes by exactly drift.
func correctDrift(rng *rand.Rand, vals []int, drift int) {
	for drift > 0 {
		vals[rng.Intn(len(vals))]++
		drift--
	}
	for drift < 0 {
		idx := rng.Intn(len(vals))
		if vals[idx] == 0 {
			idx = randomPositive(rng, vals)
			if idx < 0 {
				return // nothing left to take; cannot happen when Σvals > target ≥ 0
			}
		}
		vals[idx]--
		drift++
	}
}

// randomPositive returns a uniformly chosen index with vals[i] > 0, or -1.
func randomPositive(rng *rand.Rand, vals []int) int {
	pos := make([]int, 0, len(vals))
	for i, v := range vals {
		if v > 0 {
			pos = append(pos, i)
		}
	}
	if len(pos) == 0 {
		return -1
	}

	return pos[rng.Intn(len(pos))]
}

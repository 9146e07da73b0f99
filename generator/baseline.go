// SPDX-License-Identifier: MIT

package generator

import "github.com/katalvlaran/polygen/matrix"

// BaselineFromTotals returns Σᵢ max(0, Eᵢ − 1) over row totals.
// An empty slice has baseline 0.
func BaselineFromTotals(totals []int) int {
	b := 0
	for _, e := range totals {
		if e > 1 {
			b += e - 1
		}
	}

	return b
}

// Baseline returns the baseline metric of an exponent matrix, a function of
// its row sums only. A nil matrix has baseline 0.
func Baseline(k *matrix.Dense) int {
	if k == nil {
		return 0
	}

	return BaselineFromTotals(k.RowSums())
}

// RowContributions returns max(0, Eᵢ − 1) per row, in row order.
func RowContributions(k *matrix.Dense) []int {
	sums := k.RowSums()
	out := make([]int, len(sums))
	for i, e := range sums {
		if e > 1 {
			out[i] = e - 1
		}
	}

	return out
}

// SPDX-License-Identifier: MIT

package generator

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/polygen/matrix"
)

// Profile summarizes the shape of an exponent matrix.
type Profile struct {
	M                    int     `json:"m"`
	N                    int     `json:"n"`
	MaxTotalDegree       int     `json:"max_total_degree"`
	MaxExponent          int     `json:"max_exponent"`
	Sparsity             float64 `json:"sparsity"`               // share of zero entries
	VariablesPerMonomial []int   `json:"variables_per_monomial"` // nonzero entries per row
	MeanDegree           float64 `json:"mean_degree"`
	StdDevDegree         float64 `json:"stddev_degree"` // sample stddev; 0 for fewer than two rows
	DuplicateRows        int     `json:"duplicate_rows"`
	ZeroColumns          int     `json:"zero_columns"`
}

// ProfileOf computes the profile of k. A nil matrix yields the zero Profile.
func ProfileOf(k *matrix.Dense) Profile {
	if k == nil {
		return Profile{}
	}
	sums := k.RowSums()
	degrees := make([]float64, len(sums))
	maxTotal := 0
	for i, e := range sums {
		degrees[i] = float64(e)
		maxTotal = max(maxTotal, e)
	}

	p := Profile{
		M:                    k.Rows(),
		N:                    k.Cols(),
		MaxTotalDegree:       maxTotal,
		MaxExponent:          k.MaxEntry(),
		Sparsity:             k.Sparsity(),
		VariablesPerMonomial: k.NonZeroPerRow(),
		DuplicateRows:        k.DuplicateRows(),
		ZeroColumns:          len(k.ZeroColumns()),
	}
	if len(degrees) > 0 {
		p.MeanDegree = stat.Mean(degrees, nil)
	}
	if len(degrees) > 1 {
		p.StdDevDegree = stat.StdDev(degrees, nil)
	}

	return p
}

// Profile is ProfileOf(inst.Matrix).
func (inst *Instance) Profile() Profile {
	return ProfileOf(inst.Matrix)
}

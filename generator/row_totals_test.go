// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygen/generator"
)

func TestSampleRowTotals_Infeasible(t *testing.T) {
	_, err := generator.SampleRowTotals(generator.NewRand(1), 5, 3)
	require.ErrorIs(t, err, generator.ErrInfeasible)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
}

func TestSampleRowTotals_AllOnes(t *testing.T) {
	got, err := generator.SampleRowTotals(generator.NewRand(1), 5, 5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1, 1}, got)
}

func TestSampleRowTotals_ExactSum(t *testing.T) {
	rng := generator.NewRand(seedDet)
	for _, tc := range []struct{ m, target int }{{1, 1}, {1, 9}, {3, 4}, {4, 20}, {7, 50}, {12, 13}} {
		got, err := generator.SampleRowTotals(rng, tc.m, tc.target)
		require.NoError(t, err)
		require.Len(t, got, tc.m)
		require.Equal(t, tc.target, sum(got), "%+v", tc)
		for _, e := range got {
			require.GreaterOrEqual(t, e, 1)
		}
	}
}

func TestSampleRowTotals_BadInput(t *testing.T) {
	_, err := generator.SampleRowTotals(nil, 3, 5)
	require.ErrorIs(t, err, generator.ErrNeedRandSource)

	_, err = generator.SampleRowTotals(generator.NewRand(1), 0, 5)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
}

// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygen/generator"
)

func TestBaseline_RowSums321(t *testing.T) {
	k := mustDense(t, [][]int{
		{1, 1, 1},
		{0, 2, 0},
		{0, 0, 1},
	})
	require.Equal(t, 3, generator.Baseline(k))
	require.Equal(t, 3, generator.BaselineFromTotals([]int{3, 2, 1}))
	require.Equal(t, []int{2, 1, 0}, generator.RowContributions(k))
}

func TestBaseline_Degenerate(t *testing.T) {
	require.Equal(t, 0, generator.Baseline(nil))
	require.Equal(t, 0, generator.BaselineFromTotals(nil))
	require.Equal(t, 0, generator.BaselineFromTotals([]int{1, 1, 0}))
}

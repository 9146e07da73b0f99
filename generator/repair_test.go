// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygen/generator"
	"github.com/katalvlaran/polygen/matrix"
)

func TestRepair_BreaksDuplicate(t *testing.T) {
	k := mustDense(t, [][]int{{1, 1}, {1, 1}})
	out, report, err := generator.Repair(k, generator.NewRand(seedDet), generator.DefaultRepairAttempts)
	require.NoError(t, err)
	require.True(t, matrix.IsUniqueRows(out))
	require.True(t, matrix.IsColumnCovered(out))
	require.Equal(t, []int{2, 2}, out.RowSums())
	require.True(t, report.Complete())
	require.Equal(t, 1, report.RandomMoves)
}

func TestRepair_ZeroBudgetUsesExhaustiveScan(t *testing.T) {
	k := mustDense(t, [][]int{{1, 1}, {1, 1}})
	out, report, err := generator.Repair(k, generator.NewRand(seedDet), 0)
	require.NoError(t, err)
	require.Equal(t, 0, report.RandomMoves)
	require.Equal(t, 1, report.ExhaustiveMoves)
	require.Equal(t, [][]int{{0, 2}, {1, 1}}, out.ToRows())
}

func TestRepair_FillsZeroColumn(t *testing.T) {
	k := mustDense(t, [][]int{{2, 0, 0}, {0, 2, 0}})
	out, report, err := generator.Repair(k, generator.NewRand(seedDet), generator.DefaultRepairAttempts)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 0, 1}, {0, 2, 0}}, out.ToRows())
	require.Equal(t, 1, report.ZeroColumnMoves)
	require.True(t, report.Complete())
}

func TestRepair_ToleratesImpossibleUniqueness(t *testing.T) {
	// Only two distinct patterns of degree 1 exist over two variables.
	k := mustDense(t, [][]int{{1, 0}, {1, 0}, {1, 0}})
	out, report, err := generator.Repair(k, generator.NewRand(seedDet), generator.DefaultRepairAttempts)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1}, out.RowSums())
	require.True(t, matrix.IsColumnCovered(out))
	require.False(t, report.Complete())
	require.Equal(t, 1, report.DuplicateRows)
	require.Equal(t, 0, report.ZeroColumns)
}

func TestRepair_DoesNotMutateInput(t *testing.T) {
	k := mustDense(t, [][]int{{1, 1}, {1, 1}, {2, 0}})
	before := k.Clone()
	_, _, err := generator.Repair(k, generator.NewRand(seedDet), generator.DefaultRepairAttempts)
	require.NoError(t, err)
	require.True(t, before.Equal(k))
}

func TestRepair_ReturnsTransferredClone(t *testing.T) {
	k := mustDense(t, [][]int{{2, 0, 0}, {0, 2, 0}, {1, 1, 0}})
	out, report, err := generator.Repair(k, generator.NewRand(seedDet), generator.DefaultRepairAttempts)
	require.NoError(t, err)
	require.NotSame(t, k, out)

	// each unit transfer changes exactly two cells of one row by one
	changed := 0
	for i, row := range out.ToRows() {
		orig, err := k.Row(i)
		require.NoError(t, err)
		for j, v := range row {
			d := v - orig[j]
			if d < 0 {
				d = -d
			}
			changed += d
		}
	}
	require.Positive(t, report.Moves())
	require.LessOrEqual(t, changed, 2*report.Moves())
	require.Zero(t, changed%2)

	require.NoError(t, out.Set(0, 0, 9))
	v, err := k.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestRepair_PreservesRowSums(t *testing.T) {
	rng := generator.NewRand(seedDet)
	var round int
	for round = 0; round < 25; round++ {
		m, n := 2+round%6, 2+round%4
		rows := make([][]int, m)
		for i := range rows {
			rows[i] = make([]int, n)
			rows[i][0] = 1 + rng.Intn(3) // everything in column 0: worst case
		}
		k := mustDense(t, rows)
		out, _, err := generator.Repair(k, rng, generator.DefaultRepairAttempts)
		require.NoError(t, err)
		require.NoError(t, matrix.ValidateRowSums(out, k.RowSums()))
		require.Equal(t, generator.Baseline(k), generator.Baseline(out))
	}
}

func TestRepair_Errors(t *testing.T) {
	k := mustDense(t, [][]int{{1, 1}})

	_, _, err := generator.Repair(nil, generator.NewRand(1), 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = generator.Repair(k, nil, 1)
	require.ErrorIs(t, err, generator.ErrNeedRandSource)

	_, _, err = generator.Repair(k, generator.NewRand(1), -1)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
}

func TestRepairReport_Moves(t *testing.T) {
	r := generator.RepairReport{RandomMoves: 1, ExhaustiveMoves: 2, ZeroColumnMoves: 3, CorrectiveMoves: 4}
	require.Equal(t, 10, r.Moves())
	require.True(t, r.Complete())
	r.ZeroColumns = 1
	require.False(t, r.Complete())
}

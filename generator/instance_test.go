// SPDX-License-Identifier: MIT

package generator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygen/generator"
	"github.com/katalvlaran/polygen/matrix"
)

func TestGenerate_InvalidArguments(t *testing.T) {
	_, err := generator.Generate(0)
	require.ErrorIs(t, err, generator.ErrInvalidArgument)

	_, err = generator.Generate(-4, generator.WithSeed(seedDet))
	require.ErrorIs(t, err, generator.ErrInvalidArgument)

	_, err = generator.Generate(5, generator.WithCoefficientRange(0, 0))
	require.ErrorIs(t, err, generator.ErrInvalidArgument)

	_, err = generator.Generate(5, generator.WithCoefficientRange(3, 1))
	require.ErrorIs(t, err, generator.ErrInvalidArgument)

	_, err = generator.Generate(5, generator.WithCoefficientRange(0.1, 0.9), generator.WithIntegerCoefficients())
	require.ErrorIs(t, err, generator.ErrInvalidArgument)

	_, err = generator.Generate(10, generator.WithSeed(1), generator.WithIntegerCoefficients(),
		generator.WithCoefficientRange(1e19, 1e20))
	require.ErrorIs(t, err, generator.ErrInvalidArgument)

	_, err = generator.Generate(10, generator.WithSeed(1), generator.WithCoefficientRange(-1.7e308, 1.7e308))
	require.ErrorIs(t, err, generator.ErrInvalidArgument)
}

func TestGenerate_WideIntegerWindowVerifies(t *testing.T) {
	inst, err := generator.Generate(10, generator.WithSeed(1), generator.WithIntegerCoefficients(),
		generator.WithCoefficientRange(-4e18, 4e18))
	require.NoError(t, err)
	require.NoError(t, inst.Verify())
	for _, c := range inst.Coefficients {
		require.True(t, inst.Range.Contains(c), "%g outside %s", c, inst.Range)
	}
}

func TestGenerate_Delta10Seed42(t *testing.T) {
	a, err := generator.Generate(10, generator.WithSeed(42))
	require.NoError(t, err)
	b, err := generator.Generate(10, generator.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, 10, a.Baseline)
	require.Equal(t, a.M, b.M)
	require.Equal(t, a.N, b.N)
	require.True(t, a.Matrix.Equal(b.Matrix), "%#v vs %#v", a.Matrix, b.Matrix)
	require.Equal(t, a.Coefficients, b.Coefficients)
	require.Equal(t, a.RowTotals, b.RowTotals)
	require.Equal(t, a.ID, b.ID)
	require.Equal(t, a.Expression(), b.Expression())
	require.NotNil(t, a.Seed)
	require.Equal(t, int64(42), *a.Seed)
	require.NoError(t, a.Verify())
}

func TestGenerate_Structure(t *testing.T) {
	for _, delta := range []int{1, 2, 3, 7, 15, 30, 64, 120} {
		inst, err := generator.Generate(delta, generator.WithSeed(seedDet))
		require.NoError(t, err, "delta=%d", delta)
		require.Equal(t, delta, inst.Baseline)
		require.Equal(t, delta+inst.M, sum(inst.RowTotals))
		require.Equal(t, inst.RowTotals, inst.Matrix.RowSums())
		for _, e := range inst.RowTotals {
			require.GreaterOrEqual(t, e, 1)
		}
		rows, cols := inst.Matrix.Shape()
		require.Equal(t, inst.M, rows)
		require.Equal(t, inst.N, cols)
		require.Len(t, inst.Coefficients, inst.M)
		require.Equal(t, inst.M, inst.Polynomial.Len())
		require.NoError(t, inst.Verify())
		if inst.Repair.Complete() {
			require.True(t, matrix.IsUniqueRows(inst.Matrix))
			require.True(t, matrix.IsColumnCovered(inst.Matrix))
		}
	}
}

func TestGenerate_CoefficientWindow(t *testing.T) {
	inst, err := generator.Generate(12, generator.WithSeed(seedDet), generator.WithCoefficientRange(1, 3))
	require.NoError(t, err)
	for _, c := range inst.Coefficients {
		require.True(t, c >= 1 && c <= 3, "%g", c)
	}

	inst, err = generator.Generate(12, generator.WithSeed(seedDet),
		generator.WithCoefficientRange(-5, 5), generator.WithIntegerCoefficients())
	require.NoError(t, err)
	for _, c := range inst.Coefficients {
		require.NotZero(t, c)
		require.Equal(t, float64(int64(c)), c)
	}
}

func TestGenerate_WithRandReportsNoSeed(t *testing.T) {
	inst, err := generator.Generate(9, generator.WithRand(generator.NewRand(3)))
	require.NoError(t, err)
	require.Nil(t, inst.Seed)
	require.Equal(t, 9, inst.Baseline)
}

func TestGenerate_Unseeded(t *testing.T) {
	inst, err := generator.Generate(20)
	require.NoError(t, err)
	require.Equal(t, 20, inst.Baseline)
	require.Nil(t, inst.Seed)
}

func TestGenerate_IndependentResults(t *testing.T) {
	a, err := generator.Generate(10, generator.WithSeed(seedDet))
	require.NoError(t, err)
	b, err := generator.Generate(10, generator.WithSeed(seedDet))
	require.NoError(t, err)

	a.Coefficients[0] = 1234
	require.NoError(t, a.Matrix.Set(0, 0, 99))
	require.NotEqual(t, a.Coefficients[0], b.Coefficients[0])
	v, err := b.Matrix.At(0, 0)
	require.NoError(t, err)
	require.NotEqual(t, 99, v)
}

func TestInstance_VerifyDetectsTampering(t *testing.T) {
	inst, err := generator.Generate(10, generator.WithSeed(seedDet))
	require.NoError(t, err)
	inst.Coefficients[0] = 0
	require.ErrorIs(t, inst.Verify(), generator.ErrInvariantViolation)

	inst, err = generator.Generate(10, generator.WithSeed(seedDet))
	require.NoError(t, err)
	inst.Delta = 11
	require.ErrorIs(t, inst.Verify(), generator.ErrInvariantViolation)

	require.ErrorIs(t, (*generator.Instance)(nil).Verify(), matrix.ErrNilMatrix)
}

func TestInstance_MarshalJSON(t *testing.T) {
	inst, err := generator.Generate(6, generator.WithSeed(seedDet))
	require.NoError(t, err)
	b, err := json.Marshal(inst)
	require.NoError(t, err)

	var decoded struct {
		ID         string    `json:"id"`
		Delta      int       `json:"delta"`
		Seed       int64     `json:"seed"`
		Matrix     [][]int   `json:"matrix"`
		Baseline   int       `json:"baseline"`
		Coeffs     []float64 `json:"coefficients"`
		Polynomial struct {
			Expression string `json:"expression"`
		} `json:"polynomial"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, inst.ID.String(), decoded.ID)
	require.Equal(t, 6, decoded.Delta)
	require.Equal(t, seedDet, decoded.Seed)
	require.Equal(t, inst.Matrix.ToRows(), decoded.Matrix)
	require.Equal(t, 6, decoded.Baseline)
	require.Equal(t, inst.Coefficients, decoded.Coeffs)
	require.Equal(t, inst.Expression(), decoded.Polynomial.Expression)
}

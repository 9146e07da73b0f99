// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygen/generator"
)

func TestNewRand_SameSeedSameStream(t *testing.T) {
	a, b := generator.NewRand(seedDet), generator.NewRand(seedDet)
	var i int
	for i = 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestSeedFromLabel(t *testing.T) {
	a := generator.SeedFromLabel("bench/δ=40/run-1")
	require.Equal(t, a, generator.SeedFromLabel("bench/δ=40/run-1"))
	require.NotEqual(t, a, generator.SeedFromLabel("bench/δ=40/run-2"))
	require.GreaterOrEqual(t, a, int64(0))
	require.GreaterOrEqual(t, generator.SeedFromLabel(""), int64(0))
}

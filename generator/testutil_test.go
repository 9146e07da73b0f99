// SPDX-License-Identifier: MIT

package generator_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/polygen/matrix"
)

// seedDet is the fixed seed shared by deterministic tests.
const seedDet int64 = 42

func mustDense(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	k, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return k
}

func sum(vals []int) int {
	s := 0
	for _, v := range vals {
		s += v
	}

	return s
}

func mustDenseRapid(t *rapid.T, rows [][]int) *matrix.Dense {
	k, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return k
}

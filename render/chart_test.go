// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polygen/matrix"
	"github.com/katalvlaran/polygen/render"
)

func TestWriteDegreeChart(t *testing.T) {
	k := mustDense(t, [][]int{{2, 1, 0}, {0, 1, 1}})
	var buf bytes.Buffer
	require.NoError(t, render.WriteDegreeChart(&buf, "delta=3", k))
	html := buf.String()
	require.Contains(t, html, "<html")
	require.Contains(t, html, "delta=3")
}

func TestWriteDegreeChart_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, render.WriteDegreeChart(nil, "t", mustDense(t, [][]int{{1}})), render.ErrNilWriter)
	require.ErrorIs(t, render.WriteDegreeChart(&buf, "t", nil), matrix.ErrNilMatrix)
}

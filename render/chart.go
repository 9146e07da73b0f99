// SPDX-License-Identifier: MIT
// Package: polygen/render
//
// chart.go — HTML degree profile of an exponent matrix.
//
// The page holds two bar charts:
//   - per monomial: total degree Eᵢ next to its baseline share max(0, Eᵢ−1);
//   - per variable: column coverage Σᵢ Kᵢⱼ.

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/polygen/matrix"
)

// WriteDegreeChart renders the degree profile of k as a self-contained HTML page.
// Errors: ErrNilWriter, matrix.ErrNilMatrix, or the writer's error.
func WriteDegreeChart(w io.Writer, title string, k *matrix.Dense) error {
	if w == nil {
		return fmt.Errorf("WriteDegreeChart: %w", ErrNilWriter)
	}
	if err := matrix.ValidateNotNil(k); err != nil {
		return fmt.Errorf("WriteDegreeChart: %w", err)
	}

	sums := k.RowSums()
	shares := make([]int, len(sums))
	baseline := 0
	for i, e := range sums {
		if e > 1 {
			shares[i] = e - 1
			baseline += e - 1
		}
	}

	page := components.NewPage()
	page.SetPageTitle(title)
	page.AddCharts(
		newBarChart(
			title+": monomial degrees",
			fmt.Sprintf("m=%d, n=%d, baseline=%d", k.Rows(), k.Cols(), baseline),
			indexLabels("m", len(sums)),
			series{"Eᵢ", sums},
			series{"max(0, Eᵢ−1)", shares},
		),
		newBarChart(
			title+": variable coverage",
			fmt.Sprintf("zero columns=%d, max exponent=%d", len(k.ZeroColumns()), k.MaxEntry()),
			Variables(k.Cols()),
			series{"Σᵢ Kᵢⱼ", k.ColSums()},
		),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("WriteDegreeChart: %w", err)
	}

	return nil
}

type series struct {
	name string
	vals []int
}

func newBarChart(title, subtitle string, labels []string, ss ...series) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(len(ss) > 1)}),
	)
	bar.SetXAxis(labels)
	for _, s := range ss {
		bar.AddSeries(s.name, toBarItems(s.vals))
	}

	return bar
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}

	return out
}

func indexLabels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}

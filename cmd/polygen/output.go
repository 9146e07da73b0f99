// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/polygen/generator"
)

const rule = "=================================================="

// printInstance writes the text report of one generation call.
func printInstance(w io.Writer, inst *generator.Instance, verbose bool) {
	fmt.Fprintf(w, "\n%s\nPOLYNOMIAL GENERATION RESULTS\n%s\n", rule, rule)
	fmt.Fprintf(w, "δ (difficulty parameter): %d\n", inst.Delta)
	fmt.Fprintf(w, "Chosen (m, n): (%d, %d)\n", inst.M, inst.N)
	fmt.Fprintf(w, "Instance ID: %s\n", inst.ID)
	if inst.Seed != nil {
		fmt.Fprintf(w, "Seed: %d\n", *inst.Seed)
	}

	if verbose {
		fmt.Fprintf(w, "\nAlgorithm steps:\n")
		fmt.Fprintf(w, "1. Chose m=%d monomials, n=%d variables\n", inst.M, inst.N)
		fmt.Fprintf(w, "2. Sampled row totals summing to %d + %d = %d\n", inst.Delta, inst.M, inst.Delta+inst.M)
		fmt.Fprintf(w, "3. Distributed degrees across variables\n")
		fmt.Fprintf(w, "4. Repaired matrix with %d unit moves\n", inst.Repair.Moves())
		fmt.Fprintf(w, "5. Generated %d nonzero coefficients in %s\n", len(inst.Coefficients), inst.Range)
	}

	fmt.Fprintf(w, "\nExponent matrix K (%d×%d):\n%s\n", inst.M, inst.N, inst.Matrix)
	fmt.Fprintf(w, "\nCoefficients: %s\n", formatFloats(inst.Coefficients))
	fmt.Fprintf(w, "\nSymbolic polynomial:\nP(x) = %s\n", inst.Expression())

	fmt.Fprintf(w, "\nVerification:\nBaseline Kbase(P): %d\n", inst.Baseline)
	if inst.Baseline == inst.Delta {
		fmt.Fprintf(w, "✓ Baseline matches target δ = %d\n", inst.Delta)
	} else {
		fmt.Fprintf(w, "✗ ERROR: Baseline %d ≠ target δ = %d\n", inst.Baseline, inst.Delta)
	}
	if !inst.Repair.Complete() {
		fmt.Fprintf(w, "! Repair incomplete: %d duplicate rows, %d zero columns\n",
			inst.Repair.DuplicateRows, inst.Repair.ZeroColumns)
	}

	if !verbose {
		return
	}
	contrib := generator.RowContributions(inst.Matrix)
	fmt.Fprintf(w, "\nRow degrees (Eᵢ): %s\n", formatInts(inst.Matrix.RowSums()))
	fmt.Fprintf(w, "Constraint contributions (Eᵢ-1): %s\n", formatInts(contrib))
	fmt.Fprintf(w, "Total: %d = %d\n", sumInts(contrib), inst.Baseline)

	p := inst.Profile()
	fmt.Fprintf(w, "\nMatrix sparsity: %.2f%% zeros\n", 100*p.Sparsity)
	fmt.Fprintf(w, "Max exponent: %d\n", p.MaxExponent)
	fmt.Fprintf(w, "Max total degree: %d\n", p.MaxTotalDegree)
	fmt.Fprintf(w, "Row degree mean/stddev: %.3f / %.3f\n", p.MeanDegree, p.StdDevDegree)
	fmt.Fprintf(w, "Variables used in each monomial: %s\n", formatInts(p.VariablesPerMonomial))
}

// printSummary writes one line per instance plus an abbreviated expression.
func printSummary(w io.Writer, inst *generator.Instance) {
	seed := "-"
	if inst.Seed != nil {
		seed = strconv.FormatInt(*inst.Seed, 10)
	}
	fmt.Fprintf(w, "δ = %2d: m=%2d, n=%2d, baseline=%d, seed=%s, id=%s\n",
		inst.Delta, inst.M, inst.N, inst.Baseline, seed, inst.ID)
	fmt.Fprintf(w, "   Polynomial: %s\n", abbreviate(inst.Expression(), 80))
}

func abbreviate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}

	return string(r[:limit]) + "..."
}

func formatInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func sumInts(vals []int) int {
	s := 0
	for _, v := range vals {
		s += v
	}

	return s
}

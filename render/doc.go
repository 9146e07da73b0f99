// SPDX-License-Identifier: MIT

// Package render turns a generated exponent matrix and its coefficients into
// human-facing artifacts.
//
// What:
//   - Polynomial: symbolic P(x) = Σ cᵢ · Π xⱼ^Kᵢⱼ over x1..xn, printable as plain
//     text ("3*x1**2*x2 - x3"), LaTeX, or JSON.
//   - WriteDegreeChart: a self-contained HTML page (go-echarts) with the degree
//     profile of the matrix: row totals, their baseline shares and column coverage.
//
// Why:
//   - Generated instances are consumed by people (papers, slides, debugging) and
//     by tools (JSON); both views come from the same immutable Polynomial.
//
// Determinism:
//   - Rendering is pure: terms keep monomial order and numbers use the shortest
//     round-trip representation.
package render

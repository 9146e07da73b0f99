// SPDX-License-Identifier: MIT

// Package matrix - structural queries over the exponent matrix.
//
// Purpose:
//   - Row/column aggregates used by the generator (row totals, column coverage).
//   - Pattern keys and multisets used to detect duplicate monomials.
//   - Descriptive statistics used by reports (sparsity, max exponent, support size).
//
// Determinism:
//   - All loops run in ascending row, then column order.

package matrix

import "fmt"

// RowSum returns Σ_j K[i][j] (the total degree of monomial i).
// Complexity: O(c).
func (m *Dense) RowSum(i int) (int, error) {
	if i < 0 || i >= m.r {
		return 0, denseErrorf("RowSum", i, 0, ErrOutOfRange)
	}

	return m.rowSum(i), nil
}

// rowSum is the unchecked kernel behind RowSum.
func (m *Dense) rowSum(i int) int {
	s := 0
	for _, v := range m.data[i*m.c : (i+1)*m.c] {
		s += v
	}

	return s
}

// RowSums returns the total degree of every row, in row order.
// Complexity: O(r*c) time, O(r) space.
func (m *Dense) RowSums() []int {
	out := make([]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.rowSum(i)
	}

	return out
}

// ColSums returns Σ_i K[i][j] for every column j (variable coverage).
// Complexity: O(r*c) time, O(c) space.
func (m *Dense) ColSums() []int {
	out := make([]int, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[j] += m.data[i*m.c+j]
		}
	}

	return out
}

// ZeroColumns returns the ascending indices of columns whose sum is zero.
func (m *Dense) ZeroColumns() []int {
	var out []int
	for j, s := range m.ColSums() {
		if s == 0 {
			out = append(out, j)
		}
	}

	return out
}

// RowKey returns the canonical Key of row i.
// Complexity: O(c).
func (m *Dense) RowKey(i int) (Key, error) {
	if i < 0 || i >= m.r {
		return "", denseErrorf("RowKey", i, 0, ErrOutOfRange)
	}

	return KeyOf(m.data[i*m.c : (i+1)*m.c]), nil
}

// Patterns builds the multiset of all row keys.
// Complexity: O(r*c).
func (m *Dense) Patterns() Multiset {
	s := NewMultiset()
	var i int
	for i = 0; i < m.r; i++ {
		s.Add(KeyOf(m.data[i*m.c : (i+1)*m.c]))
	}

	return s
}

// DuplicateRows counts rows whose pattern also occurs in an earlier row.
// A matrix with unique rows returns 0.
func (m *Dense) DuplicateRows() int {
	n := 0
	for _, cnt := range m.Patterns() {
		n += cnt - 1
	}

	return n
}

// MaxEntry returns the largest single exponent.
func (m *Dense) MaxEntry() int {
	best := 0
	for _, v := range m.data {
		if v > best {
			best = v
		}
	}

	return best
}

// Sparsity returns the fraction of zero entries in [0,1].
func (m *Dense) Sparsity() float64 {
	if len(m.data) == 0 {
		return 0
	}
	zeros := 0
	for _, v := range m.data {
		if v == 0 {
			zeros++
		}
	}

	return float64(zeros) / float64(len(m.data))
}

// NonZeroPerRow returns, per row, how many variables appear with a positive exponent.
func (m *Dense) NonZeroPerRow() []int {
	out := make([]int, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] > 0 {
				out[i]++
			}
		}
	}

	return out
}

// GoString gives a compact literal-like dump used by test failure messages.
func (m *Dense) GoString() string {
	return fmt.Sprintf("matrix.Dense{%dx%d %v}", m.r, m.c, m.ToRows())
}

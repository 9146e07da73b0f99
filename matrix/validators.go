// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for structural checks on exponent matrices.
//  - Return sentinel errors wrapped with a validator tag so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; RowSums/Patterns allocate O(r) scratch.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRowSums ensures every row total equals want[i].
//
// Inputs: matrix and expected totals (len must equal Rows()).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrRowSumMismatch.
// Complexity: O(r*c).
func ValidateRowSums(m *Dense, want []int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if len(want) != m.r {
		return validatorErrorf("ValidateRowSums", ErrDimensionMismatch)
	}
	var i int
	for i = 0; i < m.r; i++ {
		if got := m.rowSum(i); got != want[i] {
			return fmt.Errorf("ValidateRowSums: row %d sum=%d want=%d: %w", i, got, want[i], ErrRowSumMismatch)
		}
	}

	return nil
}

// IsUniqueRows reports whether no two rows are identical tuples.
// Complexity: O(r*c).
func IsUniqueRows(m *Dense) bool {
	return m != nil && m.DuplicateRows() == 0
}

// IsColumnCovered reports whether every column has at least one positive entry.
// Complexity: O(r*c).
func IsColumnCovered(m *Dense) bool {
	return m != nil && len(m.ZeroColumns()) == 0
}

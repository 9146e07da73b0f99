// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Methods return these sentinels (wrapped with method context) and
// tests check them via errors.Is. No method panics on user-triggered errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Public
// methods wrap with "Dense.<Method>(i,j): %w"; callers match with errors.Is.
//
// ERROR PRIORITY:
// shape -> index -> ragged input -> negative entry -> empty donor.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates ragged rows or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeEntry signals an attempt to store a negative exponent.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrEmptyDonor signals a unit transfer from a cell that holds zero.
	ErrEmptyDonor = errors.New("matrix: donor cell is empty")

	// ErrRowSumMismatch signals that a row total differs from the expected value.
	ErrRowSumMismatch = errors.New("matrix: row sum mismatch")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

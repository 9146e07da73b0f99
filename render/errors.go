// SPDX-License-Identifier: MIT

package render

import "errors"

var (
	// ErrLengthMismatch indicates that coefficients, exponent rows or an
	// evaluation point disagree in length with the polynomial shape.
	ErrLengthMismatch = errors.New("render: length mismatch")

	// ErrNilWriter indicates that a nil io.Writer was passed to a chart writer.
	ErrNilWriter = errors.New("render: nil writer")
)

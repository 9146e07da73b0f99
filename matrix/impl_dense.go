// SPDX-License-Identifier: MIT

// Package matrix - Dense integer storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the exponent policy: every stored entry is a non-negative integer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSetRow   = "SetRow"   // method tag used in error wrappers
	ctxTransfer = "Transfer" // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowIndent = "  "
	_fmtRowOpen   = "["
	_fmtRowClose  = "]"
	_fmtSep       = "  "
	_fmtEmpty     = "(empty matrix)"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of non-negative integers.
// In this module entry (i,j) is the exponent of variable j in monomial i.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int   // row and column counts (>0 for public constructors)
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of equal-length rows (deep copy).
// MAIN DESCRIPTION:
//   - Ingest literal exponent data, e.g. fixtures in tests or decoded JSON.
//
// Implementation:
//   - Stage 1: validate non-empty shape.
//   - Stage 2: validate every row length equals len(rows[0]).
//   - Stage 3: copy values, rejecting negatives.
//
// Errors:
//   - ErrInvalidDimensions for no rows or empty first row.
//   - ErrDimensionMismatch for ragged input.
//   - ErrNegativeEntry for any value < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]int, r*c)}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("Dense.%s: row %d has %d entries, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if rows[i][j] < 0 {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNegativeEntry)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count (monomials). Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (variables). Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with method name and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with the non-negative exponent policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNegativeEntry for v < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v < 0 {
		return denseErrorf(ctxSet, row, col, ErrNegativeEntry)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c) time and space.
func (m *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with vals (len(vals) must equal Cols()).
// The write is all-or-nothing: validation happens before any cell changes.
// Complexity: O(c).
func (m *Dense) SetRow(i int, vals []int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return fmt.Errorf("Dense.%s(%d): len=%d, want %d: %w", ctxSetRow, i, len(vals), m.c, ErrDimensionMismatch)
	}
	var j int
	for j = 0; j < m.c; j++ {
		if vals[j] < 0 {
			return denseErrorf(ctxSetRow, i, j, ErrNegativeEntry)
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Transfer moves one unit from column `from` to column `to` inside row i.
// MAIN DESCRIPTION:
//   - The single mutation used by exponent repair; the row sum never changes.
//
// Behavior highlights:
//   - from == to is a no-op (still validated).
//   - All-or-nothing: on error the matrix is untouched.
//
// Errors:
//   - ErrOutOfRange for bad indices; ErrEmptyDonor when K[i][from] == 0.
//
// Complexity:
//   - Time O(1).
func (m *Dense) Transfer(i, from, to int) error {
	src, err := m.indexOf(i, from)
	if err != nil {
		return denseErrorf(ctxTransfer, i, from, err)
	}
	dst, err := m.indexOf(i, to)
	if err != nil {
		return denseErrorf(ctxTransfer, i, to, err)
	}
	if from == to {
		return nil
	}
	if m.data[src] == 0 {
		return denseErrorf(ctxTransfer, i, from, ErrEmptyDonor)
	}
	m.data[src]--
	m.data[dst]++

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have identical shape and entries.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// ToRows exports the matrix as a fresh [][]int (row-major).
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]int, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as aligned lines: "  [a  b  c]".
// Every entry is right-aligned to the widest entry in the whole matrix.
// Implementation:
//   - Stage 1: find the maximal decimal width.
//   - Stage 2: write rows into strings.Builder with fixed delimiters.
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m == nil || len(m.data) == 0 {
		return _fmtEmpty
	}
	width := 1
	for _, v := range m.data {
		if w := len(strconv.Itoa(v)); w > width {
			width = w
		}
	}

	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowIndent)
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			s := strconv.Itoa(m.data[i*m.c+j])
			sb.WriteString(strings.Repeat(" ", width-len(s)))
			sb.WriteString(s)
		}
		sb.WriteString(_fmtRowClose)
		if i < m.r-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

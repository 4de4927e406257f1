// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep the two in-place mutators (Set, MultiplyByScalar) confined to the receiver.
//   - Enforce the optional numeric policy (rejection of NaN/Inf) from a single place.
//
// Ownership:
//   - Every constructor copies caller data into a fresh buffer; two Dense values
//     never share storage and callers never hold a mutable alias.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFromGrid: O(r*c) copy; At/Set: O(1);
//     Clone: O(r*c); IsSquare: O(1); IsDiagonal: O(n²); MultiplyByScalar: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxGrid = "NewDenseFromGrid"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (height, width); both > 0 and fixed for life.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimension.
//   - Stage 2: allocate zero-filled buffer and apply options.
//
// Errors:
//   - ErrInvalidDimension (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(fmt.Sprintf("NewDense(%d,%d)", rows, cols), ErrInvalidDimension)
	}

	return newDense(rows, cols, gatherOptions(opts...).validateNaNInf), nil
}

// newDense allocates without validation; callers guarantee rows, cols > 0.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills
		validateNaNInf: validateNaNInf,
	}
}

// NewDenseFromGrid builds a Dense from a rectangular [][]float64.
//
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, first row non-empty, no ragged rows).
//   - Stage 2: enforce numeric policy over every cell when enabled.
//   - Stage 3: copy rows into a flat buffer.
//
// Behavior highlights:
//   - Ragged grids are rejected, never truncated.
//   - The grid is copied; later writes to it do not reach the matrix.
//
// Errors:
//   - ErrInvalidDimension for empty or ragged input.
//   - ErrNaNInf when the finite-only policy is on and a cell is NaN/±Inf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromGrid(grid [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(ctxGrid, err)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for i, row := range grid {
			if err := validateFinite(row); err != nil {
				return nil, matrixErrorf(fmt.Sprintf("%s: row %d", ctxGrid, i), err)
			}
		}
	}

	rows, cols := len(grid), len(grid[0])
	m := newDense(rows, cols, o.validateNaNInf)
	for i, row := range grid {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the row count (height). O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (width). O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// On error the matrix is left untouched.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the finite-only policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// IsSquare reports whether Rows() == Cols(). O(1).
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsDiagonal reports whether m is square, every off-diagonal cell is exactly
// zero and every diagonal cell is non-zero.
//
// Behavior highlights:
//   - Stricter than the textbook definition: a zero on the diagonal makes the
//     matrix non-diagonal. NaN on the diagonal counts as non-zero; NaN off the
//     diagonal counts as non-zero too and fails the check.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (m *Dense) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			v := m.data[base+j]
			if i == j {
				if v == 0 {
					return false
				}
				continue
			}
			if v != 0 {
				return false
			}
		}
	}

	return true
}

// MultiplyByScalar scales every cell by s in place.
// Any s is accepted; NaN and ±Inf propagate per IEEE-754. The numeric policy
// is not consulted.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) MultiplyByScalar(s float64) {
	floats.Scale(s, m.data)
}

// String implements fmt.Stringer: one "[a, b, ...]" line per row.
// Diagnostic only; not a parseable format.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

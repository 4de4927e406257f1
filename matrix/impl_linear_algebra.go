// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Package-level operations over the Matrix interface: Add, Transpose, Equal.
//   - Results are always freshly allocated *Dense values; operands are read-only.
//
// Determinism & Performance:
//   - Dense fast-path operates on flat row-major buffers.
//   - Generic fallback uses At with fixed i→j loops.
//
// Not provided here:
//   - Matrix multiplication, inverse, decompositions.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opTranspose = "Transpose"
)

// policyOf returns the numeric policy a result derived from m should carry.
func policyOf(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// Add returns a new matrix holding the elementwise sum a[i,j] + b[i,j].
//
// Implementation:
//   - Stage 1: ValidateSameShape(opAdd, a, b).
//   - Stage 2: Fast-path if both are *Dense (single flat loop), otherwise
//     generic i→j reads via At.
//
// Behavior highlights:
//   - Neither operand is mutated; nothing is allocated on failure.
//   - Sums are written straight into the result buffer, so NaN/Inf produced by
//     IEEE arithmetic never trips the numeric policy.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - *DimensionMismatchError{Op: "Add"} (errors.Is ErrMatrixDimensionMismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(opAdd, a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols, policyOf(a))

	// Fast path: *Dense with *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			floats.AddTo(res.data, da.data, db.data)

			return res, nil
		}
	}

	// Fallback: generic interface loop.
	var i, j int
	var va, vb float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("a.At(%d,%d): %w", i, j, err))
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("b.At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = va + vb
		}
	}

	return res, nil
}

// Transpose returns a new matrix T with T.Rows()==m.Cols(), T.Cols()==m.Rows()
// and T[i,j] == m[j,i]. The input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, map data[i*cols+j] → res.data[j*rows+i];
//     else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows, policyOf(m)) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and identical cells.
// Comparison is exact; NaN never equals NaN. A nil operand never matches.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	if !SameDimensions(a, b) {
		return false
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return floats.Equal(da.data, db.data)
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			va, errA := a.At(i, j)
			vb, errB := b.At(i, j)
			if errA != nil || errB != nil || va != vb {
				return false
			}
		}
	}

	return true
}

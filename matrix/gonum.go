// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand matrices and vectors to gonum for work this package deliberately
//     does not do (products, factorizations), and bring results back.
//
// Ownership:
//   - Every conversion copies; no gonum value ever aliases a Dense buffer.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum      = "ToGonum"
	opFromGonum    = "FromGonum"
	opFromVecDense = "FromVecDense"
)

// isNilGonum reports whether src is nil, including a typed nil of one of
// gonum's concrete matrix types stored in the interface.
func isNilGonum(src mat.Matrix) bool {
	switch m := src.(type) {
	case nil:
		return true
	case *mat.Dense:
		return m == nil
	case *mat.VecDense:
		return m == nil
	case *mat.SymDense:
		return m == nil
	case *mat.TriDense:
		return m == nil
	case *mat.BandDense:
		return m == nil
	case *mat.DiagDense:
		return m == nil
	}

	return false
}

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - ErrNilMatrix; errors from At on non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
		return mat.NewDense(rows, cols, buf), nil
	}

	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if buf[i*cols+j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
//
// Errors:
//   - ErrNilMatrix for a nil source, typed nil *mat.Dense included.
//   - ErrInvalidDimension for an empty (0×c or r×0) source.
//   - ErrNaNInf under the finite-only policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilGonum(src) {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(fmt.Sprintf("%s(%dx%d)", opFromGonum, rows, cols), ErrInvalidDimension)
	}

	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.validateNaNInf)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = src.At(i, j)
		}
	}
	if o.validateNaNInf {
		if err := validateFinite(m.data); err != nil {
			return nil, matrixErrorf(opFromGonum, err)
		}
	}

	return m, nil
}

// ToVecDense copies v into a new *mat.VecDense. The orientation is dropped:
// gonum vectors are always columns.
func ToVecDense(v *vector.Vector) (*mat.VecDense, error) {
	if v == nil {
		return nil, matrixErrorf("ToVecDense", ErrNilVector)
	}

	return mat.NewVecDense(v.Dimension(), v.AsList()), nil
}

// FromVecDense copies a gonum mat.Vector into a new vector.Vector with the
// requested orientation.
//
// Errors:
//   - ErrNilVector for a nil source; vector.ErrInvalidDimension for an empty
//     one; vector.ErrInvalidOrientation for an unknown tag.
func FromVecDense(src mat.Vector, o vector.Orientation) (*vector.Vector, error) {
	if isNilGonum(src) {
		return nil, matrixErrorf(opFromVecDense, ErrNilVector)
	}
	n := src.Len()
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = src.AtVec(i)
	}
	v, err := vector.New(vals, o)
	if err != nil {
		return nil, matrixErrorf(opFromVecDense, err)
	}

	return v, nil
}

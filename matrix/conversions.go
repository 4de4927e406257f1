// SPDX-License-Identifier: MIT

// Package matrix - conversions between matrices and vector lists.
//
// Purpose:
//   - NewDenseFromVectors: stack a homogeneous list of vectors as rows.
//   - AsVectorList: split a matrix into ROW vectors, one per row.
//
// Round trip:
//   - NewDenseFromVectors(AsVectorList(m)) reproduces m cell-for-cell.
//
// Orientation:
//   - The orientation of the input vectors is only checked for homogeneity.
//     Column vectors are stacked as rows too; nothing is transposed.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

const (
	opFromVectors  = "NewDenseFromVectors"
	opAsVectorList = "AsVectorList"
)

// NewDenseFromVectors builds a len(vs)×vs[0].Dimension() matrix whose i-th row
// holds the values of vs[i].
//
// Implementation:
//   - Stage 1: reject an empty list or zero-dimension vectors (ErrInvalidDimension)
//     and nil entries (ErrNilVector).
//   - Stage 2: the first vector fixes orientation and width; any other vector
//     that differs in either fails with ErrVectorTypeMismatch.
//   - Stage 3: enforce the numeric policy when enabled, then copy rows.
//
// Errors:
//   - ErrInvalidDimension, ErrNilVector, ErrVectorTypeMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromVectors(vs []*vector.Vector, opts ...Option) (*Dense, error) {
	if len(vs) == 0 {
		return nil, matrixErrorf(opFromVectors, ErrInvalidDimension)
	}
	if vs[0] == nil {
		return nil, matrixErrorf(fmt.Sprintf("%s: vector 0", opFromVectors), ErrNilVector)
	}
	orientation, width := vs[0].Orientation(), vs[0].Dimension()
	if width <= 0 { // zero-value vector.Vector
		return nil, matrixErrorf(fmt.Sprintf("%s: vector 0", opFromVectors), ErrInvalidDimension)
	}

	// Validate the whole list before allocating.
	for i, v := range vs {
		if v == nil {
			return nil, matrixErrorf(fmt.Sprintf("%s: vector %d", opFromVectors, i), ErrNilVector)
		}
		if v.Orientation() != orientation || v.Dimension() != width {
			return nil, matrixErrorf(
				fmt.Sprintf("%s: vector %d is %s/%d, want %s/%d",
					opFromVectors, i, v.Orientation(), v.Dimension(), orientation, width),
				ErrVectorTypeMismatch,
			)
		}
	}

	o := gatherOptions(opts...)
	rows := make([][]float64, len(vs))
	for i, v := range vs {
		rows[i] = v.AsList()
		if o.validateNaNInf {
			if err := validateFinite(rows[i]); err != nil {
				return nil, matrixErrorf(fmt.Sprintf("%s: vector %d", opFromVectors, i), err)
			}
		}
	}

	m := newDense(len(vs), width, o.validateNaNInf)
	for i, row := range rows {
		copy(m.data[i*width:(i+1)*width], row)
	}

	return m, nil
}

// AsVectorList returns m.Rows() ROW vectors, each a copy of one row of m, in
// row order.
//
// Errors:
//   - ErrNilMatrix; errors from At on non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AsVectorList(m Matrix) ([]*vector.Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsVectorList, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]*vector.Vector, rows)
	row := make([]float64, cols) // scratch; vector.New copies it
	var err error
	for i := 0; i < rows; i++ {
		if d, ok := m.(*Dense); ok {
			copy(row, d.data[i*cols:(i+1)*cols])
		} else {
			for j := 0; j < cols; j++ {
				if row[j], err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opAsVectorList, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
			}
		}
		if out[i], err = vector.New(row, vector.Row); err != nil {
			return nil, matrixErrorf(opAsVectorList, err)
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the typed
// DimensionMismatchError. All operations MUST return these and tests MUST
// check them via errors.Is / errors.As. No operation panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped at the detection site with an operation tag (matrixErrorf,
// denseErrorf); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> vector homogeneity -> numeric policy.

var (
	// ErrInvalidDimension is returned when requested dimensions are non-positive,
	// or a raw grid (or vector list) is empty or ragged.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0 and rows of equal length")

	// ErrVectorTypeMismatch is returned when a matrix is built from vectors whose
	// orientations or dimensions are not all identical.
	ErrVectorTypeMismatch = errors.New("matrix: cannot mix vectors of different orientation or dimension")

	// ErrMatrixDimensionMismatch indicates operands of differing shape for an
	// operation that requires equal shapes (e.g. Add). Returned wrapped in a
	// *DimensionMismatchError that names the operation.
	ErrMatrixDimensionMismatch = errors.New("matrix: matrices are not of compatible size")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilVector indicates a nil *vector.Vector inside a vector list.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// DimensionMismatchError reports the operation that received operands of
// incompatible shape together with both shapes.
// It matches ErrMatrixDimensionMismatch under errors.Is.
type DimensionMismatchError struct {
	Op           string // attempted operation, e.g. "Add"
	ARows, ACols int    // shape of the first operand
	BRows, BCols int    // shape of the second operand
}

// Error implements error.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s for this operation: %s (%dx%d vs %dx%d)",
		ErrMatrixDimensionMismatch.Error(), e.Op, e.ARows, e.ACols, e.BRows, e.BCols)
}

// Unwrap exposes ErrMatrixDimensionMismatch to errors.Is.
func (e *DimensionMismatchError) Unwrap() error { return ErrMatrixDimensionMismatch }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

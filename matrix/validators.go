// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and constructors minimal by delegating nil/shape/grid checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// SameDimensions reports whether a and b have equal Rows() and Cols().
// Pure predicate; a nil operand never matches.
// Complexity: O(1).
func SameDimensions(a, b Matrix) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}

	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}

// ValidateSameShape ensures a and b are non-nil and of equal shape.
//
// Errors:
//   - ErrNilMatrix if either operand is nil.
//   - *DimensionMismatchError{Op: op} (matches ErrMatrixDimensionMismatch) otherwise.
//
// Complexity: O(1).
func ValidateSameShape(op string, a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if !SameDimensions(a, b) {
		return &DimensionMismatchError{
			Op:    op,
			ARows: a.Rows(),
			ACols: a.Cols(),
			BRows: b.Rows(),
			BCols: b.Cols(),
		}
	}

	return nil
}

// ValidateGrid ensures grid is non-empty, its first row is non-empty and every
// row has the same length as the first.
//
// Errors: ErrInvalidDimension, tagged with the offending row when ragged.
// Complexity: O(r).
func ValidateGrid(grid [][]float64) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return validatorErrorf("ValidateGrid", ErrInvalidDimension)
	}
	width := len(grid[0])
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != width {
			return validatorErrorf(
				fmt.Sprintf("ValidateGrid: row %d has %d values, want %d", i, len(grid[i]), width),
				ErrInvalidDimension,
			)
		}
	}

	return nil
}

// validateFinite returns ErrNaNInf for the first NaN or ±Inf in xs.
func validateFinite(xs []float64) error {
	for j, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return validatorErrorf(fmt.Sprintf("validateFinite: index %d", j), ErrNaNInf)
		}
	}

	return nil
}

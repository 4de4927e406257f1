// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every message is prefixed with "vector: ..." and callers match with errors.Is.

package vector

import "errors"

var (
	// ErrInvalidDimension is returned when a Vector would have no values.
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")

	// ErrInvalidOrientation is returned for an Orientation outside {Row, Column}.
	ErrInvalidOrientation = errors.New("vector: unknown orientation")

	// ErrOutOfRange indicates that an index is outside [0, Dimension()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

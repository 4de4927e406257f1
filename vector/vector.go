// SPDX-License-Identifier: MIT

// Package vector - orientation-tagged, fixed-length float64 sequences.
//
// Purpose:
//   - Carry a row/column tag next to the values so that matrix builders can
//     enforce homogeneous collections.
//   - Keep value semantics: the backing slice is private and never aliased.
//
// Complexity quicksheet:
//   - New/NewRow/NewColumn: O(n) copy; Dimension/Orientation: O(1);
//     AsList: O(n) copy; At: O(1); Equal: O(n).

package vector

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Orientation tags a Vector as a row or a column.
type Orientation int

const (
	// Row marks a horizontal (1×n) vector. It is the zero value.
	Row Orientation = iota
	// Column marks a vertical (n×1) vector.
	Column
)

// ---------- Formatting literals ----------
const (
	_fmtOpen      = "["
	_fmtClose     = "]"
	_fmtSep       = ", "
	_fmtColSuffix = "T"
)

// String returns "row" or "column".
func (o Orientation) String() string {
	switch o {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Valid reports whether o is one of Row or Column.
func (o Orientation) Valid() bool { return o == Row || o == Column }

// Vector is an ordered, fixed-length sequence of float64 values tagged with
// an Orientation. Neither the length nor the orientation changes after
// construction.
type Vector struct {
	orientation Orientation
	values      []float64 // private copy, len == Dimension()
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New builds a Vector holding a copy of values with the given orientation.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimension) and unknown tags
//     (ErrInvalidOrientation).
//   - Stage 2: copy values into a private buffer.
//
// Complexity:
//   - Time O(n), Space O(n).
func New(values []float64, o Orientation) (*Vector, error) {
	if len(values) == 0 {
		return nil, ErrInvalidDimension
	}
	if !o.Valid() {
		return nil, fmt.Errorf("New(%d): %w", int(o), ErrInvalidOrientation)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Vector{orientation: o, values: buf}, nil
}

// NewRow is shorthand for New(values, Row).
func NewRow(values ...float64) (*Vector, error) { return New(values, Row) }

// NewColumn is shorthand for New(values, Column).
func NewColumn(values ...float64) (*Vector, error) { return New(values, Column) }

// Dimension returns the fixed number of values. O(1).
func (v *Vector) Dimension() int { return len(v.values) }

// Orientation returns the tag fixed at construction. O(1).
func (v *Vector) Orientation() Orientation { return v.orientation }

// IsColumnVector reports whether v is tagged Column. O(1).
func (v *Vector) IsColumnVector() bool { return v.orientation == Column }

// AsList returns a copy of the values in order.
// Mutating the returned slice never affects v.
func (v *Vector) AsList() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)

	return out
}

// At returns the i-th value or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.values) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.values[i], nil
}

// Equal reports whether v and w share orientation, dimension and every value
// (exact comparison; NaN never equals NaN).
func (v *Vector) Equal(w *Vector) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.orientation != w.orientation {
		return false
	}

	return floats.Equal(v.values, w.values)
}

// String renders the values as "[a, b, c]"; column vectors get a trailing "T".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.values {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString(_fmtClose)
	if v.orientation == Column {
		sb.WriteString(_fmtColSuffix)
	}

	return sb.String()
}

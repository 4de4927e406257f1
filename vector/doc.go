// Package vector provides a fixed-length float64 Vector tagged with an
// orientation (row or column).
//
// The orientation never transposes data; it only records the intent of the
// vector so that consumers (see package matrix) can reject mixed row/column
// collections. A Vector owns a private copy of its values: constructors copy
// the input slice and AsList returns a fresh copy, so no caller can mutate a
// Vector after it has been built.
//
// Quick example:
//
//	v, _ := vector.NewRow(1, 2, 3)
//	v.Dimension()      // 3
//	v.IsColumnVector() // false
//	v.AsList()         // [1 2 3]
package vector

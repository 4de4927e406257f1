// Package linalg is a small dense linear-algebra kernel: a row-major float64
// matrix and an orientation-tagged vector, with construction, elementwise
// addition, scalar scaling, transposition and structural predicates.
//
// Under the hood, everything is organized under two subpackages:
//
//	vector/ — Vector with a fixed dimension and a Row/Column tag
//	matrix/ — Dense matrix, Add/Transpose/Equal, vector-list conversions,
//	          gonum interop
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromGrid([][]float64{{1, 2}, {3, 4}})
//	t, _ := matrix.Transpose(a)
//	s, _ := matrix.Add(a, t) // [[2 5] [5 8]]
//
// Matrix multiplication, inverses and decompositions are out of scope; use
// matrix.ToGonum to hand a matrix to gonum for those.
//
//	go get github.com/katalvlaran/linalg
package linalg

// Package matrix offers a dense, row-major float64 matrix and the handful of
// operations a small linear-algebra kernel needs.
//
// The matrix package provides:
//
//   - Dense, built from dimensions (NewDense), from a rectangular grid
//     (NewDenseFromGrid) or from a homogeneous list of vectors
//     (NewDenseFromVectors).
//   - Structural predicates IsSquare and IsDiagonal. IsDiagonal is strict:
//     every diagonal entry must be non-zero as well as every off-diagonal
//     entry zero.
//   - In-place mutation through Set and MultiplyByScalar only.
//   - Package-level Transpose, Add, SameDimensions, Equal and AsVectorList,
//     which never mutate their operands and always return fresh matrices.
//   - ToGonum/FromGonum bridges to gonum.org/v1/gonum/mat.
//
// Errors are sentinels (ErrInvalidDimension, ErrVectorTypeMismatch,
// ErrMatrixDimensionMismatch, ...) matched with errors.Is. Shape mismatches
// are reported as *DimensionMismatchError, which names the attempted
// operation.
//
// A Dense performs no internal locking. Callers that share one across
// goroutines must serialize Set and MultiplyByScalar themselves.
//
// Matrix multiplication is intentionally not provided; convert with ToGonum
// when a product is needed.
package matrix

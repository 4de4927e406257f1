// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM  matrix.Matrix
	sinkVs []*vector.Vector
	sinkB  bool
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			B := MustDense(b, n, n)
			RandomFill(b, A, 1337)
			RandomFill(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			RandomFill(b, A, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyByScalar(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			RandomFill(b, A, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				A.MultiplyByScalar(1.0000001)
			}
			sinkM = A
		})
	}
}

func BenchmarkIsDiagonal(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			for k := 0; k < n; k++ {
				MustSet(b, A, k, k, 1)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = A.IsDiagonal()
			}
		})
	}
}

func BenchmarkVectorRoundTrip(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			RandomFill(b, A, 3)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				vs, err := matrix.AsVectorList(A)
				if err != nil {
					b.Fatal(err)
				}
				m, err := matrix.NewDenseFromVectors(vs)
				if err != nil {
					b.Fatal(err)
				}
				sinkVs, sinkM = vs, m
			}
		})
	}
}

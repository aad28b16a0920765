// SPDX-License-Identifier: MIT

package ops_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/matrix/ops"
)

var (
	sinkM  *matrix.Dense[float64]
	sinkC  *matrix.Dense[complex128]
	sinkCs []complex128
	sinkV  *matrix.Vector[float64]
)

func benchDense(b *testing.B, r, c int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}
	for i := 0; i < min(r, c); i++ {
		data[i*c+i] += float64(r)
	}
	m, err := matrix.NewDense(r, c, data)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n, 404)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := ops.QR(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = f.R
			}
		})
	}
}

func BenchmarkHessenberg(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n, 606)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h, err := ops.Hessenberg(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = h
			}
		})
	}
}

func BenchmarkCharacteristicPolynomial(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 16, 32} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n, 707)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c, err := ops.CharacteristicPolynomial(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkCs = c
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n, 808)
			rhs, err := A.Col(0)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if sinkV, err = ops.Solve(A, rhs); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 32, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, n, 909)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := ops.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}

// SPDX-License-Identifier: MIT

package ops_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/matrix"
)

const tol = 1e-9

func mustRows[T matrix.Number](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

func mustColumns[T matrix.Number](t *testing.T, cols ...[]T) []*matrix.Vector[T] {
	t.Helper()
	out := make([]*matrix.Vector[T], len(cols))
	for i, c := range cols {
		v, err := matrix.NewVector(c, matrix.Column)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

func mustMul[T matrix.Number](t *testing.T, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

func requireClose[T matrix.Number](t *testing.T, want, got *matrix.Dense[T], eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.Truef(t, matrix.AllClose(want, got, eps), "want:\n%sgot:\n%s", want, got)
}

// requireCoeffs compares coefficient vectors with a tolerance relative to each entry.
func requireCoeffs(t *testing.T, want, got []complex128, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		d := eps * max(1, cmplx.Abs(want[i]))
		require.InDeltaf(t, real(want[i]), real(got[i]), d, "re c%d", i)
		require.InDeltaf(t, imag(want[i]), imag(got[i]), d, "im c%d", i)
	}
}

func randomDense(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense[float64] {
	t.Helper()
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.Float64()*10 - 5
	}
	m, err := matrix.NewDense(r, c, data)
	require.NoError(t, err)

	return m
}

func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.RawData())
}

// horner evaluates Σ c_i·x^i.
func horner(coeffs []complex128, x complex128) complex128 {
	var acc complex128
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}

	return acc
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Bridge Dense[float64] to gonum's mat.Dense, which serves as the numeric oracle.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// tol is the default numeric tolerance for floating comparisons.
const tol = 1e-9

// MustRows builds a *Dense from a 2-D array or fails the test.
func MustRows[T matrix.Number](t *testing.T, rows [][]T, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustVector builds a *Vector or fails the test.
func MustVector[T matrix.Number](t *testing.T, orient matrix.Orientation, vals ...T) *matrix.Vector[T] {
	t.Helper()
	v, err := matrix.NewVector(vals, orient)
	require.NoError(t, err)

	return v
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Number](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T matrix.Number](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	id, err := matrix.NewIdentity[T](n)
	require.NoError(t, err)

	return id
}

// RequireClose asserts equal shapes and entrywise closeness within eps.
func RequireClose[T matrix.Number](t *testing.T, want, got *matrix.Dense[T], eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.Truef(t, matrix.AllClose(want, got, eps), "want:\n%sgot:\n%s", want, got)
}

// RandomDense returns an r×c matrix with entries in [-5,5) from a seeded source.
func RandomDense(t *testing.T, rng *rand.Rand, r, c int) *matrix.Dense[float64] {
	t.Helper()
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.Float64()*10 - 5
	}
	m, err := matrix.NewDense(r, c, data)
	require.NoError(t, err)

	return m
}

// ToGonum copies a real Dense into gonum's representation.
func ToGonum(m *matrix.Dense[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.RawData())
}

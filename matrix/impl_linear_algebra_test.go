// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})

	s, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{6, 8}, {10, 12}}, s.Values())

	d, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 4}, {4, 4}}, d.Values())

	_, err = matrix.Add(a, MustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScaleNeg(t *testing.T) {
	a := MustRows(t, [][]complex128{{1, complex(0, 1)}})
	require.Equal(t, [][]complex128{{complex(0, 2), -2}}, matrix.Scale(a, complex(0, 2)).Values())
	require.Equal(t, [][]complex128{{-1, complex(0, -1)}}, matrix.Neg(a).Values())
}

func TestMul(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.Values())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := RandomDense(t, rng, 4, 6)
	b := RandomDense(t, rng, 6, 3)

	got, err := matrix.Product(a, b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(ToGonum(a), ToGonum(b))
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), tol)
		}
	}
}

func TestMul_ComplexIdentity(t *testing.T) {
	a := MustRows(t, [][]complex128{{complex(1, 1), 2}, {3, complex(0, -4)}})
	p, err := matrix.Mul(a, MustIdentity[complex128](t, 2))
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, p))
}

func TestTrace(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	require.Equal(t, 5.0, tr)

	_, err = matrix.Trace(MustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNotQuadratic)
}

// (M+N)ᵀ == Mᵀ+Nᵀ
func TestTransposeDistributesOverAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, shape := range [][2]int{{1, 1}, {2, 3}, {4, 2}, {5, 5}} {
		m := RandomDense(t, rng, shape[0], shape[1])
		n := RandomDense(t, rng, shape[0], shape[1])

		sum, err := matrix.Add(m, n)
		require.NoError(t, err)
		rhs, err := matrix.Add(m.Transpose(), n.Transpose())
		require.NoError(t, err)
		require.True(t, matrix.Equal(sum.Transpose(), rhs))
	}
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}})
	b := MustRows(t, [][]float64{{1, 2 + 1e-12}})
	require.False(t, matrix.Equal(a, b))
	require.True(t, matrix.AllClose(a, b, 1e-9))
	require.False(t, matrix.AllClose(a, MustRows(t, [][]float64{{1}, {2}}), 1))
}

func TestOptionsInheritedByDerived(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithEpsilon(0.5), matrix.WithPivotTolerance(1e-3))
	require.Equal(t, 0.5, a.Transpose().Options().Epsilon())
	p, err := matrix.Mul(a, MustIdentity[float64](t, 2))
	require.NoError(t, err)
	require.Equal(t, 1e-3, p.Options().PivotTolerance())
	s, err := a.SubMatrix(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.5, s.Options().Epsilon())
}

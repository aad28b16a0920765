// SPDX-License-Identifier: MIT

package ops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/matrix/ops"
)

func TestLinearlyIndependent(t *testing.T) {
	cases := []struct {
		name    string
		vectors [][]float64
		want    bool
		columns bool // ColumnsIndependent
	}{
		{"unit basis", [][]float64{{1, 0}, {0, 1}}, true, true},
		{"collinear", [][]float64{{1, 2}, {2, 4}}, false, false},
		{"dependent 3x3", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, false, false},
		{"independent 3x3", [][]float64{{2, 0, 1}, {1, 3, 0}, {0, 1, 4}}, true, true},
		{"zero vector", [][]float64{{1, 0}, {0, 0}}, false, false},
		{"fewer than dimension", [][]float64{{1, 0, 0}, {0, 1, 0}}, false, true},
		{"single vector", [][]float64{{3, 4}}, false, true},
		{"more than dimension", [][]float64{{1, 0}, {0, 1}, {1, 1}}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			vs := mustColumns(t, tc.vectors...)
			got, err := ops.LinearlyIndependent(vs)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			got, err = ops.ColumnsIndependent(vs)
			require.NoError(t, err)
			require.Equal(t, tc.columns, got)
		})
	}
}

func TestLinearlyIndependent_Complex(t *testing.T) {
	vs := mustColumns(t, []complex128{1, complex(0, 2)}, []complex128{complex(0, 1), 3})
	got, err := ops.LinearlyIndependent(vs)
	require.NoError(t, err)
	require.True(t, got)

	// second vector is i times the first
	vs = mustColumns(t, []complex128{1, 2}, []complex128{complex(0, 1), complex(0, 2)})
	got, err = ops.LinearlyIndependent(vs)
	require.NoError(t, err)
	require.False(t, got)
}

// an orthonormal pair in C³ is independent, but only as columns: R is 2×2
// while the packed matrix is 3×2
func TestLinearlyIndependent_FewerThanDimension(t *testing.T) {
	vs := mustColumns(t, []complex128{1, 0, 0}, []complex128{0, 0, 1})
	got, err := ops.LinearlyIndependent(vs)
	require.NoError(t, err)
	require.False(t, got)

	got, err = ops.ColumnsIndependent(vs)
	require.NoError(t, err)
	require.True(t, got)

	a, err := matrix.FromColumns(vs)
	require.NoError(t, err)
	require.False(t, a.IsQuadratic())
	f, err := ops.QR(a)
	require.NoError(t, err)
	require.True(t, f.R.IsQuadratic())
}

func TestLinearlyIndependent_Errors(t *testing.T) {
	_, err := ops.LinearlyIndependent[float64](nil)
	require.ErrorIs(t, err, matrix.ErrEmptyInput)

	_, err = ops.LinearlyIndependent(mustColumns(t, []float64{1, 2}, []float64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ops.ColumnsIndependent([]*matrix.Vector[float64]{nil})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

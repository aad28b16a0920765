// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// DeterminantSuite groups determinant, LUP and fallback checks.
type DeterminantSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *DeterminantSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

func TestDeterminantSuite(t *testing.T) {
	suite.Run(t, new(DeterminantSuite))
}

func (s *DeterminantSuite) TestSmallKnownValues() {
	t := s.T()
	cases := []struct {
		rows [][]float64
		want float64
	}{
		{[][]float64{{7}}, 7},
		{[][]float64{{1, 2}, {3, 4}}, -2},
		{[][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}}, 24},
		{[][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
	}
	for _, tc := range cases {
		d, err := MustRows(t, tc.rows).Determinant()
		require.NoError(t, err)
		require.InDelta(t, tc.want, d, tol)
	}
}

func (s *DeterminantSuite) TestNotQuadratic() {
	_, err := MustRows(s.T(), [][]float64{{1, 2, 3}, {4, 5, 6}}).Determinant()
	require.ErrorIs(s.T(), err, matrix.ErrNotQuadratic)
}

func (s *DeterminantSuite) TestAgainstGonum() {
	t := s.T()
	for n := 2; n <= 7; n++ {
		m := RandomDense(t, s.rng, n, n)
		got, err := m.Determinant()
		require.NoError(t, err)
		want := mat.Det(ToGonum(m))
		require.InDelta(t, want, got, 1e-8*max(1, abs(want)))
	}
}

// |M| == |Mᵀ|
func (s *DeterminantSuite) TestTransposeInvariant() {
	t := s.T()
	for n := 1; n <= 6; n++ {
		m := RandomDense(t, s.rng, n, n)
		d, err := m.Determinant()
		require.NoError(t, err)
		dt, err := m.Transpose().Determinant()
		require.NoError(t, err)
		require.InDelta(t, d, dt, 1e-9*max(1, abs(d)))
	}
}

func (s *DeterminantSuite) TestComplex() {
	t := s.T()
	m := MustRows(t, [][]complex128{
		{complex(1, 1), 2},
		{complex(0, 3), complex(4, -1)},
	})
	// (1+i)(4−i) − 2·3i = 5 + 3i − 6i = 5 − 3i
	d, err := m.Determinant()
	require.NoError(t, err)
	require.InDelta(t, 5.0, real(d), tol)
	require.InDelta(t, -3.0, imag(d), tol)
}

// A zero leading column forces the cofactor path; permuting rows so that
// elimination succeeds must agree up to the permutation sign.
func (s *DeterminantSuite) TestFallbackMatchesPermutedLUP() {
	t := s.T()
	// Leading column is entirely zero.
	singularPivot := MustRows(t, [][]float64{
		{0, 0, 2},
		{0, 3, 1},
		{0, 4, 5},
	})
	require.False(t, matrix.LUPSucceeds_TestOnly(singularPivot, matrix.DefaultPivotTolerance))
	d, err := singularPivot.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	// Leading column numerically tiny: LUP rejects it under a loose tolerance.
	tiny := [][]float64{
		{1e-20, 2, 3},
		{1e-20, 5, 6},
		{1e-20, 8, 10},
	}
	loose := MustRows(t, tiny, matrix.WithPivotTolerance(1e-12))
	require.False(t, matrix.LUPSucceeds_TestOnly(loose, 1e-12))
	dCof, err := loose.Determinant()
	require.NoError(t, err)

	strict := MustRows(t, tiny, matrix.WithPivotTolerance(0))
	require.True(t, matrix.LUPSucceeds_TestOnly(strict, 0))
	dLUP, err := strict.Determinant()
	require.NoError(t, err)
	// det = 1e-20 · det([[1,2,3],[1,5,6],[1,8,10]]) = 1e-20 · 3
	require.InDelta(t, 3e-20, dCof, 1e-32)
	require.InDelta(t, dCof, dLUP, 1e-30)
}

func (s *DeterminantSuite) TestCofactorAgreesWithLUP() {
	t := s.T()
	for n := 1; n <= 6; n++ {
		m := RandomDense(t, s.rng, n, n)
		d, err := m.Determinant()
		require.NoError(t, err)
		require.InDelta(t, d, matrix.CofactorDeterminant_TestOnly(m), 1e-8*max(1, abs(d)))
	}
}

func (s *DeterminantSuite) TestZeroPivotFallbackRegularMatrix() {
	t := s.T()
	// leading pivot exactly zero but a nonzero below: pivoting handles it
	m := MustRows(t, [][]float64{{0, 1}, {1, 0}})
	require.True(t, matrix.LUPSucceeds_TestOnly(m, matrix.DefaultPivotTolerance))
	d, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, -1.0, d)

	// same matrix with permuted rows (no swap needed) has the opposite sign
	p := MustRows(t, [][]float64{{1, 0}, {0, 1}})
	dp, err := p.Determinant()
	require.NoError(t, err)
	require.Equal(t, -d, dp)

	// zero leading pivot through the cofactor kernel vs. swapped rows through LUP
	zeroLead := MustRows(t, [][]float64{{0, 2, 1}, {3, 1, 4}, {5, 2, 2}})
	swapped := MustRows(t, [][]float64{{3, 1, 4}, {0, 2, 1}, {5, 2, 2}})
	require.Equal(t, 29.0, matrix.CofactorDeterminant_TestOnly(zeroLead))
	dSwapped, err := swapped.Determinant()
	require.NoError(t, err)
	require.InDelta(t, -29.0, dSwapped, tol)
}

func (s *DeterminantSuite) TestLUPFactors() {
	t := s.T()
	m := MustRows(t, [][]float64{
		{2, 1, 1},
		{4, -6, 0},
		{-2, 7, 2},
	})
	f, err := matrix.LUP(m)
	require.NoError(t, err)
	require.Equal(t, 3, f.Size())

	pa, err := matrix.Mul(f.P(), m)
	require.NoError(t, err)
	lu, err := matrix.Mul(f.L(), f.U())
	require.NoError(t, err)
	RequireClose(t, pa, lu, tol)

	d, err := m.Determinant()
	require.NoError(t, err)
	require.InDelta(t, d, f.Determinant(), tol)
	require.Equal(t, 1, f.Perm()[0], "largest magnitude in column 0 is row 1")

	_, err = matrix.LUP(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
	_, err = matrix.LUP(MustRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNotQuadratic)
}

func (s *DeterminantSuite) TestMemoisedConcurrently() {
	t := s.T()
	m := RandomDense(t, s.rng, 5, 5)
	want, err := m.Determinant()
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = m.Determinant()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.Equal(t, want, r)
	}
}

func (s *DeterminantSuite) TestFallbackIsLogged() {
	t := s.T()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := MustRows(t, [][]float64{{0, 0}, {0, 1}}, matrix.WithLogger(logger))
	d, err := m.Determinant()
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
	require.Contains(t, buf.String(), "cofactor expansion")

	buf.Reset()
	_, err = MustRows(t, [][]float64{{1, 0}, {0, 1}}, matrix.WithLogger(logger)).Determinant()
	require.NoError(t, err)
	require.Empty(t, buf.String())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

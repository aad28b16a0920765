// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/lvlinalg/matrix"
)

// Solve returns x with A·x = b, using the pivoted factorisation P·A = L·U.
// Blueprint:
//
//	Stage 1 (Validate): A quadratic, |b| == n.
//	Stage 2 (Decompose): matrix.LUP (partial pivoting, A's pivot tolerance).
//	Stage 3 (Execute): forward substitution L·y = P·b, then back substitution U·x = y.
//
// The result keeps b's orientation.
//
// Errors:
//   - ErrNilMatrix, ErrNotQuadratic.
//   - ErrDimensionMismatch if len(b) != n.
//   - ErrNotInvertible if the decomposition is not successful.
//
// Complexity: O(n³) for the factorisation, O(n²) per right-hand side.
func Solve[T matrix.Number](a *matrix.Dense[T], b *matrix.Vector[T]) (*matrix.Vector[T], error) {
	// Stage 1: Validate operands
	if err := matrix.ValidateQuadratic(a); err != nil {
		return nil, opsErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	// Stage 2: Decompose
	f, err := matrix.LUP(a)
	if err != nil {
		return nil, opsErrorf(opSolve, err)
	}

	// Stage 3: Substitute
	s := newSubstitution(f)

	return matrix.NewVector(s.solve(b.Values()), b.Orientation())
}

// substitution caches the flat factors of one LUP result.
type substitution[T matrix.Number] struct {
	n    int
	l, u []T
	perm []int
}

func newSubstitution[T matrix.Number](f *matrix.LUPResult[T]) *substitution[T] {
	return &substitution[T]{
		n:    f.Size(),
		l:    f.L().RawData(),
		u:    f.U().RawData(),
		perm: f.Perm(),
	}
}

// solve runs forward then backward substitution for one right-hand side.
// U's diagonal is nonzero for any successful factorisation.
func (s *substitution[T]) solve(b []T) []T {
	var (
		n    = s.n
		y    = make([]T, n) // forward result
		x    = make([]T, n) // backward result
		sum  T
		i, k int
	)
	// Forward substitution: L·y = P·b (unit diagonal)
	for i = 0; i < n; i++ {
		sum = b[s.perm[i]]
		for k = 0; k < i; k++ {
			sum -= s.l[i*n+k] * y[k]
		}
		y[i] = sum
	}

	// Backward substitution: U·x = y
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= s.u[i*n+k] * x[k]
		}
		x[i] = sum / s.u[i*n+i]
	}

	return x
}

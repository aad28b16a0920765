// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// Hessenberg reduces a quadratic matrix to upper-Hessenberg form (zero below the
// first subdiagonal) by a similarity transform built from plane rotations, so
// the eigenvalues and characteristic polynomial are preserved.
// Blueprint:
//
//	Stage 1 (Validate): m quadratic.
//	Stage 2 (Prepare): lift every entry to complex128 (working copy).
//	Stage 3 (Execute): for column j = 0..n-3 and row i = j+2..n-1 with
//	                   a[i,j] != 0, rotate rows (j+1, i) so that a[i,j]
//	                   vanishes, then rotate columns (j+1, i) by the same
//	                   rotation to complete G·A·Gᵀ.
//	Stage 4 (Finalize): wrap the buffer, inheriting m's options.
//
// Rotation for pivot p = a[j+1,j] and target x = a[i,j]:
//
//	p = 0 or |p| < ε·|x|:  c = 0, s = 1, w = -x
//	otherwise:              w = ±sqrt(p² + x²) with Re(conj(p)·w) ≥ 0,
//	                        c = p/w, s = -x/w
//
// where ε is m's pivot tolerance. For real entries the root choice reduces to
// w = sign(p)·sqrt(p² + x²). Since w² = p² + x², both cases satisfy
// c² + s² = 1 without conjugation, so Gᵀ is the inverse of G in either domain.
//
// Errors:
//   - ErrNilMatrix, ErrNotQuadratic.
//   - ErrDivisionByZero if p² + x² vanishes for Complex entries (e.g. p = 1, x = i).
//
// Complexity: O(n³) time, O(n²) memory.
func Hessenberg[T matrix.Number](m *matrix.Dense[T]) (*matrix.Dense[complex128], error) {
	// Stage 1: Validate quadratic shape
	if err := matrix.ValidateQuadratic(m); err != nil {
		return nil, opsErrorf(opHessenberg, err)
	}

	// Stage 2: Prepare complex working copy
	var (
		n   = m.Rows()
		a   = matrix.Lift(m).RawData()
		eps = m.Options().PivotTolerance()
	)

	// Stage 3: Eliminate below the subdiagonal
	var (
		i, j, k   int
		p, x, w   complex128 // pivot, target, rotated pivot
		c, s, h   complex128 // rotation and swap temp
		rotations int
		err       error
	)
	for j = 0; j < n-2; j++ {
		for i = j + 2; i < n; i++ {
			x = a[i*n+j]
			if x == 0 {
				continue
			}
			p = a[(j+1)*n+j]
			if p == 0 || scalar.Abs(p) < eps*scalar.Abs(x) {
				c, s, w = 0, 1, -x
			} else {
				// w² = p² + x², on the branch facing p
				w = scalar.Sqrt(p*p + x*x)
				if real(scalar.Conj(p)*w) < 0 {
					w = -w
				}
				if c, err = scalar.Div(p, w); err != nil {
					return nil, fmt.Errorf("%s: rotation (%d,%d): %w", opHessenberg, j+1, i, err)
				}
				s = -x / w
			}

			// rows j+1 and i; columns left of j are already zero in both rows
			for k = j + 1; k < n; k++ {
				h = c*a[(j+1)*n+k] - s*a[i*n+k]
				a[i*n+k] = s*a[(j+1)*n+k] + c*a[i*n+k]
				a[(j+1)*n+k] = h
			}
			a[(j+1)*n+j] = w
			a[i*n+j] = 0

			// columns j+1 and i over every row
			for k = 0; k < n; k++ {
				h = c*a[k*n+j+1] - s*a[k*n+i]
				a[k*n+i] = s*a[k*n+j+1] + c*a[k*n+i]
				a[k*n+j+1] = h
			}
			rotations++
		}
	}
	if l := m.Options().Logger(); l != nil {
		l.Debug("hessenberg: reduced", "n", n, "rotations", rotations)
	}

	// Stage 4: Finalize
	return matrix.NewDense(n, n, a, matrix.WithOptions(m.Options()))
}

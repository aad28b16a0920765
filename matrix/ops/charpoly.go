// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/lvlinalg/matrix"
)

// CharacteristicPolynomial returns the coefficients of det(λI − M), computed by
// the Faddeev-LeVerrier recursion over the lifted matrix H:
//
//	M_1 = I,                        c_{n-1} = -tr(H)
//	M_k = H·M_{k-1} + c_{n-k+1}·I,  c_{n-k} = -(1/k)·tr(H·M_k),  k = 2..n
//
// The result has length n+1; index i holds the coefficient of λ^i and the
// leading coefficient c_n is 1.
//
// Errors: ErrNilMatrix, ErrNotQuadratic.
//
// Complexity: O(n⁴) time (n matrix products), O(n²) memory.
func CharacteristicPolynomial[T matrix.Number](m *matrix.Dense[T]) ([]complex128, error) {
	if err := matrix.ValidateQuadratic(m); err != nil {
		return nil, opsErrorf(opCharPoly, err)
	}

	return faddeevLeVerrier(matrix.Lift(m))
}

// ReducedCharacteristicPolynomial reduces m to Hessenberg form first and then
// runs the same recursion. The coefficients agree with CharacteristicPolynomial
// up to rounding.
//
// Errors: as Hessenberg.
func ReducedCharacteristicPolynomial[T matrix.Number](m *matrix.Dense[T]) ([]complex128, error) {
	h, err := Hessenberg(m)
	if err != nil {
		return nil, opsErrorf(opCharPoly, err)
	}

	return faddeevLeVerrier(h)
}

// faddeevLeVerrier runs the recursion on a validated quadratic h.
func faddeevLeVerrier(h *matrix.Dense[complex128]) ([]complex128, error) {
	// Stage 1: Prepare M_1 = I and the coefficient buffer
	var (
		n      = h.Rows()
		coeffs = make([]complex128, n+1)
		id, mk *matrix.Dense[complex128]
		hm     *matrix.Dense[complex128]
		tr     complex128
		err    error
		k      int
	)
	if id, err = matrix.IdentityLike(h); err != nil {
		return nil, opsErrorf(opCharPoly, err)
	}
	mk = id
	coeffs[n] = 1
	tr, _ = matrix.Trace(h)
	coeffs[n-1] = -tr

	// Stage 2: Recurse k = 2..n
	for k = 2; k <= n; k++ {
		if hm, err = matrix.Mul(h, mk); err != nil {
			return nil, opsErrorf(opCharPoly, err)
		}
		if mk, err = matrix.Add(hm, matrix.Scale(id, coeffs[n-k+1])); err != nil {
			return nil, opsErrorf(opCharPoly, err)
		}
		if hm, err = matrix.Mul(h, mk); err != nil {
			return nil, opsErrorf(opCharPoly, err)
		}
		tr, _ = matrix.Trace(hm)
		coeffs[n-k] = -tr / complex(float64(k), 0)
	}

	return coeffs, nil
}

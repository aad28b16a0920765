// SPDX-License-Identifier: MIT

// Package matrix - structural predicates.
//
// All comparisons use the matrix epsilon (WithEpsilon); the default 0 means
// exact elementwise equality. Rectangular input reports false everywhere.
//
// The Hermitian family (IsHermitian, IsSkewHermitian, IsUnitary) is defined
// for the Complex domain only: Real matrices report false unconditionally.

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// IsSymmetric reports m == mᵀ.
func (m *Dense[T]) IsSymmetric() bool {
	return m.IsQuadratic() && AllClose(m, m.Transpose(), m.opts.eps)
}

// IsSkewSymmetric reports m == −mᵀ.
func (m *Dense[T]) IsSkewSymmetric() bool {
	return m.IsQuadratic() && AllClose(m, Neg(m.Transpose()), m.opts.eps)
}

// IsOrthogonal reports m·mᵀ == I.
func (m *Dense[T]) IsOrthogonal() bool {
	return m.IsQuadratic() && m.isIdentityProduct(m.Transpose())
}

// IsHermitian reports m == m^H (Complex only).
func (m *Dense[T]) IsHermitian() bool {
	if scalar.IsRealDomain[T]() || !m.IsQuadratic() {
		return false
	}

	return AllClose(m, m.ConjugateTranspose(), m.opts.eps)
}

// IsSkewHermitian reports m == −m^H (Complex only).
func (m *Dense[T]) IsSkewHermitian() bool {
	if scalar.IsRealDomain[T]() || !m.IsQuadratic() {
		return false
	}

	return AllClose(m, Neg(m.ConjugateTranspose()), m.opts.eps)
}

// IsUnitary reports m·m^H == I (Complex only).
func (m *Dense[T]) IsUnitary() bool {
	if scalar.IsRealDomain[T]() || !m.IsQuadratic() {
		return false
	}

	return m.isIdentityProduct(m.ConjugateTranspose())
}

// IsComplexValued reports whether any entry has a nonzero imaginary part.
func (m *Dense[T]) IsComplexValued() bool {
	for _, v := range m.data {
		if scalar.Im(v) != 0 {
			return true
		}
	}

	return false
}

// isIdentityProduct reports m·other == I within eps.
func (m *Dense[T]) isIdentityProduct(other *Dense[T]) bool {
	p, err := Mul(m, other)
	if err != nil {
		return false
	}
	id, _ := NewIdentity[T](m.r)

	return AllClose(p, id, m.opts.eps)
}

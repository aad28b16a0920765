// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// ZerosLike returns a zero matrix with m's shape and options.
func ZerosLike[T Number](m *Dense[T]) *Dense[T] {
	return m.derive(m.r, m.c)
}

// IdentityLike returns I_n with n = m.Rows(), inheriting m's options.
//
// Errors:
//   - ErrNotQuadratic if m is rectangular.
func IdentityLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateQuadratic(m); err != nil {
		return nil, err
	}

	id := m.derive(m.r, m.r)
	for i := 0; i < m.r; i++ {
		id.data[i*m.r+i] = 1
	}

	return id, nil
}

// ---------- Algebra facades ----------

// Sum is an alias of Add.
func Sum[T Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias of Sub.
func Diff[T Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias of Mul.
func Product[T Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// ScaleBy is an alias of Scale.
func ScaleBy[T Number](m *Dense[T], alpha T) *Dense[T] { return Scale(m, alpha) }

// Tr is a nil-safe alias of (*Dense).Transpose.
func Tr[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Transpose(), nil
}

// DeterminantOf is a nil-safe alias of (*Dense).Determinant.
func DeterminantOf[T Number](m *Dense[T]) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero T

		return zero, matrixErrorf(opDeterminant, err)
	}

	return m.Determinant()
}

// InverseOf is a nil-safe alias of (*Dense).Inverse.
func InverseOf[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.Inverse()
}

// RankOf is a nil-safe alias of (*Dense).Rank.
func RankOf[T Number](m *Dense[T]) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return m.Rank(), nil
}

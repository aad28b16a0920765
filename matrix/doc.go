// Package matrix offers dense linear algebra over the Real (float64) and
// Complex (complex128) domains with one generic implementation.
//
// The matrix package provides:
//
//   - Dense[T], an immutable row-major matrix with constructors for explicit
//     arrays, zero/identity, diagonal, column and plane-rotation matrices.
//   - Vector[T], an oriented (row or column) vector with dot product,
//     magnitude, normalization, cross product, projection and
//     collinearity/orthogonality tests.
//   - Determinant by LUP with partial pivoting, falling back to cofactor
//     expansion when a pivot column is numerically empty; memoised per matrix.
//   - Inverse by adjugate, Rank by recursive minor search, and structural
//     predicates (symmetric, orthogonal, Hermitian, unitary, regular).
//
// Decompositions and derived algorithms (QR, Hessenberg form, characteristic
// polynomial, linear independence, LUP solve) live in matrix/ops.
//
// The recursive paths (cofactor fallback, rank) grow factorially; keep inputs
// small (n ≤ ~10) when they are expected to trigger.
//
// See the examples in this package and ops for usage patterns.
package matrix

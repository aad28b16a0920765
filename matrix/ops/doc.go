// SPDX-License-Identifier: MIT

// Package ops hosts the decompositions and derived algorithms built on top of
// the matrix package: QR (Gram-Schmidt), reduction to upper-Hessenberg form,
// the characteristic polynomial (Faddeev-LeVerrier), linear independence of a
// vector family, and LUP-based solving and inversion.
//
// Every routine is generic over the scalar domain (float64 or complex128).
// Hessenberg and the characteristic polynomial are defined in the Complex
// domain only; Real inputs are lifted entry by entry first, so their results
// are always *matrix.Dense[complex128] or []complex128.
//
// Inputs are never mutated. Results inherit the options (pivot tolerance,
// epsilon, logger) of the input matrix.
//
// Errors are the matrix sentinels, wrapped with the operation name:
//
//	ErrNilMatrix, ErrNotQuadratic, ErrDimensionMismatch, ErrEmptyInput,
//	ErrDivisionByZero, ErrNotInvertible.
//
// Complexity summary:
//
//	QR                        O(r·c²)
//	Hessenberg                O(n³)
//	CharacteristicPolynomial  O(n⁴)
//	Solve, Inverse            O(n³)
package ops

import "fmt"

// operation tags used as error prefixes
const (
	opQR           = "QR"
	opHessenberg   = "Hessenberg"
	opCharPoly     = "CharacteristicPolynomial"
	opIndependent  = "LinearlyIndependent"
	opColumnsIndep = "ColumnsIndependent"
	opSolve        = "Solve"
	opInverse      = "Inverse"
)

// opsErrorf prefixes err with the operation tag.
func opsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its ops subpackage. All algorithms MUST return these sentinels
// (optionally wrapped with an operation tag) and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// with matrixErrorf(op, ErrX) so the message reads "Op: matrix: ..." while
// errors.Is still matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> not quadratic -> numeric
// (division by zero, zero vector, not invertible).

var (
	// ErrBadShape is returned when input rows have unequal lengths (ragged 2-D input).
	ErrBadShape = errors.New("matrix: ragged rows")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive,
	// or that an input array is empty, or that a transformation would produce one.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column, rotation pivot) is outside bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, Mul where a.Cols != b.Rows, cross product
	// outside three dimensions, or vectors of different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotQuadratic signals that a square matrix was required but the input wasn't.
	ErrNotQuadratic = errors.New("matrix: matrix is not quadratic")

	// ErrNotInvertible is returned by Inverse (and Solve) when the determinant is zero.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrZeroVector is returned when a direction is requested from a zero vector
	// (Normalize, Projection onto zero).
	ErrZeroVector = errors.New("matrix: zero vector")

	// ErrEmptyInput is returned when an operation needs at least one vector.
	ErrEmptyInput = errors.New("matrix: empty input")

	// ErrNaNInf signals a NaN or ±Inf entry under WithValidateNaNInf.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense or *Vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Scalar-domain sentinels, re-exported so one import suffices at call sites.
// They are the same values, so errors.Is matches either name.
var (
	// ErrDivisionByZero aliases scalar.ErrDivisionByZero.
	ErrDivisionByZero = scalar.ErrDivisionByZero

	// ErrUndefinedResult aliases scalar.ErrUndefinedResult.
	ErrUndefinedResult = scalar.ErrUndefinedResult
)

// BACKWARD-COMPATIBILITY ALIASES.

// ErrNonSquare historically named the quadratic-shape violation.
var ErrNonSquare = ErrNotQuadratic // Deprecated: use ErrNotQuadratic.

// ErrSingular historically named the singular-matrix condition.
var ErrSingular = ErrNotInvertible // Deprecated: use ErrNotInvertible.

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

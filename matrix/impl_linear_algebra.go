// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise and product kernels on Dense[T]:
// addition, subtraction, negation, scalar scaling, matrix multiplication,
// matrix-vector products, trace and equality. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare operation tags shared by every kernel for uniform error reporting.
//   - Keep every kernel allocation-once and loop-order deterministic.
//
// Notes:
//   - Results inherit the options of the left operand.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewDense       = "NewDense"
	opFromRows       = "FromRows"
	opFromColumns    = "FromColumns"
	opFromRowVectors = "FromRowVectors"
	opRotation       = "NewRotation"
	opVector         = "NewVector"
	opAdd            = "Add"
	opSub            = "Sub"
	opMul            = "Mul"
	opMatVec         = "MatVec"
	opVecMat         = "VecMat"
	opTrace          = "Trace"
	opDot            = "Dot"
	opCross          = "CrossProduct"
	opNormalize      = "Normalize"
	opProjection     = "Projection"
	opDeterminant    = "Determinant"
	opLUP            = "LUP"
	opInverse        = "Inverse"
	opRank           = "Rank"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, −1}.
// Internal helper for Add/Sub to share validation, allocation, and the flat loop.
//
// Determinism:
//   - Single flat slice walk 0..(r*c−1).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := a.derive(a.r, a.c)
	for k := range res.data {
		res.data[k] = a.data[k] + sign*b.data[k]
	}

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, scalar.One[T](), opAdd)
}

// Sub returns a − b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, -scalar.One[T](), opSub)
}

// Scale returns alpha·m.
func Scale[T Number](m *Dense[T], alpha T) *Dense[T] {
	res := m.derive(m.r, m.c)
	for k, v := range m.data {
		res.data[k] = alpha * v
	}

	return res
}

// Neg returns −m.
func Neg[T Number](m *Dense[T]) *Dense[T] {
	return Scale(m, -scalar.One[T]())
}

// Mul computes the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (a.Cols == b.Rows).
//   - Stage 2: i→k→j loop over flat buffers; zero a[i,k] rows are skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := a.derive(aRows, bCols)
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes M·v for a Column vector v; the result is a Column vector of
// length Rows.
//
// Errors:
//   - ErrDimensionMismatch if v is a Row vector or len(v) != Cols.
func MatVec[T Number](m *Dense[T], v *Vector[T]) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if v.orient != Column {
		return nil, fmt.Errorf("%s: row vector on the right: %w", opMatVec, ErrDimensionMismatch)
	}
	out := make([]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = dot(m.data[i*m.c:(i+1)*m.c], v.values)
	}

	return &Vector[T]{values: out, orient: Column}, nil
}

// VecMat computes v·M for a Row vector v; the result is a Row vector of
// length Cols.
//
// Errors:
//   - ErrDimensionMismatch if v is a Column vector or len(v) != Rows.
func VecMat[T Number](v *Vector[T], m *Dense[T]) (*Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	if v.orient != Row {
		return nil, fmt.Errorf("%s: column vector on the left: %w", opVecMat, ErrDimensionMismatch)
	}
	out := make([]T, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		vi := v.values[i]
		for j = 0; j < m.c; j++ {
			out[j] += vi * m.data[i*m.c+j]
		}
	}

	return &Vector[T]{values: out, orient: Row}, nil
}

// Trace returns Σ m[i,i].
//
// Errors:
//   - ErrNotQuadratic.
func Trace[T Number](m *Dense[T]) (T, error) {
	if err := ValidateQuadratic(m); err != nil {
		return scalar.Zero[T](), matrixErrorf(opTrace, err)
	}

	return m.trace(), nil
}

// trace sums the diagonal of a validated quadratic matrix.
func (m *Dense[T]) trace() T {
	var s T
	var i int
	for i = 0; i < m.r; i++ {
		s += m.data[i*m.c+i]
	}

	return s
}

// Equal reports identical shape and exactly equal entries.
func Equal[T Number](a, b *Dense[T]) bool {
	return AllClose(a, b, 0)
}

// AllClose reports identical shape and |a_ij − b_ij| ≤ tol for every entry.
// tol = 0 is exact equality.
func AllClose[T Number](a, b *Dense[T], tol float64) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !scalar.Close(a.data[k], b.data[k], tol) {
			return false
		}
	}

	return true
}

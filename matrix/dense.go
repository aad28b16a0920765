// SPDX-License-Identifier: MIT
// Package matrix provides the generic dense matrix Dense[T] over the Real
// (float64) and Complex (complex128) domains, together with its constructors.
//
// Purpose:
//   - One concrete, row-major, immutable matrix type shared by both domains.
//   - Constructors for every supported shape: explicit 2-D array, flat data,
//     zero/identity, diagonal, column, plane rotation, vector families.
//
// Invariants:
//   - r ≥ 1, c ≥ 1, len(data) == r*c (rectangular by construction).
//   - No public setter: every transformation returns a new *Dense.
//   - The determinant is memoised once per instance (sync.Once), so concurrent
//     readers never race on the cache.

package matrix

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// Dense is a row-major r×c matrix over T.
type Dense[T Number] struct {
	r, c int     // dimensions (both ≥ 1)
	data []T     // flat row-major storage, len == r*c
	opts Options // numeric policy, inherited by derived matrices

	detOnce sync.Once // guards the memoised determinant
	det     T         // determinant value once published
}

// newDense wraps data without copying; callers hand over ownership.
func newDense[T Number](r, c int, data []T, o Options) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: data, opts: o}
}

// NewDense builds an r×c matrix from flat row-major data (copied). nil data
// yields the zero matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows ≤ 0 or cols ≤ 0.
//   - ErrDimensionMismatch if data != nil and len(data) != rows*cols.
//   - ErrNaNInf under WithValidateNaNInf.
func NewDense[T Number](rows, cols int, data []T, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	buf := make([]T, rows*cols)
	if data != nil {
		if len(data) != rows*cols {
			return nil, fmt.Errorf("NewDense(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
		}
		copy(buf, data)
	}
	if err := validateFinite(o, buf); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return newDense(rows, cols, buf, o), nil
}

// FromRows builds a matrix from a 2-D array (rows copied).
//
// Errors:
//   - ErrInvalidDimensions if values or its first row is empty.
//   - ErrBadShape if rows have unequal length.
func FromRows[T Number](values [][]T, opts ...Option) (*Dense[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(values), len(values[0])
	data := make([]T, 0, r*c)
	var i int
	for i = 0; i < r; i++ {
		if len(values[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", opFromRows, i, len(values[i]), c, ErrBadShape)
		}
		data = append(data, values[i]...)
	}

	return NewDense(r, c, data, opts...)
}

// NewZeros returns the n×n zero matrix.
func NewZeros[T Number](n int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](n, n, nil, opts...)
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity[T Number](n int, opts ...Option) (*Dense[T], error) {
	m, err := NewZeros[T](n, opts...)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = scalar.One[T]()
	}

	return m, nil
}

// NewDiagonal interprets values as the diagonal of an n×n matrix.
func NewDiagonal[T Number](values []T, opts ...Option) (*Dense[T], error) {
	n := len(values)
	m, err := NewZeros[T](n, opts...)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = values[i]
	}
	if err = validateFinite(m.opts, m.data); err != nil {
		return nil, matrixErrorf(opNewDense, err)
	}

	return m, nil
}

// NewColumnMatrix interprets values as a single n×1 column.
func NewColumnMatrix[T Number](values []T, opts ...Option) (*Dense[T], error) {
	return NewDense(len(values), 1, values, opts...)
}

// NewRotation builds the n×n plane rotation acting on coordinates p and q.
//
// Implementation:
//   - Stage 1: validate n ≥ 1 and 0 ≤ p,q < n with p ≠ q.
//   - Stage 2: x1 == 0 ⇒ sin = 1, cos = 0. Otherwise tan = x2/x1,
//     sin = tan/sqrt(1+tan²), cos = 1/sqrt(1+tan²).
//   - Stage 3: identity with (p,p)=(q,q)=cos, (p,q)=sin, (q,p)=−sin.
//
// Errors:
//   - ErrInvalidDimensions if n ≤ 0.
//   - ErrOutOfRange if p or q is out of bounds or p == q.
//   - ErrDivisionByZero if 1+tan² vanishes (Complex tan = ±i).
func NewRotation[T Number](p, q int, x1, x2 T, n int, opts ...Option) (*Dense[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opRotation, ErrInvalidDimensions)
	}
	if p < 0 || p >= n || q < 0 || q >= n || p == q {
		return nil, fmt.Errorf("%s(p=%d,q=%d,n=%d): %w", opRotation, p, q, n, ErrOutOfRange)
	}

	sin, cos := scalar.One[T](), scalar.Zero[T]()
	if !scalar.IsZero(x1) {
		tan := x2 / x1
		root := scalar.FromComplex[T](scalar.Sqrt(scalar.One[T]() + tan*tan))
		var err error
		if sin, err = scalar.Div(tan, root); err != nil {
			return nil, matrixErrorf(opRotation, err)
		}
		if cos, err = scalar.Div(scalar.One[T](), root); err != nil {
			return nil, matrixErrorf(opRotation, err)
		}
	}

	m, err := NewIdentity[T](n, opts...)
	if err != nil {
		return nil, err
	}
	m.data[p*n+p] = cos
	m.data[q*n+q] = cos
	m.data[p*n+q] = sin
	m.data[q*n+p] = -sin

	return m, nil
}

// FromColumns packs equally long vectors as the columns of a matrix.
//
// Errors:
//   - ErrEmptyInput if vectors is empty; ErrNilMatrix on a nil element.
//   - ErrDimensionMismatch if lengths differ.
func FromColumns[T Number](vectors []*Vector[T], opts ...Option) (*Dense[T], error) {
	n, err := commonLength(vectors)
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}
	m := len(vectors)
	data := make([]T, n*m)
	var i, j int
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			data[i*m+j] = vectors[j].values[i]
		}
	}

	return NewDense(n, m, data, opts...)
}

// FromRowVectors packs equally long vectors as the rows of a matrix.
func FromRowVectors[T Number](vectors []*Vector[T], opts ...Option) (*Dense[T], error) {
	n, err := commonLength(vectors)
	if err != nil {
		return nil, matrixErrorf(opFromRowVectors, err)
	}
	data := make([]T, 0, n*len(vectors))
	for _, v := range vectors {
		data = append(data, v.values...)
	}

	return NewDense(len(vectors), n, data, opts...)
}

// Lift converts any matrix into the Complex domain, keeping its options.
func Lift[T Number](m *Dense[T]) *Dense[complex128] {
	out := make([]complex128, len(m.data))
	for k, v := range m.data {
		out[k] = scalar.Lift(v)
	}

	return newDense(m.r, m.c, out, m.opts)
}

// commonLength validates a vector family and returns the shared length.
func commonLength[T Number](vectors []*Vector[T]) (int, error) {
	if len(vectors) == 0 {
		return 0, ErrEmptyInput
	}
	if vectors[0] == nil {
		return 0, ErrNilMatrix
	}
	n := vectors[0].Len()
	for _, v := range vectors[1:] {
		if v == nil {
			return 0, ErrNilMatrix
		}
		if v.Len() != n {
			return 0, ErrDimensionMismatch
		}
	}

	return n, nil
}

// validateFinite enforces the NaN/Inf policy on ingestion.
func validateFinite[T Number](o Options, data []T) error {
	if !o.validateNaNInf {
		return nil
	}
	for _, v := range data {
		if isNonFinite(scalar.Re(v)) || isNonFinite(scalar.Im(v)) {
			return ErrNaNInf
		}
	}

	return nil
}

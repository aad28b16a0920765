// SPDX-License-Identifier: MIT

// Package matrix - Dense accessors & structural transformations.
//
// Purpose:
//   - Row-major buffer with the explicit index formula i*cols + j.
//   - Safe public surface: At/Row/Col return errors instead of panicking.
//   - Deterministic loop orders (fixed i→j walks, no map iteration).
//   - Value semantics: SubMatrix/Transpose/Conjugate always allocate.
//
// Complexity quicksheet:
//   - At: O(1); Row/Col: O(c)/O(r); Values/Transpose/Conjugate: O(r*c);
//     SubMatrix: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxSubMatrix = "SubMatrix"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// Options returns the numeric policy attached to m.
func (m *Dense[T]) Options() Options { return m.opts }

// IsQuadratic reports rows == cols.
func (m *Dense[T]) IsQuadratic() bool { return m.r == m.c }

// At returns the entry at (row, col).
//
// Errors:
//   - ErrOutOfRange when the index is outside [0,r)×[0,c).
func (m *Dense[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return scalar.Zero[T](), denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// at is the unchecked accessor used by kernels after validation.
func (m *Dense[T]) at(i, j int) T { return m.data[i*m.c+j] }

// Row returns row i as a Row-oriented Vector (copy).
func (m *Dense[T]) Row(i int) (*Vector[T], error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	vals := make([]T, m.c)
	copy(vals, m.data[i*m.c:(i+1)*m.c])

	return &Vector[T]{values: vals, orient: Row}, nil
}

// Col returns column j as a Column-oriented Vector (copy).
func (m *Dense[T]) Col(j int) (*Vector[T], error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return &Vector[T]{values: m.column(j), orient: Column}, nil
}

// column copies column j without bounds checks.
func (m *Dense[T]) column(j int) []T {
	vals := make([]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		vals[i] = m.data[i*m.c+j]
	}

	return vals
}

// Values returns a deep copy as a 2-D array.
func (m *Dense[T]) Values() [][]T {
	out := make([][]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// RawData returns a copy of the flat row-major buffer.
func (m *Dense[T]) RawData() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Do calls fn for every entry in row-major order; returning false stops early.
func (m *Dense[T]) Do(fn func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !fn(i, j, m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// String renders one bracketed row per line, entries via scalar.Format.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(scalar.Format(m.data[i*m.c+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// derive allocates an r×c result inheriting m's options.
func (m *Dense[T]) derive(r, c int) *Dense[T] {
	return newDense(r, c, make([]T, r*c), m.opts)
}

// SubMatrix deletes row i and column k. A negative index keeps every row
// (resp. column).
//
// Errors:
//   - ErrOutOfRange if i ≥ rows or k ≥ cols.
//   - ErrInvalidDimensions if the deletion would leave no rows or no columns.
func (m *Dense[T]) SubMatrix(i, k int) (*Dense[T], error) {
	if i >= m.r || k >= m.c {
		return nil, denseErrorf(ctxSubMatrix, i, k, ErrOutOfRange)
	}
	r, c := m.r, m.c
	if i >= 0 {
		r--
	}
	if k >= 0 {
		c--
	}
	if r == 0 || c == 0 {
		return nil, denseErrorf(ctxSubMatrix, i, k, ErrInvalidDimensions)
	}

	out := m.derive(r, c)
	var src, dst, col int
	for src = 0; src < m.r; src++ {
		if src == i {
			continue
		}
		base := src * m.c
		for col = 0; col < m.c; col++ {
			if col == k {
				continue
			}
			out.data[dst] = m.data[base+col]
			dst++
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func (m *Dense[T]) Transpose() *Dense[T] {
	out := m.derive(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Conjugate returns the entrywise conjugate (a copy for Real).
func (m *Dense[T]) Conjugate() *Dense[T] {
	out := m.derive(m.r, m.c)
	for k, v := range m.data {
		out.data[k] = scalar.Conj(v)
	}

	return out
}

// ConjugateTranspose returns m^H = conj(m)ᵀ.
func (m *Dense[T]) ConjugateTranspose() *Dense[T] {
	return m.Conjugate().Transpose()
}

// Clone returns a deep copy without the memoised determinant.
func (m *Dense[T]) Clone() *Dense[T] {
	out := m.derive(m.r, m.c)
	copy(out.data, m.data)

	return out
}

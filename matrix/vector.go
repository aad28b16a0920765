// SPDX-License-Identifier: MIT

// Package matrix - Vector[T]: immutable, oriented sequence of scalars.
//
// Purpose:
//   - Row/column extraction target for Dense and operand of matrix-vector products.
//   - Inner product, magnitude, normalization, cross product (3-d only),
//     projection, collinearity and orthogonality tests.
//
// Behavior highlights:
//   - Dot never conjugates: Σ a_i·b_i in both domains.
//   - Magnitude is sqrt(Σ v_i·v_i). For Complex entries this is a bilinear
//     "length" that need not be real or non-negative.
//   - Every operation returns a new Vector; the receiver is never mutated.
//   - float64 vectors route Dot/Magnitude through viterin/vek (SIMD where available).

package matrix

import (
	"fmt"
	"strings"

	"github.com/viterin/vek"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// Vector is a fixed-length, oriented sequence of T.
type Vector[T Number] struct {
	values []T
	orient Orientation
}

// NewVector copies values into a new vector.
//
// Errors:
//   - ErrInvalidDimensions if values is empty.
func NewVector[T Number](values []T, orient Orientation) (*Vector[T], error) {
	if len(values) == 0 {
		return nil, matrixErrorf(opVector, ErrInvalidDimensions)
	}
	vals := make([]T, len(values))
	copy(vals, values)

	return &Vector[T]{values: vals, orient: orient}, nil
}

// NewZeroVector returns the zero vector of length n.
func NewZeroVector[T Number](n int, orient Orientation) (*Vector[T], error) {
	if n <= 0 {
		return nil, matrixErrorf(opVector, ErrInvalidDimensions)
	}

	return &Vector[T]{values: make([]T, n), orient: orient}, nil
}

// Len returns the number of entries.
func (v *Vector[T]) Len() int { return len(v.values) }

// Orientation returns Row or Column.
func (v *Vector[T]) Orientation() Orientation { return v.orient }

// At returns entry i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.values) {
		return scalar.Zero[T](), fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.values[i], nil
}

// Values returns a copy of the entries.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.values))
	copy(out, v.values)

	return out
}

// Transposed returns a copy with flipped orientation.
func (v *Vector[T]) Transposed() *Vector[T] {
	return &Vector[T]{values: v.Values(), orient: v.orient.Flip()}
}

// ToMatrix returns the n×1 (Column) or 1×n (Row) matrix view of v as a copy.
func (v *Vector[T]) ToMatrix(opts ...Option) (*Dense[T], error) {
	if v.orient == Row {
		return NewDense(1, len(v.values), v.values, opts...)
	}

	return NewDense(len(v.values), 1, v.values, opts...)
}

// String renders the entries in brackets using scalar.Format.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtRowOpen)
	for i, x := range v.values {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(scalar.Format(x))
	}
	b.WriteString("]")
	if v.orient == Column {
		b.WriteString("ᵀ")
	}

	return b.String()
}

// dot is the unchecked Σ a_i·b_i kernel.
func dot[T Number](a, b []T) T {
	if fa, ok := any(a).([]float64); ok {
		return any(vek.Dot(fa, any(b).([]float64))).(T)
	}
	var s T
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// Dot returns Σ v_i·u_i (no conjugation).
//
// Errors:
//   - ErrDimensionMismatch if lengths differ.
func (v *Vector[T]) Dot(u *Vector[T]) (T, error) {
	if u == nil {
		return scalar.Zero[T](), matrixErrorf(opDot, ErrNilMatrix)
	}
	if len(v.values) != len(u.values) {
		return scalar.Zero[T](), matrixErrorf(opDot, ErrDimensionMismatch)
	}

	return dot(v.values, u.values), nil
}

// magnitude returns sqrt(Σ x_i·x_i) kept in T.
func magnitude[T Number](values []T) T {
	return scalar.FromComplex[T](scalar.Sqrt(dot(values, values)))
}

// Magnitude returns sqrt(Σ v_i·v_i).
func (v *Vector[T]) Magnitude() T {
	return magnitude(v.values)
}

// Normalize divides every entry by Magnitude().
//
// Errors:
//   - ErrZeroVector if the magnitude is zero.
func (v *Vector[T]) Normalize() (*Vector[T], error) {
	mag := v.Magnitude()
	if scalar.IsZero(mag) {
		return nil, matrixErrorf(opNormalize, ErrZeroVector)
	}

	out := make([]T, len(v.values))
	for i, x := range v.values {
		out[i] = x / mag
	}

	return &Vector[T]{values: out, orient: v.orient}, nil
}

// Direction is an alias for Normalize.
func (v *Vector[T]) Direction() (*Vector[T], error) { return v.Normalize() }

// CrossProduct returns v × u with v's orientation.
//
// Errors:
//   - ErrDimensionMismatch unless both vectors have exactly three entries.
func (v *Vector[T]) CrossProduct(u *Vector[T]) (*Vector[T], error) {
	if u == nil {
		return nil, matrixErrorf(opCross, ErrNilMatrix)
	}
	if len(v.values) != 3 || len(u.values) != 3 {
		return nil, matrixErrorf(opCross, ErrDimensionMismatch)
	}
	a, b := v.values, u.values

	return &Vector[T]{
		values: []T{
			a[1]*b[2] - a[2]*b[1],
			a[2]*b[0] - a[0]*b[2],
			a[0]*b[1] - a[1]*b[0],
		},
		orient: v.orient,
	}, nil
}

// Projection returns the projection of v onto u: ((v·u)/(u·u))·u, oriented like u.
//
// Errors:
//   - ErrDimensionMismatch if lengths differ.
//   - ErrZeroVector if u·u == 0.
func (v *Vector[T]) Projection(u *Vector[T]) (*Vector[T], error) {
	vu, err := v.Dot(u)
	if err != nil {
		return nil, matrixErrorf(opProjection, err)
	}
	uu := dot(u.values, u.values)
	if scalar.IsZero(uu) {
		return nil, matrixErrorf(opProjection, ErrZeroVector)
	}

	return u.Scale(vu / uu), nil
}

// AreOrthogonal reports v·u == 0. Length mismatch reports false.
func (v *Vector[T]) AreOrthogonal(u *Vector[T]) bool {
	d, err := v.Dot(u)

	return err == nil && scalar.IsZero(d)
}

// AreCollinear reports whether v and u are scalar multiples of one another.
//
// Behavior highlights:
//   - Zero entries must line up in both vectors.
//   - Every ratio v_i/u_i over nonzero pairs must equal the first one.
//   - Two zero vectors are collinear; a zero and a nonzero vector are not.
//   - Different lengths are not collinear.
func (v *Vector[T]) AreCollinear(u *Vector[T]) bool {
	if u == nil || len(v.values) != len(u.values) {
		return false
	}
	var ratio T
	seen := false
	for i := range v.values {
		a, b := v.values[i], u.values[i]
		za, zb := scalar.IsZero(a), scalar.IsZero(b)
		if za != zb {
			return false
		}
		if za {
			continue
		}
		r := a / b
		if !seen {
			ratio, seen = r, true
			continue
		}
		if r != ratio {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is zero.
func (v *Vector[T]) IsZero() bool {
	for _, x := range v.values {
		if !scalar.IsZero(x) {
			return false
		}
	}

	return true
}

// IsUnit reports Magnitude() == 1.
func (v *Vector[T]) IsUnit() bool {
	return v.Magnitude() == scalar.One[T]()
}

// Equal reports identical orientation, length and entries.
func (v *Vector[T]) Equal(u *Vector[T]) bool {
	if u == nil || v.orient != u.orient || len(v.values) != len(u.values) {
		return false
	}
	for i := range v.values {
		if v.values[i] != u.values[i] {
			return false
		}
	}

	return true
}

// Add returns v + u (orientation of v).
func (v *Vector[T]) Add(u *Vector[T]) (*Vector[T], error) {
	return v.combine(u, scalar.One[T](), opAdd)
}

// Sub returns v − u (orientation of v).
func (v *Vector[T]) Sub(u *Vector[T]) (*Vector[T], error) {
	return v.combine(u, -scalar.One[T](), opSub)
}

// combine computes v + sign·u.
func (v *Vector[T]) combine(u *Vector[T], sign T, op string) (*Vector[T], error) {
	if u == nil {
		return nil, matrixErrorf(op, ErrNilMatrix)
	}
	if len(v.values) != len(u.values) {
		return nil, matrixErrorf(op, ErrDimensionMismatch)
	}
	out := make([]T, len(v.values))
	for i := range out {
		out[i] = v.values[i] + sign*u.values[i]
	}

	return &Vector[T]{values: out, orient: v.orient}, nil
}

// Scale returns α·v.
func (v *Vector[T]) Scale(alpha T) *Vector[T] {
	out := make([]T, len(v.values))
	for i, x := range v.values {
		out[i] = alpha * x
	}

	return &Vector[T]{values: out, orient: v.orient}
}

// Neg returns −v.
func (v *Vector[T]) Neg() *Vector[T] {
	return v.Scale(-scalar.One[T]())
}

// MulMatrix multiplies v with m on the side its orientation dictates:
// Row vectors compute v·M, Column vectors compute M·v.
//
// Errors:
//   - ErrDimensionMismatch if the inner dimensions disagree.
func (v *Vector[T]) MulMatrix(m *Dense[T]) (*Vector[T], error) {
	if v.orient == Row {
		return VecMat(v, m)
	}

	return MatVec(m, v)
}

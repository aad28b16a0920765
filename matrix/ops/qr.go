// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// QRResult holds the factors of M = Q·R.
type QRResult[T matrix.Number] struct {
	Q *matrix.Dense[T] // rows×cols, orthonormal columns
	R *matrix.Dense[T] // cols×cols, upper triangular
}

// QR decomposes m (rows ≥ cols) by Gram-Schmidt orthogonalisation of its columns.
// Blueprint:
//
//	Stage 1 (Validate): m non-nil, cols ≤ rows.
//	Stage 2 (Execute): for column i take I_i; for each earlier Q_j set
//	                   R[j,i] = I_i·Q_j and remove R[j,i]·Q_j from I_i.
//	                   Then R[i,i] = |I_i| and Q_i = I_i / R[i,i].
//	Stage 3 (Finalize): pack Q from its columns, R from its buffer.
//
// The projection coefficients are taken from the running I_i (the modified
// variant), which keeps Q·R == M exact in exact arithmetic and loses less
// orthogonality in floating point.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch if cols > rows.
//   - ErrDivisionByZero if some R[i,i] is exactly zero, i.e. column i lies in the
//     span of the columns before it.
//
// Complexity: O(rows·cols²) time, O(rows·cols) memory.
func QR[T matrix.Number](m *matrix.Dense[T]) (*QRResult[T], error) {
	// Stage 1: Validate input dimensions
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opsErrorf(opQR, err)
	}
	rows, cols := m.Shape()
	if cols > rows {
		return nil, fmt.Errorf("%s: %d columns exceed %d rows: %w", opQR, cols, rows, matrix.ErrDimensionMismatch)
	}

	// Stage 2: Orthogonalise column by column
	var (
		q    = make([]*matrix.Vector[T], cols) // orthonormal columns
		r    = make([]T, cols*cols)            // row-major R buffer
		col  *matrix.Vector[T]                 // running I_i
		proj T                                 // R[j,i]
		err  error
		i, j int
	)
	for i = 0; i < cols; i++ {
		col, _ = m.Col(i) // in range by construction
		for j = 0; j < i; j++ {
			proj, _ = col.Dot(q[j])
			r[j*cols+i] = proj
			col, _ = col.Sub(q[j].Scale(proj))
		}
		r[i*cols+i] = col.Magnitude()
		if q[i], err = divide(col, r[i*cols+i]); err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", opQR, i, err)
		}
	}

	// Stage 3: Assemble factors with the source policy
	keep := matrix.WithOptions(m.Options())
	Q, err := matrix.FromColumns(q, keep)
	if err != nil {
		return nil, opsErrorf(opQR, err)
	}
	R, err := matrix.NewDense(cols, cols, r, keep)
	if err != nil {
		return nil, opsErrorf(opQR, err)
	}

	return &QRResult[T]{Q: Q, R: R}, nil
}

// divide returns v / d entrywise, surfacing scalar.ErrDivisionByZero.
func divide[T matrix.Number](v *matrix.Vector[T], d T) (*matrix.Vector[T], error) {
	vals := v.Values()
	var err error
	for k := range vals {
		if vals[k], err = scalar.Div(vals[k], d); err != nil {
			return nil, err
		}
	}

	return matrix.NewVector(vals, v.Orientation())
}

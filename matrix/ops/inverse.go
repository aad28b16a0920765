// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// Inverse returns A⁻¹ by solving A·x = e_j for every identity column e_j over
// a single LUP factorisation. It is the O(n³) alternative to the adjugate
// formula of (*matrix.Dense).Inverse, which costs one determinant per entry.
// Blueprint:
//
//	Stage 1 (Validate): A quadratic.
//	Stage 2 (Decompose): P·A = L·U.
//	Stage 3 (Execute): for each e_j, substitute and write column j.
//	Stage 4 (Finalize): wrap with A's options.
//
// Errors:
//   - ErrNilMatrix, ErrNotQuadratic.
//   - ErrNotInvertible if a pivot column is numerically empty.
//
// Complexity: O(n³) time, O(n²) memory.
func Inverse[T matrix.Number](a *matrix.Dense[T]) (*matrix.Dense[T], error) {
	// Stage 1: Validate input shape
	if err := matrix.ValidateQuadratic(a); err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	// Stage 2: LUP decomposition
	f, err := matrix.LUP(a)
	if err != nil {
		return nil, opsErrorf(opInverse, err)
	}

	// Stage 3: Compute each column of the inverse
	var (
		n    = a.Rows()
		s    = newSubstitution(f)
		inv  = make([]T, n*n) // row-major result
		e    = make([]T, n)   // basis vector e_col
		x    []T
		col  int
		i    int
	)
	for col = 0; col < n; col++ {
		e[col] = scalar.One[T]()
		x = s.solve(e)
		for i = 0; i < n; i++ {
			inv[i*n+col] = x[i]
		}
		e[col] = 0
	}

	// Stage 4: Return computed inverse
	return matrix.NewDense(n, n, inv, matrix.WithOptions(a.Options()))
}

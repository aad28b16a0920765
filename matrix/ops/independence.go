// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// DependenceTolerance is the relative size below which a diagonal entry of R
// counts as zero: |R[i,i]| <= DependenceTolerance · max_j |v_j|.
// Gram-Schmidt on exactly dependent floating input leaves residues around 1e-16
// instead of exact zeros.
const DependenceTolerance = 1e-10

// LinearlyIndependent packs the vectors as the columns of an n×m matrix,
// QR-decomposes it and reports whether R is quadratic (m == n) with every
// diagonal entry nonzero.
//
// Behavior highlights:
//   - m < n always reports false, even for a genuinely independent family,
//     because R cannot be quadratic. ColumnsIndependent drops that requirement.
//   - m > n reports false: more vectors than dimensions are always dependent.
//   - A zero diagonal surfacing as ErrDivisionByZero from QR reports false, nil.
//
// Errors:
//   - ErrEmptyInput for an empty family, ErrNilMatrix for a nil element.
//   - ErrDimensionMismatch if the vector lengths differ.
func LinearlyIndependent[T matrix.Number](vectors []*matrix.Vector[T]) (bool, error) {
	a, r, ok, err := rFactor(opIndependent, vectors)
	if err != nil || !ok {
		return false, err
	}
	// R is always m×m; the n×m packing is what must be quadratic
	if !a.IsQuadratic() {
		return false, nil
	}

	return diagonalNonNegligible(r, vectors), nil
}

// ColumnsIndependent is LinearlyIndependent without the quadratic requirement:
// m ≤ n vectors are independent iff all m diagonal entries of R are nonzero.
//
// Errors: as LinearlyIndependent.
func ColumnsIndependent[T matrix.Number](vectors []*matrix.Vector[T]) (bool, error) {
	_, r, ok, err := rFactor(opColumnsIndep, vectors)
	if err != nil || !ok {
		return false, err
	}

	return diagonalNonNegligible(r, vectors), nil
}

// rFactor validates the family and returns its n×m column matrix a together
// with the R factor of a. ok is false when the family is dependent for structural reasons (m > n or an
// exactly zero diagonal).
func rFactor[T matrix.Number](op string, vectors []*matrix.Vector[T]) (a, r *matrix.Dense[T], ok bool, err error) {
	if a, err = matrix.FromColumns(vectors); err != nil {
		return nil, nil, false, opsErrorf(op, err)
	}
	if a.Cols() > a.Rows() {
		return a, nil, false, nil
	}
	f, err := QR(a)
	switch {
	case errors.Is(err, matrix.ErrDivisionByZero):
		return a, nil, false, nil
	case err != nil:
		return nil, nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return a, f.R, true, nil
}

// diagonalNonNegligible checks every R[i,i] against the family's scale.
func diagonalNonNegligible[T matrix.Number](r *matrix.Dense[T], vectors []*matrix.Vector[T]) bool {
	var scale float64
	for _, v := range vectors {
		scale = max(scale, scalar.Abs(v.Magnitude()))
	}
	tol := DependenceTolerance * scale
	for i := 0; i < r.Cols(); i++ {
		d, _ := r.At(i, i)
		if scalar.Negligible(d, tol) {
			return false
		}
	}

	return true
}

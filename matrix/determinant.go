// SPDX-License-Identifier: MIT

// Package matrix - determinant via LUP with a cofactor-expansion fallback.
//
// Purpose:
//   - Compute |M| for quadratic matrices with partial pivoting (LUP).
//   - When a pivot column is numerically empty (max magnitude below the pivot
//     tolerance) the LUP is declared unsuccessful and the determinant is
//     recomputed exactly by first-row cofactor expansion.
//   - Expose the pivoted factorisation (LUP) for solvers.
//
// Complexity quicksheet:
//   - LUP: O(n³) time, O(n²) space.
//   - Cofactor fallback: O(n!) time, O(n²) space per recursion level. Intended
//     for near-singular inputs of small size only (practically n ≤ ~10).
//
// Determinism:
//   - Fixed loop orders; on ties the first row with maximal magnitude wins.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// Determinant returns |m|, memoised per instance.
//
// Implementation:
//   - Stage 1: ValidateQuadratic.
//   - Stage 2: LUP; det = Π diag(U), negated for an odd number of row swaps.
//   - Stage 3: fallback to cofactor expansion if LUP was unsuccessful.
//
// Errors:
//   - ErrNotQuadratic.
//
// Notes:
//   - Safe for concurrent callers: the value is computed once, then published.
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateQuadratic(m); err != nil {
		return scalar.Zero[T](), matrixErrorf(opDeterminant, err)
	}
	m.detOnce.Do(func() {
		m.det = determinant(m.data, m.r, m.opts)
	})

	return m.det, nil
}

// determinant is the uncached kernel over a flat n×n buffer.
func determinant[T Number](data []T, n int, o Options) T {
	if n == 1 {
		return data[0]
	}
	lu, perm, swaps, ok := lupDecompose(data, n, o.pivotTol)
	if !ok {
		o.debug("determinant: pivot below tolerance, using cofactor expansion",
			"n", n, "pivot_tol", o.pivotTol)

		return cofactorDeterminant(data, n)
	}
	f := LUPResult[T]{n: n, lu: lu, perm: perm, swaps: swaps, opts: o}

	return f.Determinant()
}

// lupDecompose factorises a copy of data (n×n, row-major) in place as P·A = L·U.
// L (unit lower, strictly below the diagonal) and U share the returned buffer.
// perm[i] is the source row now stored at row i.
//
// ok is false when the largest candidate pivot of some column has magnitude
// below tol (or is exactly zero); lu is then partial and must not be used.
func lupDecompose[T Number](data []T, n int, tol float64) (lu []T, perm []int, swaps int, ok bool) {
	lu = make([]T, len(data))
	copy(lu, data)
	perm = make([]int, n)
	var i, j, k, imax int
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	var maxAbs, a float64
	for i = 0; i < n; i++ {
		// Stage 1: pivot search in column i, rows i..n-1.
		maxAbs, imax = 0, i
		for k = i; k < n; k++ {
			if a = scalar.Abs(lu[k*n+i]); a > maxAbs {
				maxAbs, imax = a, k
			}
		}
		if maxAbs == 0 || maxAbs < tol {
			return lu, perm, swaps, false
		}

		// Stage 2: row swap, recorded in perm and the swap counter.
		if imax != i {
			for k = 0; k < n; k++ {
				lu[i*n+k], lu[imax*n+k] = lu[imax*n+k], lu[i*n+k]
			}
			perm[i], perm[imax] = perm[imax], perm[i]
			swaps++
		}

		// Stage 3: eliminate below the pivot.
		pivot := lu[i*n+i]
		for j = i + 1; j < n; j++ {
			lu[j*n+i] /= pivot
			f := lu[j*n+i]
			if f == 0 {
				continue
			}
			for k = i + 1; k < n; k++ {
				lu[j*n+k] -= f * lu[i*n+k]
			}
		}
	}

	return lu, perm, swaps, true
}

// cofactorDeterminant expands along the first row recursively.
func cofactorDeterminant[T Number](data []T, n int) T {
	switch n {
	case 1:
		return data[0]
	case 2:
		return data[0]*data[3] - data[1]*data[2]
	}

	var det T
	sign := scalar.One[T]()
	minor := make([]T, (n-1)*(n-1))
	var j int
	for j = 0; j < n; j, sign = j+1, -sign {
		if data[j] == 0 {
			continue
		}
		fillMinor(minor, data, n, 0, j)
		det += sign * data[j] * cofactorDeterminant(minor, n-1)
	}

	return det
}

// fillMinor writes data without row i and column k into dst ((n-1)² entries).
func fillMinor[T Number](dst, data []T, n, i, k int) {
	var r, c, w int
	for r = 0; r < n; r++ {
		if r == i {
			continue
		}
		for c = 0; c < n; c++ {
			if c == k {
				continue
			}
			dst[w] = data[r*n+c]
			w++
		}
	}
}

// LUPResult is a successful pivoted factorisation P·A = L·U.
type LUPResult[T Number] struct {
	n     int
	lu    []T   // L strictly below the diagonal (unit diagonal implied), U on/above
	perm  []int // perm[i] = source row stored at row i
	swaps int
	opts  Options
}

// LUP factorises a quadratic matrix with partial pivoting.
//
// Errors:
//   - ErrNotQuadratic.
//   - ErrNotInvertible if a pivot column is numerically empty (the
//     decomposition is not successful under the matrix's pivot tolerance).
func LUP[T Number](m *Dense[T]) (*LUPResult[T], error) {
	if err := ValidateQuadratic(m); err != nil {
		return nil, matrixErrorf(opLUP, err)
	}
	lu, perm, swaps, ok := lupDecompose(m.data, m.r, m.opts.pivotTol)
	if !ok {
		return nil, fmt.Errorf("%s: pivot below tolerance %g: %w", opLUP, m.opts.pivotTol, ErrNotInvertible)
	}

	return &LUPResult[T]{n: m.r, lu: lu, perm: perm, swaps: swaps, opts: m.opts}, nil
}

// Size returns n.
func (f *LUPResult[T]) Size() int { return f.n }

// Swaps returns the number of row exchanges performed.
func (f *LUPResult[T]) Swaps() int { return f.swaps }

// Perm returns a copy of the row permutation (perm[i] = source row of row i).
func (f *LUPResult[T]) Perm() []int {
	out := make([]int, f.n)
	copy(out, f.perm)

	return out
}

// L returns the unit lower-triangular factor.
func (f *LUPResult[T]) L() *Dense[T] {
	n := f.n
	out := newDense(n, n, make([]T, n*n), f.opts)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
		out.data[i*n+i] = scalar.One[T]()
	}

	return out
}

// U returns the upper-triangular factor.
func (f *LUPResult[T]) U() *Dense[T] {
	n := f.n
	out := newDense(n, n, make([]T, n*n), f.opts)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
	}

	return out
}

// P returns the permutation matrix with P·A = L·U.
func (f *LUPResult[T]) P() *Dense[T] {
	n := f.n
	out := newDense(n, n, make([]T, n*n), f.opts)
	for i, src := range f.perm {
		out.data[i*n+src] = scalar.One[T]()
	}

	return out
}

// Determinant returns Π diag(U), negated for an odd swap count.
func (f *LUPResult[T]) Determinant() T {
	det := scalar.One[T]()
	var i int
	for i = 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}
	if f.swaps%2 == 1 {
		det = -det
	}

	return det
}

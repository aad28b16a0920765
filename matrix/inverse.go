// SPDX-License-Identifier: MIT

// Package matrix - inverse (adjugate / determinant) and rank (minor search).
//
// Complexity quicksheet:
//   - Inverse: n² minor determinants, O(n⁵) on the LUP path.
//   - Rank: exponential in the worst case (every minor of every size may be
//     probed); minors are memoised per call, so each distinct one is evaluated
//     once. Intended for small matrices only.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinalg/scalar"
)

// IsRegular reports quadratic with a determinant that is not zero (under the
// matrix epsilon; exact by default).
func (m *Dense[T]) IsRegular() bool {
	if !m.IsQuadratic() {
		return false
	}
	det, _ := m.Determinant()

	return !scalar.Negligible(det, m.opts.eps)
}

// Inverse returns m⁻¹ as the adjugate divided by the determinant:
// inv[i][j] = (−1)^(i+j) · |SubMatrix(j,i)| / |m|.
//
// Errors:
//   - ErrNotInvertible, also matching ErrNotQuadratic for rectangular input.
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := ValidateQuadratic(m); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opInverse, ErrNotInvertible, err)
	}
	det, _ := m.Determinant()
	if scalar.Negligible(det, m.opts.eps) {
		return nil, fmt.Errorf("%s: determinant %s: %w", opInverse, scalar.Format(det), ErrNotInvertible)
	}

	n := m.r
	inv := m.derive(n, n)
	if n == 1 {
		inv.data[0] = scalar.One[T]() / det

		return inv, nil
	}

	minor := make([]T, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			fillMinor(minor, m.data, n, j, i)
			c := determinant(minor, n-1, m.opts)
			if (i+j)%2 == 1 {
				c = -c
			}
			inv.data[i*n+j] = c / det
		}
	}

	return inv, nil
}

// Rank returns the dimension of the column space.
//
// Implementation:
//   - Regular quadratic ⇒ n.
//   - Quadratic n > 2 ⇒ max rank over all (n−1)×(n−1) minors.
//   - 2×2 ⇒ 1 if any entry is nonzero, else 0; 1×1 ⇒ 0 or 1.
//   - More rows than columns ⇒ max over deleting one row; more columns than
//     rows ⇒ max over deleting one column.
//
// Notes:
//   - The search stops early once a minor reaches the best attainable rank.
//   - Minors are keyed by the kept row/column sets and evaluated at most once.
func (m *Dense[T]) Rank() int {
	rows := make([]int, m.r)
	cols := make([]int, m.c)
	for i := range rows {
		rows[i] = i
	}
	for j := range cols {
		cols[j] = j
	}
	rs := &rankSearch[T]{m: m, memo: make(map[string]int)}
	r := rs.rank(rows, cols)
	if len(rs.memo) > 1 {
		m.opts.debug("rank: probed minors", "rows", m.r, "cols", m.c, "minors", len(rs.memo), "rank", r)
	}

	return r
}

// rankSearch memoises the recursive minor probe for one Rank call.
type rankSearch[T Number] struct {
	m    *Dense[T]
	memo map[string]int
}

// key encodes the kept row and column sets.
func (rs *rankSearch[T]) key(rows, cols []int) string {
	var b strings.Builder
	for _, i := range rows {
		fmt.Fprintf(&b, "%d,", i)
	}
	b.WriteByte('|')
	for _, j := range cols {
		fmt.Fprintf(&b, "%d,", j)
	}

	return b.String()
}

func (rs *rankSearch[T]) rank(rows, cols []int) int {
	k := rs.key(rows, cols)
	if r, ok := rs.memo[k]; ok {
		return r
	}
	r := rs.probe(rows, cols)
	rs.memo[k] = r

	return r
}

func (rs *rankSearch[T]) probe(rows, cols []int) int {
	nr, nc := len(rows), len(cols)
	if nr == nc {
		data := rs.gather(rows, cols)
		det := determinant(data, nr, rs.m.opts)
		if !scalar.Negligible(det, rs.m.opts.eps) {
			return nr
		}
		switch nr {
		case 1:
			return 0
		case 2:
			for _, v := range data {
				if !scalar.IsZero(v) {
					return 1
				}
			}

			return 0
		}
	}

	// Upper bound for any proper minor; reaching it ends the search.
	best, bound := 0, min(nr, nc)
	if nr == nc {
		bound = nr - 1
	}
	var i, j int
	switch {
	case nr == nc:
		for i = 0; i < nr && best < bound; i++ {
			for j = 0; j < nc && best < bound; j++ {
				best = max(best, rs.rank(without(rows, i), without(cols, j)))
			}
		}
	case nr > nc:
		for i = 0; i < nr && best < bound; i++ {
			best = max(best, rs.rank(without(rows, i), cols))
		}
	default:
		for j = 0; j < nc && best < bound; j++ {
			best = max(best, rs.rank(rows, without(cols, j)))
		}
	}

	return best
}

// gather copies the selected rows×cols block into a flat buffer.
func (rs *rankSearch[T]) gather(rows, cols []int) []T {
	out := make([]T, 0, len(rows)*len(cols))
	for _, i := range rows {
		for _, j := range cols {
			out = append(out, rs.m.at(i, j))
		}
	}

	return out
}

// without returns idx with position p removed (fresh slice).
func without(idx []int, p int) []int {
	out := make([]int, 0, len(idx)-1)
	out = append(out, idx[:p]...)

	return append(out, idx[p+1:]...)
}

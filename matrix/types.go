// SPDX-License-Identifier: MIT
// Package matrix: core shared types.

package matrix

import "github.com/katalvlaran/lvlinalg/scalar"

// Number re-exports the scalar constraint so callers can write matrix.Number.
type Number = scalar.Number

// Orientation declares on which side of a matrix product a Vector participates.
type Orientation uint8

const (
	// Column vectors multiply from the right: M·v.
	Column Orientation = iota
	// Row vectors multiply from the left: v·M.
	Row
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Row {
		return "row"
	}

	return "column"
}

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Row {
		return Column
	}

	return Row
}

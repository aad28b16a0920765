// SPDX-License-Identifier: MIT

package scalar

import "errors"

var (
	// ErrDivisionByZero is returned by Div when the divisor has zero magnitude
	// (Real: b == 0; Complex: re == 0 && im == 0).
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrUndefinedResult signals a result outside the value's domain, e.g. the
	// square root of a negative Real requested as a Real.
	ErrUndefinedResult = errors.New("scalar: undefined result")
)

// SPDX-License-Identifier: MIT

// Package scalar defines the two numeric domains used by lvlinalg/matrix:
// Real (float64) and Complex (complex128).
//
// Purpose:
//   - Provide one generic constraint (Number) so every matrix/vector kernel is
//     written once and instantiated for both domains.
//   - Supply the operations Go's built-in operators do not: checked division,
//     magnitude, sign, conjugate, domain-splitting square root, exponential,
//     real-part ordering and display formatting.
//
// Domain rules:
//   - Arithmetic (+, -, *, unary -) is total and uses Go's native operators.
//   - Div is the only failing operation: a zero-magnitude divisor yields
//     ErrDivisionByZero instead of ±Inf/NaN.
//   - Ordering (Less, Greater, ...) compares the real part only. This is a
//     partial ordering for Complex values and is what pivot/max searches use.
//   - Sqrt of a negative Real leaves the Real domain; it returns complex128.
//     A Real can always be lifted into Complex (Lift), never the reverse.
//
// AI-Hints:
//   - Instantiate with float64 for real workloads; the matrix package picks
//     flat-slice fast paths for float64.
//   - Use Negligible with a tolerance rather than IsZero on computed values.
package scalar

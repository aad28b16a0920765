// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private determinant kernels.
//
// Purpose:
//   - Expose the LUP and cofactor kernels separately so tests can check that
//     both determinant paths agree, and observe which path a matrix takes.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly  = panicEpsilonInvalid
	PanicPivotTolInvalid_TestOnly = panicPivotTolInvalid
)

// LUPSucceeds_TestOnly reports whether the LUP path is taken under tol.
func LUPSucceeds_TestOnly[T Number](m *Dense[T], tol float64) bool {
	_, _, _, ok := lupDecompose(m.data, m.r, tol)

	return ok
}

// CofactorDeterminant_TestOnly runs the cofactor expansion directly.
func CofactorDeterminant_TestOnly[T Number](m *Dense[T]) T {
	return cofactorDeterminant(m.data, m.r)
}

// Package lvlinalg is a dense linear-algebra engine that runs the same
// algorithms over two scalar domains, real (float64) and complex (complex128).
//
// What is inside?
//
//	scalar/      — the Number constraint and domain-aware helpers (Div, Sqrt, Sign, Format)
//	matrix/      — Dense[T] and Vector[T]: construction, arithmetic, predicates,
//	               determinant (LUP with cofactor fallback), inverse, rank
//	matrix/ops/  — QR (Gram-Schmidt), Hessenberg reduction, characteristic
//	               polynomial (Faddeev-LeVerrier), linear independence, LUP solve
//	cmd/linalg/  — command-line front end reading YAML/JSON documents
//
// Every value is immutable once built; derived matrices are fresh instances
// that inherit the options (pivot tolerance, epsilon, logger) of their source.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	det, _ := m.Determinant()    // 10
//	inv, _ := m.Inverse()        // [0.6, -0.7] / [-0.2, 0.4]
//	qr, _ := ops.QR(m)           // m == qr.Q · qr.R
//	p, _ := ops.CharacteristicPolynomial(m) // λ² − 10λ + 10
//
// Hessenberg and the characteristic polynomial are complex-only; real inputs
// are lifted entry by entry and the results are always complex.
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg

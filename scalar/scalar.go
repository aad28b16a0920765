// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Number is the scalar constraint shared by all lvlinalg linear-algebra kernels.
// The type set is closed (no ~) so kernels can switch on the concrete domain.
type Number interface {
	float64 | complex128
}

// Real and Complex name the two domains.
type (
	Real    = float64
	Complex = complex128
)

// formatDecimals is the rounding applied by Format.
const formatDecimals = 5

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var z T

	return z
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return T(1)
}

// FromFloat lifts a float64 into T (Complex gets a zero imaginary part).
func FromFloat[T Number](f float64) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = f
	case *complex128:
		*p = complex(f, 0)
	}

	return z
}

// FromComplex narrows or keeps a complex128 as T. For Real the imaginary part
// is dropped; callers that care must check Im first.
func FromComplex[T Number](c complex128) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = real(c)
	case *complex128:
		*p = c
	}

	return z
}

// IsRealDomain reports whether T is the Real domain.
func IsRealDomain[T Number]() bool {
	var z T
	_, ok := any(z).(float64)

	return ok
}

// Re returns the real part of x.
func Re[T Number](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return v
	case complex128:
		return real(v)
	}

	return 0
}

// Im returns the imaginary part of x (always 0 for Real).
func Im[T Number](x T) float64 {
	if v, ok := any(x).(complex128); ok {
		return imag(v)
	}

	return 0
}

// Lift converts x into the Complex domain.
func Lift[T Number](x T) complex128 {
	return complex(Re(x), Im(x))
}

// Abs2 returns the squared magnitude re²+im².
func Abs2[T Number](x T) float64 {
	re, im := Re(x), Im(x)

	return re*re + im*im
}

// Abs returns |x|.
func Abs[T Number](x T) float64 {
	switch v := any(x).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}

	return 0
}

// IsZero reports whether x has zero magnitude.
func IsZero[T Number](x T) bool {
	return x == 0
}

// Negligible reports |x| <= tol.
func Negligible[T Number](x T, tol float64) bool {
	return Abs(x) <= tol
}

// Close reports whether a and b agree within eps. eps == 0 means exact equality.
func Close[T Number](a, b T, eps float64) bool {
	if eps == 0 {
		return a == b
	}

	return Abs(a-b) <= eps
}

// Div returns a/b.
//
// Errors:
//   - ErrDivisionByZero if b has zero magnitude.
func Div[T Number](a, b T) (T, error) {
	if IsZero(b) {
		return Zero[T](), ErrDivisionByZero
	}

	return a / b, nil
}

// Sign returns x/|x|, the unit-magnitude value pointing in the direction of x.
// Sign(0) is 0.
func Sign[T Number](x T) T {
	a := Abs(x)
	if a == 0 {
		return Zero[T]()
	}

	return x / FromFloat[T](a)
}

// Conj returns the complex conjugate; identity for Real.
func Conj[T Number](x T) T {
	if v, ok := any(x).(complex128); ok {
		return any(cmplx.Conj(v)).(T)
	}

	return x
}

// Sqrt returns the principal square root of x in the Complex domain.
//
// Behavior highlights:
//   - Real x < 0 yields a purely imaginary result (0, sqrt(-x)).
//   - Complex x with im == 0 follows the Real rule on its real part.
//   - Otherwise the half-angle formulas are used:
//     re = sqrt((a+|z|)/2), im = sign(b)·sqrt((|z|-a)/2).
func Sqrt[T Number](x T) complex128 {
	a, b := Re(x), Im(x)
	if b == 0 {
		if a < 0 {
			return complex(0, math.Sqrt(-a))
		}

		return complex(math.Sqrt(a), 0)
	}

	r := math.Hypot(a, b)
	re := math.Sqrt((a + r) / 2)
	im := math.Sqrt((r - a) / 2)
	if b < 0 {
		im = -im
	}

	return complex(re, im)
}

// SqrtIn returns the square root of x kept in T.
//
// Errors:
//   - ErrUndefinedResult if T is Real and x < 0.
func SqrtIn[T Number](x T) (T, error) {
	s := Sqrt(x)
	if IsRealDomain[T]() && imag(s) != 0 {
		return NaN[T](), ErrUndefinedResult
	}

	return FromComplex[T](s), nil
}

// Exp returns e^x in the domain of x.
func Exp[T Number](x T) T {
	switch v := any(x).(type) {
	case float64:
		return any(math.Exp(v)).(T)
	case complex128:
		return any(cmplx.Exp(v)).(T)
	}

	return x
}

// Less compares real parts: Re(a) < Re(b).
func Less[T Number](a, b T) bool { return Re(a) < Re(b) }

// Greater compares real parts: Re(a) > Re(b).
func Greater[T Number](a, b T) bool { return Re(a) > Re(b) }

// LessEq compares real parts: Re(a) <= Re(b).
func LessEq[T Number](a, b T) bool { return Re(a) <= Re(b) }

// GreaterEq compares real parts: Re(a) >= Re(b).
func GreaterEq[T Number](a, b T) bool { return Re(a) >= Re(b) }

// AbsLess reports |a| < |b|; used for pivot and max-in-list searches.
func AbsLess[T Number](a, b T) bool { return Abs2(a) < Abs2(b) }

// NaN returns the undefined-result sentinel (Complex: NaN + 0i).
func NaN[T Number]() T {
	return FromFloat[T](math.NaN())
}

// IsNaN reports whether either component of x is NaN.
func IsNaN[T Number](x T) bool {
	return math.IsNaN(Re(x)) || math.IsNaN(Im(x))
}

// Format renders x rounded to five decimals as "re" or "re + i * im".
func Format[T Number](x T) string {
	re := roundTo(Re(x), formatDecimals)
	im := roundTo(Im(x), formatDecimals)
	if im == 0 {
		return strconv.FormatFloat(re, 'f', -1, 64)
	}

	return strconv.FormatFloat(re, 'f', -1, 64) + " + i * " + strconv.FormatFloat(im, 'f', -1, 64)
}

// roundTo rounds half away from zero and folds -0 into 0.
func roundTo(f float64, decimals int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	p := math.Pow10(decimals)
	r := math.Round(f*p) / p
	if r == 0 {
		return 0
	}

	return r
}

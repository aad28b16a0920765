// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/matrix/ops"
	"github.com/katalvlaran/lvlinalg/scalar"
)

// kernel is one command body instantiated for a scalar domain.
type kernel func(a *app, doc *document) error

// dispatch loads the document and runs the kernel matching --complex.
func (a *app) dispatch(realK, complexK kernel) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		doc, err := a.load()
		if err != nil {
			return err
		}
		if a.complexMode {
			return complexK(a, doc)
		}

		return realK(a, doc)
	}
}

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Print the determinant",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runDet[float64], runDet[complex128]),
	}
}

func (a *app) inverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inverse",
		Short: "Print the inverse (adjugate formula, or LUP with --lup)",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runInverse[float64], runInverse[complex128]),
	}
	cmd.Flags().BoolVar(&a.lupInverse, "lup", false, "invert through one LUP factorisation")

	return cmd
}

func (a *app) rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "Print the rank",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runRank[float64], runRank[complex128]),
	}
}

func (a *app) transposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose",
		Short: "Print the transpose",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runTranspose[float64], runTranspose[complex128]),
	}
}

func (a *app) qrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qr",
		Short: "Print the Gram-Schmidt factors Q and R",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runQR[float64], runQR[complex128]),
	}
}

func (a *app) hessenbergCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hessenberg",
		Short: "Print the upper-Hessenberg form (always complex)",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runHessenberg[float64], runHessenberg[complex128]),
	}
}

func (a *app) charpolyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charpoly",
		Short: "Print the characteristic polynomial coefficients, highest power first",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runCharPoly[float64], runCharPoly[complex128]),
	}
	cmd.Flags().BoolVar(&a.reduced, "reduced", false, "reduce to Hessenberg form first")

	return cmd
}

func (a *app) independentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "independent",
		Short: "Report whether the document vectors are linearly independent",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runIndependent[float64], runIndependent[complex128]),
	}
	cmd.Flags().BoolVar(&a.columns, "columns", false, "accept fewer vectors than dimensions")

	return cmd
}

func (a *app) solveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Solve matrix · x = rhs",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runSolve[float64], runSolve[complex128]),
	}
}

func (a *app) propsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props",
		Short: "Print structural properties",
		Args:  cobra.NoArgs,
		RunE:  a.dispatch(runProps[float64], runProps[complex128]),
	}
}

func runDet[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	d, err := m.Determinant()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, scalar.Format(d))

	return err
}

func runInverse[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	var inv *matrix.Dense[T]
	if a.lupInverse {
		inv, err = ops.Inverse(m)
	} else {
		inv, err = m.Inverse()
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.out, inv)

	return err
}

func runRank[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, m.Rank())

	return err
}

func runTranspose[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.out, m.Transpose())

	return err
}

func runQR[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	f, err := ops.QR(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "Q:\n%sR:\n%s", f.Q, f.R)

	return err
}

func runHessenberg[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	h, err := ops.Hessenberg(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(a.out, h)

	return err
}

func runCharPoly[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	var coeffs []complex128
	if a.reduced {
		coeffs, err = ops.ReducedCharacteristicPolynomial(m)
	} else {
		coeffs, err = ops.CharacteristicPolynomial(m)
	}
	if err != nil {
		return err
	}
	for i := len(coeffs) - 1; i >= 0; i-- {
		if _, err = fmt.Fprintf(a.out, "λ^%d: %s\n", i, scalar.Format(coeffs[i])); err != nil {
			return err
		}
	}

	return nil
}

func runIndependent[T scalar.Number](a *app, doc *document) error {
	vs, err := vectorsOf[T](doc)
	if err != nil {
		return err
	}
	var ok bool
	if a.columns {
		ok, err = ops.ColumnsIndependent(vs)
	} else {
		ok, err = ops.LinearlyIndependent(vs)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, ok)

	return err
}

func runSolve[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	b, err := rhsOf[T](doc)
	if err != nil {
		return err
	}
	x, err := ops.Solve(m, b)
	if err != nil {
		return err
	}
	for i, v := range x.Values() {
		if _, err = fmt.Fprintf(a.out, "x%d = %s\n", i, scalar.Format(v)); err != nil {
			return err
		}
	}

	return nil
}

func runProps[T scalar.Number](a *app, doc *document) error {
	m, err := matrixOf[T](doc, a.options()...)
	if err != nil {
		return err
	}
	props := []struct {
		name string
		ok   bool
	}{
		{"quadratic", m.IsQuadratic()},
		{"regular", m.IsRegular()},
		{"symmetric", m.IsSymmetric()},
		{"skew-symmetric", m.IsSkewSymmetric()},
		{"orthogonal", m.IsOrthogonal()},
		{"hermitian", m.IsHermitian()},
		{"skew-hermitian", m.IsSkewHermitian()},
		{"unitary", m.IsUnitary()},
		{"complex-valued", m.IsComplexValued()},
	}
	r, c := m.Shape()
	if _, err = fmt.Fprintf(a.out, "shape: %dx%d\n", r, c); err != nil {
		return err
	}
	for _, p := range props {
		if _, err = fmt.Fprintf(a.out, "%s: %t\n", p.name, p.ok); err != nil {
			return err
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// app carries the parsed global flags and the I/O endpoints of one invocation.
type app struct {
	in          io.Reader
	out, errOut io.Writer

	file        string
	complexMode bool
	pivotTol    float64
	epsilon     float64
	verbose     bool

	// subcommand flags
	lupInverse bool
	reduced    bool
	columns    bool

	logger *slog.Logger
}

// newRootCmd wires the command tree; tests call it with in-memory streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "linalg",
		Short: "Dense linear algebra over real and complex matrices",
		Long: `linalg reads a matrix (and optionally vectors or a right-hand side)
from a YAML or JSON document and runs one kernel on it.

Kernels:
  • determinant (LUP with cofactor fallback), inverse, rank
  • QR (Gram-Schmidt), Hessenberg reduction, characteristic polynomial
  • linear independence, linear solve, structural predicates`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.file, "file", "f", "-", "input document (- for stdin)")
	pf.BoolVar(&a.complexMode, "complex", false, "compute in the complex domain")
	pf.Float64Var(&a.pivotTol, "pivot-tol", matrix.DefaultPivotTolerance, "LUP pivot tolerance")
	pf.Float64Var(&a.epsilon, "epsilon", matrix.DefaultEpsilon, "tolerance for predicates and regularity (0 = exact)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log kernel diagnostics to stderr")

	root.AddCommand(
		a.detCmd(),
		a.inverseCmd(),
		a.rankCmd(),
		a.transposeCmd(),
		a.qrCmd(),
		a.hessenbergCmd(),
		a.charpolyCmd(),
		a.independentCmd(),
		a.solveCmd(),
		a.propsCmd(),
	)

	return root
}

// setup validates numeric flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.pivotTol < 0 || math.IsNaN(a.pivotTol) || math.IsInf(a.pivotTol, 0) {
		return fmt.Errorf("--pivot-tol must be finite and non-negative, got %g", a.pivotTol)
	}
	if a.epsilon < 0 || math.IsNaN(a.epsilon) || math.IsInf(a.epsilon, 0) {
		return fmt.Errorf("--epsilon must be finite and non-negative, got %g", a.epsilon)
	}
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("linalg: start", "command", cmd.Name(), "file", a.file, "complex", a.complexMode)

	return nil
}

// options translates the global flags into matrix options.
func (a *app) options() []matrix.Option {
	return []matrix.Option{
		matrix.WithPivotTolerance(a.pivotTol),
		matrix.WithEpsilon(a.epsilon),
		matrix.WithLogger(a.logger),
	}
}

// load reads the input document from --file or stdin.
func (a *app) load() (*document, error) {
	if a.file == "-" {
		return readDocument(a.in)
	}
	f, err := os.Open(a.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readDocument(f)
}

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy and diagnostics.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Options are attached to a matrix at construction and inherited by every
//     matrix derived from it (Transpose, SubMatrix, Inverse, Mul, ...). For binary
//     operations the left operand's policy wins.
//   - pivotTol drives the LUP → cofactor fallback of Determinant.
//   - eps drives predicate comparisons (IsSymmetric, IsOrthogonal, ...). The
//     default 0 means exact elementwise equality.
package matrix

import (
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the machine epsilon of float64 (2^-52). A pivot
	// whose magnitude falls below it marks the LUP decomposition as unsuccessful.
	DefaultPivotTolerance = 0x1p-52

	// DefaultEpsilon is the tolerance used by predicates; 0 = exact equality.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles finite-value validation on ingestion.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol       float64      // >= 0; DefaultPivotTolerance
	eps            float64      // >= 0; DefaultEpsilon
	validateNaNInf bool         // DefaultValidateNaNInf
	logger         *slog.Logger // nil = silent
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the magnitude below which an LUP pivot is rejected
// and Determinant falls back to cofactor expansion.
//
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Notes:
//   - tol = 0 only falls back on exactly-zero pivot columns.
//   - Large tolerances route near-singular inputs through the factorial-time
//     cofactor path; keep n small when raising it.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithEpsilon sets the tolerance used by structural predicates.
//
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - eps = 0 (default) means exact equality: IsOrthogonal on a rotation built
//     from floating values will typically need a small positive eps.
//
// AI-Hints:
//   - Prefer eps around 1e-9 for data produced by earlier floating computations.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes constructors reject NaN or ±Inf entries with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger attaches a structured logger. Kernels emit Debug records for the
// determinant fallback and rank recursion; nil restores silence.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithOptions replaces the whole configuration with o. Packages building new
// matrices from an existing one use it to carry the source policy forward.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// NewMatrixOptions resolves the given setters over the defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// PivotTolerance returns the effective LUP pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// Epsilon returns the effective predicate tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Logger returns the attached logger, or nil.
func (o Options) Logger() *slog.Logger { return o.logger }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user setters in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// debug logs through the configured logger, if any.
func (o Options) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
	}
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

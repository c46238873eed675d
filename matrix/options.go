// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the arithmetic and
// elimination kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The pivot tolerance default is 0, i.e. the exact-zero pivot test.
//     A positive tolerance changes observable results on near-singular
//     inputs (Determinant returns 0, Inverse fails) and must be opted into.
//   - The logger receives recoverable diagnostics only; fatal errors are
//     returned to the caller, who decides whether to log them.
package matrix

import (
	"io"
	"log/slog"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the |pivot| threshold treated as zero.
	// 0 keeps the exact floating-point equality test.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and constructors.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the tolerance used by AllClose-style helpers when callers
	// do not pass their own.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicLoggerNil             = "matrix: WithLogger: logger must not be nil"
)

// discardLogger swallows diagnostics when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol       float64      // >= 0; DefaultPivotTolerance
	validateNaNInf bool         // DefaultValidateNaNInf
	logger         *slog.Logger // never nil after gatherOptions
}

// WithPivotTolerance sets the threshold below which a pivot counts as zero.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - tol == 0 restores the exact-equality test (the default).
//   - tol > 0 makes Determinant return 0 and Inverse fail with ErrSingular
//     when the selected pivot satisfies |pivot| <= tol.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithValidateNaNInf enables strict finite-value validation on results built
// from decoded or user-supplied data. This is the default.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation.
// Use only for controlled experiments where ±Inf/NaN must propagate.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger routes recoverable diagnostics (shape mismatches) to l.
// Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaultOptions() (single source of truth).
//   - Stage 2: apply opt in order; last-writer-wins semantics.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		pivotTol:       DefaultPivotTolerance,
		validateNaNInf: DefaultValidateNaNInf,
		logger:         discardLogger,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in kernel facades.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isZeroPivot applies the numeric policy to a selected pivot.
// With the default tolerance this is the exact test p == 0.
func (o Options) isZeroPivot(p float64) bool {
	if o.pivotTol == DefaultPivotTolerance {
		return p == zeroPivot
	}

	return math.Abs(p) <= o.pivotTol
}

// PivotTolerance returns the effective pivot tolerance.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// factorization and solve kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) used by every kernel entry point.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - "Effectively zero" is decided by Tolerance (tolerance.go): a value x is
//     zero when |x| ≤ eps, or when it is relatively close to 0 within rtol.
//   - validateNaNInf controls both Set() on matrices allocated by kernels and
//     the up-front finite check kernels run on their inputs.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by zero-pivot, positive
	// definiteness and zero-norm checks.
	DefaultEpsilon = 1e-8

	// DefaultRelTolerance is the relative tolerance paired with DefaultEpsilon.
	DefaultRelTolerance = 1e-5

	// DefaultValidateNaNInf toggles strict finite-value validation on kernel inputs and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "matrix: WithRelTolerance: rtol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	rtol           float64 // >= 0; DefaultRelTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the absolute tolerance used to decide that a pivot
// or a residual norm is effectively zero.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0; panic otherwise.
//   - Stage 2: return setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - WithEpsilon(0) together with WithRelTolerance(0) yields exact-zero checks.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelTolerance sets the relative tolerance paired with the absolute epsilon.
// Panics when rtol is negative or non-finite.
func WithRelTolerance(rtol float64) Option {
	if isNonFinite(rtol) || rtol < 0 {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Kernels reject inputs holding NaN/±Inf with ErrNaNInf before any arithmetic.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite inputs then propagate through the arithmetic unchecked.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Pure function; last-writer-wins for a given sequence of opts.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Tolerance returns the effective zero/closeness tolerance.
func (o Options) Tolerance() Tolerance {
	return Tolerance{Abs: o.eps, Rel: o.rtol}
}

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in kernel files.
// Complexity: O(k), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		rtol:           DefaultRelTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

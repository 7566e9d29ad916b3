// SPDX-License-Identifier: MIT

// Package matrix - floating-point closeness policy shared by every kernel.
//
// Purpose:
//   - Decide "effectively zero" in exactly one place so LU, Cholesky and QR
//     report singularity consistently.
//   - Delegate the absolute-or-relative comparison to gonum's scalar package.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is an absolute-or-relative closeness threshold.
// Two values a, b are close when |a-b| ≤ Abs, or when
// |a-b| ≤ Rel·max(|a|,|b|).
type Tolerance struct {
	Abs float64 // absolute tolerance (≥ 0)
	Rel float64 // relative tolerance (≥ 0)
}

// DefaultTolerance returns the package defaults (DefaultEpsilon, DefaultRelTolerance).
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: DefaultEpsilon, Rel: DefaultRelTolerance}
}

// Close reports whether a and b are equal within the tolerance.
// NaN is never close to anything.
func (t Tolerance) Close(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, t.Abs, t.Rel)
}

// IsZero reports whether x is effectively zero.
// Against 0 the relative branch only accepts subnormal magnitudes, so in
// practice this is |x| ≤ Abs.
func (t Tolerance) IsZero(x float64) bool {
	return t.Close(x, 0)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vector is a dense, fixed-length column vector. Its length is its dimension;
// kernels never append to or reslice a Vector they receive.
type Vector []float64

// NewVector returns a zero Vector of length n.
// Errors: ErrInvalidDimensions when n <= 0.
func NewVector(n int) (Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return make(Vector, n), nil
}

// Len returns the dimension of v.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v (nil stays nil).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Dot returns the inner product v·w.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v) != len(w) {
		return 0, fmt.Errorf("Vector.Dot: %d vs %d: %w", len(v), len(w), ErrDimensionMismatch)
	}

	return dot(v, w), nil
}

// Norm2 returns the Euclidean norm ‖v‖₂ (scaled, so it does not overflow
// for large entries).
func (v Vector) Norm2() float64 {
	return floats.Norm(v, l2)
}

// dot is the unchecked inner product shared by kernels (callers guarantee equal length).
func dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

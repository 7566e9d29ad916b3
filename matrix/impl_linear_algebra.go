// SPDX-License-Identifier: MIT
// Package matrix provides the universal operations the factorization kernels
// and their callers rely on: matrix multiplication, transpose, matrix-vector
// product and tolerance-based comparison. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare operation tags and shared constants for determinism and error reporting.
//   - Provide the *Dense fast-path / interface fallback split used by every kernel.
//
// Notes:
//   - Kernels never mutate their inputs; results are freshly allocated *Dense.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// unitDiag is the fixed diagonal of a unit-triangular factor.
const unitDiag = 1.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opMatVec        = "MatVec"
	opAllClose      = "AllClose"
	opLU            = "LU"
	opLUSolve       = "LUSolve"
	opCholesky      = "Cholesky"
	opCholeskySolve = "CholeskySolve"
	opQR            = "QR"
	opQRSolve       = "QRSolve"
	opForward       = "ForwardSubstitution"
	opBackward      = "BackSubstitution"
	opBackwardT     = "BackSubstitutionTransposed"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns a *Dense holding the values of m.
// If m already is *Dense it is returned as-is and MUST be treated as read-only
// by the caller; otherwise the values are copied through At (fallback path).
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	r, c := m.Rows(), m.Cols()
	out, err := newDenseWithPolicy(r, c, false) // raw copy; finite policy is checked separately
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Mul computes the matrix product a×b.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate result r×c.
//   - Stage 2: i→k→j loop over flat buffers (fallback operands are copied once via asDense).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→k→j accumulation order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := ad.r, ad.c, bd.c
	out, err := newDenseWithPolicy(r, c, ad.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k   int
		aik       float64
		rowA, row int
	)
	for i = 0; i < r; i++ {
		rowA = i * n
		row = i * c
		for k = 0; k < n; k++ {
			aik = ad.data[rowA+k]
			if aik == 0 {
				continue // skip zero contributions
			}
			for j = 0; j < c; j++ {
				out.data[row+j] += aik * bd.data[k*c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵗ as a new matrix.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out, err := newDenseWithPolicy(md.c, md.r, md.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < md.r; i++ {
		for j = 0; j < md.c; j++ {
			out.data[j*md.r+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make(Vector, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			y[i] = dot(d.data[base:base+cols], x)
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range ad.data {
		if math.Abs(ad.data[idx]-bd.data[idx]) > atol+rtol*math.Abs(bd.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

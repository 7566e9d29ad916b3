// SPDX-License-Identifier: MIT

// Package matrix - Cholesky factorization A = L·Lᵗ and its solver.

package matrix

import (
	"fmt"
	"math"
)

// exactZero is the tolerance that treats only ±0 as zero.
var exactZero = Tolerance{}

// Cholesky computes the lower-triangular L with A = L·Lᵗ for a symmetric
// positive-definite matrix. Symmetry is assumed, not verified: only the lower
// triangle of A (including the diagonal) is read.
//
// Implementation:
//   - for i in 0..n-1, for j in 0..i:
//     s = Σ_{k<j} L[i][k]·L[j][k];
//     i == j: L[i][i] = √(A[i][i] − s), rejecting a radicand ≤ 0;
//     i > j:  L[i][j] = (A[i][j] − s) / L[j][j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf,
//     ErrNotPositiveDefinite (wrapped with the failing row and radicand).
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
func Cholesky(a Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, matrixErrorf(opCholesky, err)
		}
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := ad.r
	L, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var (
		i, j       int
		rowI, rowJ int
		s, val     float64
	)
	for i = 0; i < n; i++ {
		rowI = i * n
		for j = 0; j <= i; j++ {
			rowJ = j * n
			s = dot(L.data[rowI:rowI+j], L.data[rowJ:rowJ+j])
			if i == j {
				val = ad.data[rowI+i] - s
				// NaN radicands are rejected too.
				if !(val > 0) {
					return nil, matrixErrorf(opCholesky,
						fmt.Errorf("row %d radicand %g: %w", i, val, ErrNotPositiveDefinite))
				}
				L.data[rowI+i] = math.Sqrt(val)
				continue
			}
			L.data[rowI+j] = (ad.data[rowI+j] - s) / L.data[rowJ+j]
		}
	}

	return L, nil
}

// CholeskySolve solves A x = b given the factor L of Cholesky:
// forward substitution L y = b, then back substitution Lᵗ x = y reading L
// column-wise.
//
// A factor produced by Cholesky always has a positive diagonal. For any other
// L, an exactly zero diagonal entry is reported as ErrSingular instead of
// dividing by zero; tiny non-zero entries are used as they are.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
// Complexity: Time O(n^2), Space O(n).
func CholeskySolve(l Matrix, b Vector, opts ...Option) (Vector, error) {
	o := gatherOptions(opts...)
	ld, err := triangularOperand(l, b)
	if err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}
	if err = validateFiniteOperands(o, b, l); err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}

	n := ld.r
	y, err := forwardSubst(ld.data, n, b, false, exactZero)
	if err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}
	x, err := backSubstTransposed(ld.data, n, y, exactZero)
	if err != nil {
		return nil, matrixErrorf(opCholeskySolve, err)
	}

	return x, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - LU factorization (Doolittle, no pivoting) and its solver.
//
// Purpose:
//   - LU:      A = L·U with unit-lower-triangular L and upper-triangular U.
//   - LUSolve: L y = b (no division, unit diagonal), then U x = y.
//
// Determinism & Policy:
//   - No row interchanges: the factorization succeeds only when every leading
//     principal minor of A is non-singular.
//   - "Zero" pivots are decided by Options.Tolerance (WithEpsilon, WithRelTolerance).

package matrix

import "fmt"

// LU computes the Doolittle factorization A = L·U of a square matrix.
// MAIN DESCRIPTION:
//   - Row i of U is built left to right from row i of L and rows < i of U,
//     then column i of L below the diagonal is divided by the pivot U[i][i].
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(a); ValidateFinite(a) when the NaN/Inf policy is on.
//   - Stage 2: for i in 0..n-1:
//     L[i][i] = 1;
//     U[i][j] = A[i][j] − Σ_{k<i} L[i][k]·U[k][j] for j ≥ i;
//     L[j][i] = (A[j][i] − Σ_{k<i} L[j][k]·U[k][i]) / U[i][i] for j > i.
//
// Behavior highlights:
//   - The pivot is checked only when it is about to be used as a divisor (rows below i exist).
//     A zero last pivot is therefore accepted here and reported by LUSolve.
//   - A is never mutated; L and U are fresh n×n matrices.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular (wrapped with the pivot index).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - For matrices that need row interchanges, use QR instead.
func LU(a Matrix, opts ...Option) (Matrix, Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, nil, matrixErrorf(opLU, err)
		}
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := ad.r
	L, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	tol := o.Tolerance()
	var (
		i, j, k int
		s, piv  float64
		rowI    int
		rowJ    int
	)
	for i = 0; i < n; i++ {
		rowI = i * n
		L.data[rowI+i] = unitDiag

		// Row i of U.
		for j = i; j < n; j++ {
			s = ZeroSum
			for k = 0; k < i; k++ {
				s += L.data[rowI+k] * U.data[k*n+j]
			}
			U.data[rowI+j] = ad.data[rowI+j] - s
		}

		if i == n-1 {
			break // no rows below: last pivot is never a divisor here
		}
		piv = U.data[rowI+i]
		if tol.IsZero(piv) {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d (%g): %w", i, piv, ErrSingular))
		}

		// Column i of L below the diagonal.
		for j = i + 1; j < n; j++ {
			rowJ = j * n
			s = ZeroSum
			for k = 0; k < i; k++ {
				s += L.data[rowJ+k] * U.data[k*n+i]
			}
			L.data[rowJ+i] = (ad.data[rowJ+i] - s) / piv
		}
	}

	return L, U, nil
}

// LUSolve solves A x = b given the factors of LU.
// Implementation:
//   - Stage 1: validate L, U square with equal shape and len(b) == n; finite check per policy.
//   - Stage 2: y[i] = b[i] − Σ_{j<i} L[i][j]·y[j] (the diagonal of L is not read).
//   - Stage 3: x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i], i = n-1 … 0,
//     with a zero-pivot check on every U[i][i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n^2), Space O(n).
func LUSolve(l, u Matrix, b Vector, opts ...Option) (Vector, error) {
	o := gatherOptions(opts...)
	ld, ud, err := factorPair(l, u, b, o)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	n := ld.r
	y, err := forwardSubst(ld.data, n, b, true, o.Tolerance())
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	x, err := backSubst(ud.data, n, y, o.Tolerance())
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	return x, nil
}

// factorPair validates two square factors of equal shape plus the right-hand
// side (the row count of the first factor) and returns both as *Dense.
func factorPair(first, second Matrix, b Vector, o Options) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(first); err != nil {
		return nil, nil, err
	}
	if err := ValidateBinarySameShape(first, second); err != nil {
		return nil, nil, err
	}
	if err := ValidateVecLen(b, first.Rows()); err != nil {
		return nil, nil, err
	}
	if err := validateFiniteOperands(o, b, first, second); err != nil {
		return nil, nil, err
	}
	fd, err := asDense(first)
	if err != nil {
		return nil, nil, err
	}
	sd, err := asDense(second)
	if err != nil {
		return nil, nil, err
	}

	return fd, sd, nil
}

// validateFiniteOperands applies the NaN/Inf policy to a right-hand side and its factors.
func validateFiniteOperands(o Options, b Vector, ms ...Matrix) error {
	if !o.validateNaNInf {
		return nil
	}
	for _, m := range ms {
		if err := ValidateFinite(m); err != nil {
			return err
		}
	}

	return ValidateFiniteVec(b)
}

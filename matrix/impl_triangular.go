// SPDX-License-Identifier: MIT

// Package matrix - triangular solves shared by the LU, Cholesky and QR solvers.
//
// Purpose:
//   - ForwardSubstitution: L y = b, first unknown to last.
//   - BackSubstitution:    U x = y, last unknown to first.
//   - BackSubstitutionTransposed: Lᵗ x = y reading L column-wise (no transposed copy).
//
// Contract:
//   - The factor is square and non-nil; len(rhs) == n.
//   - Only the relevant triangle is read; entries on the other side are ignored.
//   - A diagonal entry that the tolerance reports as zero yields ErrSingular,
//     wrapped with the failing row index.
//
// Complexity:
//   - Time O(n^2), Space O(n) for the result.

package matrix

import "fmt"

// ForwardSubstitution solves L y = b for lower-triangular L.
// With unitDiagonal the diagonal of L is taken as 1 and never read, so no
// division (and no zero check) happens.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func ForwardSubstitution(l Matrix, b Vector, unitDiagonal bool, tol Tolerance) (Vector, error) {
	ld, err := triangularOperand(l, b)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}
	y, err := forwardSubst(ld.data, ld.r, b, unitDiagonal, tol)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	return y, nil
}

// BackSubstitution solves U x = y for upper-triangular U.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func BackSubstitution(u Matrix, y Vector, tol Tolerance) (Vector, error) {
	ud, err := triangularOperand(u, y)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}
	x, err := backSubst(ud.data, ud.r, y, tol)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	return x, nil
}

// BackSubstitutionTransposed solves Lᵗ x = y for lower-triangular L,
// using L[j][i] in place of Lᵗ[i][j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func BackSubstitutionTransposed(l Matrix, y Vector, tol Tolerance) (Vector, error) {
	ld, err := triangularOperand(l, y)
	if err != nil {
		return nil, matrixErrorf(opBackwardT, err)
	}
	x, err := backSubstTransposed(ld.data, ld.r, y, tol)
	if err != nil {
		return nil, matrixErrorf(opBackwardT, err)
	}

	return x, nil
}

// triangularOperand validates a square factor against its right-hand side
// and returns it as *Dense (read-only).
func triangularOperand(t Matrix, rhs Vector) (*Dense, error) {
	if err := ValidateSquareNonNil(t); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(rhs, t.Rows()); err != nil {
		return nil, err
	}

	return asDense(t)
}

// singularAt reports a zero diagonal entry at row i.
func singularAt(i int, v float64) error {
	return fmt.Errorf("diagonal %d (%g): %w", i, v, ErrSingular)
}

// forwardSubst runs y[i] = (b[i] − Σ_{j<i} L[i][j]·y[j]) / L[i][i] over a flat n×n buffer.
func forwardSubst(l []float64, n int, b Vector, unitDiagonal bool, tol Tolerance) (Vector, error) {
	y := make(Vector, n)
	var (
		i, base int
		s, diag float64
	)
	for i = 0; i < n; i++ {
		base = i * n
		s = b[i] - dot(l[base:base+i], y[:i])
		if unitDiagonal {
			y[i] = s
			continue
		}
		diag = l[base+i]
		if tol.IsZero(diag) {
			return nil, singularAt(i, diag)
		}
		y[i] = s / diag
	}

	return y, nil
}

// backSubst runs x[i] = (y[i] − Σ_{j>i} U[i][j]·x[j]) / U[i][i] for i = n-1 … 0.
func backSubst(u []float64, n int, y Vector, tol Tolerance) (Vector, error) {
	x := make(Vector, n)
	var (
		i, base int
		diag    float64
	)
	for i = n - 1; i >= 0; i-- {
		base = i * n
		diag = u[base+i]
		if tol.IsZero(diag) {
			return nil, singularAt(i, diag)
		}
		x[i] = (y[i] - dot(u[base+i+1:base+n], x[i+1:])) / diag
	}

	return x, nil
}

// backSubstTransposed runs x[i] = (y[i] − Σ_{j>i} L[j][i]·x[j]) / L[i][i] for i = n-1 … 0.
func backSubstTransposed(l []float64, n int, y Vector, tol Tolerance) (Vector, error) {
	x := make(Vector, n)
	var (
		i, j    int
		s, diag float64
	)
	for i = n - 1; i >= 0; i-- {
		diag = l[i*n+i]
		if tol.IsZero(diag) {
			return nil, singularAt(i, diag)
		}
		s = ZeroSum
		for j = i + 1; j < n; j++ {
			s += l[j*n+i] * x[j] // column i of L is row i of Lᵗ
		}
		x[i] = (y[i] - s) / diag
	}

	return x, nil
}

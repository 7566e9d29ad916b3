// SPDX-License-Identifier: MIT

// Package matrix - QR factorization by Gram-Schmidt orthogonalization and its solver.
//
// Purpose:
//   - QR:      A = Q·R with orthonormal-column Q (m×n) and upper-triangular R (n×n), m ≥ n.
//   - QRSolve: c = Qᵗb, then R x = c. Exact for square full-rank A, least-squares for m > n.
//
// Notes:
//   - Column vectors are handled as gonum/floats slices (Dot, AddScaled, Norm).
//   - R[i][j] projects Q[:,i] onto the ORIGINAL column A[:,j].

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// l2 selects the Euclidean norm in floats.Norm.
const l2 = 2

// QR factorizes an m×n matrix (m ≥ n, full column rank) as A = Q·R.
// MAIN DESCRIPTION:
//   - Column by column: v = A[:,j]; for every earlier i, R[i][j] = Q[:,i]·A[:,j]
//     and v -= R[i][j]·Q[:,i]; then R[j][j] = ‖v‖ and Q[:,j] = v / R[j][j].
//
// Behavior highlights:
//   - R has a non-negative diagonal (norms) and zeros below it.
//   - A residual norm within tolerance of zero means column j depends linearly
//     on the previous ones.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m < n), ErrNaNInf,
//     ErrLinearlyDependent (wrapped with the column index).
//
// Complexity:
//   - Time O(m*n^2), Space O(m*n + n^2).
func QR(a Matrix, opts ...Option) (Matrix, Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateTallNonNil(a); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(a); err != nil {
			return nil, nil, matrixErrorf(opQR, err)
		}
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	m, n := ad.r, ad.c
	Q, err := newDenseWithPolicy(m, n, o.validateNaNInf)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	R, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	// qCols[i] holds Q[:,i] contiguously; written back into Q at the end.
	qCols := make([][]float64, n)
	tol := o.Tolerance()
	var (
		i, j, r int
		aj, v   []float64
		rij     float64
		norm    float64
	)
	for j = 0; j < n; j++ {
		aj = columnOf(ad, j)
		v = make([]float64, m)
		copy(v, aj)
		for i = 0; i < j; i++ {
			rij = floats.Dot(qCols[i], aj)
			R.data[i*n+j] = rij
			floats.AddScaled(v, -rij, qCols[i])
		}

		norm = floats.Norm(v, l2)
		if tol.IsZero(norm) {
			return nil, nil, matrixErrorf(opQR, fmt.Errorf("column %d residual norm %g: %w", j, norm, ErrLinearlyDependent))
		}
		R.data[j*n+j] = norm
		floats.Scale(1/norm, v)
		qCols[j] = v
	}

	for j = 0; j < n; j++ {
		for r = 0; r < m; r++ {
			Q.data[r*n+j] = qCols[j][r]
		}
	}

	return Q, R, nil
}

// QRSolve solves A x = b given the factors of QR.
// Implementation:
//   - Stage 1: Q m×n with m ≥ n, R n×n, len(b) == m; finite check per policy.
//   - Stage 2: c = Qᵗb (length n).
//   - Stage 3: back substitution R x = c with a zero check on every R[i][i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(m*n + n^2), Space O(n).
func QRSolve(q, r Matrix, b Vector, opts ...Option) (Vector, error) {
	o := gatherOptions(opts...)
	if err := ValidateTallNonNil(q); err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	if err := ValidateSquareNonNil(r); err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	if r.Rows() != q.Cols() {
		return nil, matrixErrorf(opQRSolve,
			fmt.Errorf("R is %dx%d, Q has %d columns: %w", r.Rows(), r.Cols(), q.Cols(), ErrDimensionMismatch))
	}
	if err := ValidateVecLen(b, q.Rows()); err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	if err := validateFiniteOperands(o, b, q, r); err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	qd, err := asDense(q)
	if err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}
	rd, err := asDense(r)
	if err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}

	n := qd.c
	c := make(Vector, n)
	var i int
	for i = 0; i < n; i++ {
		c[i] = floats.Dot(columnOf(qd, i), b)
	}

	x, err := backSubst(rd.data, n, c, o.Tolerance())
	if err != nil {
		return nil, matrixErrorf(opQRSolve, err)
	}

	return x, nil
}

// columnOf copies column j of d into a fresh slice (j is trusted).
func columnOf(d *Dense, j int) []float64 {
	out := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = d.data[i*d.c+j]
	}

	return out
}

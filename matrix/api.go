// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication - each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use Reconstruct* to check a factorization against its input with AllClose.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as the expected value of QᵗQ in orthonormality checks.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = unitDiag
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// ---------- Linear Algebra aliases ----------

// Product is an alias for Mul: matrix product a × b.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// MatVecMul is an alias for MatVec: y = m·x.
// Complexity: O(rc).
func MatVecMul(m Matrix, x Vector) (Vector, error) { return MatVec(m, x) }

// LUDecompose is an alias for LU: returns (L, U) with unit diagonal on L.
// Complexity: O(n^3).
func LUDecompose(m Matrix, opts ...Option) (Matrix, Matrix, error) { return LU(m, opts...) }

// QRDecompose is an alias for QR: returns (Q, R) via Gram-Schmidt.
// Complexity: O(m*n^2).
func QRDecompose(m Matrix, opts ...Option) (Matrix, Matrix, error) { return QR(m, opts...) }

// ---------- Reconstruction (compositions only; no loop duplication) ----------

// ReconstructLU returns L·U.
func ReconstructLU(l, u Matrix) (Matrix, error) {
	p, err := Mul(l, u)
	if err != nil {
		return nil, matrixErrorf("ReconstructLU", err)
	}

	return p, nil
}

// ReconstructCholesky returns L·Lᵗ. Deterministic composition: Transpose → Mul.
func ReconstructCholesky(l Matrix) (Matrix, error) {
	lt, err := Transpose(l)
	if err != nil {
		return nil, matrixErrorf("ReconstructCholesky", err)
	}
	p, err := Mul(l, lt)
	if err != nil {
		return nil, matrixErrorf("ReconstructCholesky", err)
	}

	return p, nil
}

// ReconstructQR returns Q·R.
func ReconstructQR(q, r Matrix) (Matrix, error) {
	p, err := Mul(q, r)
	if err != nil {
		return nil, matrixErrorf("ReconstructQR", err)
	}

	return p, nil
}

// Gram returns mᵗ·m; for the Q factor of QR it is ≈ I.
// Complexity: O(r*c^2).
func Gram(m Matrix) (Matrix, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}
	g, err := Mul(mt, m)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return g, nil
}

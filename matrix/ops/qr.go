// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/linsolve/matrix"

// decomposeQR returns Q (m×n, orthonormal columns) and R (n×n upper triangular)
// for m ≥ n via Gram-Schmidt orthogonalization.
// Complexity: O(m·n²) time, O(m·n + n²) memory.
func decomposeQR(a matrix.Matrix, opts []matrix.Option) (matrix.Matrix, matrix.Matrix, error) {
	return matrix.QR(a, opts...)
}

// solveQR projects b onto the columns of Q and back-substitutes through R.
func solveQR(f *Factorization, b matrix.Vector) (matrix.Vector, error) {
	return matrix.QRSolve(f.first, f.second, b, f.opts...)
}

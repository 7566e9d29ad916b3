// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/linsolve/matrix"

// decomposeLU performs the Doolittle LU decomposition (no pivoting).
// Returns L (unit lower triangular) and U (upper triangular).
// Time Complexity: O(n³); Memory: O(n²) for L and U.
func decomposeLU(a matrix.Matrix, opts []matrix.Option) (matrix.Matrix, matrix.Matrix, error) {
	return matrix.LU(a, opts...)
}

// solveLU runs forward substitution on L (unit diagonal) then back substitution on U.
func solveLU(f *Factorization, b matrix.Vector) (matrix.Vector, error) {
	return matrix.LUSolve(f.first, f.second, b, f.opts...)
}

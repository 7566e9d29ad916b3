// SPDX-License-Identifier: MIT

package ops

import "github.com/katalvlaran/linsolve/matrix"

// decomposeCholesky returns the lower factor L with A = L·Lᵗ; the second factor is nil.
func decomposeCholesky(a matrix.Matrix, opts []matrix.Option) (matrix.Matrix, matrix.Matrix, error) {
	L, err := matrix.Cholesky(a, opts...)
	if err != nil {
		return nil, nil, err
	}

	return L, nil, nil
}

func solveCholesky(f *Factorization, b matrix.Vector) (matrix.Vector, error) {
	return matrix.CholeskySolve(f.first, b, f.opts...)
}

// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Residual returns r = A·x − b.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(a matrix.Matrix, x, b matrix.Vector) (matrix.Vector, error) {
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	if err = matrix.ValidateVecLen(b, len(ax)); err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	for i := range ax {
		ax[i] -= b[i]
	}

	return ax, nil
}

// ResidualNorm returns ‖A·x − b‖₂.
func ResidualNorm(a matrix.Matrix, x, b matrix.Vector) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, err
	}

	return r.Norm2(), nil
}

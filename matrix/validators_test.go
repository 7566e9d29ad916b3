// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	// helper matrix implementation
	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	square := func(n int) matrix.Matrix {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", square(1), nil},
		{"3x3", square(3), nil},
		{"2x3", func() matrix.Matrix { m, _ := matrix.NewDense(2, 3); return m }(), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.want),
					"expected errors.Is(%v, %v)", err, tc.want)
			}
		})
	}
}

// TestValidateTall checks the m ≥ n contract used by QR.
func TestValidateTall(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateTallNonNil(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateTallNonNil(MustDense(t, 3, 3)))
	require.NoError(t, matrix.ValidateTallNonNil(MustDense(t, 4, 2)))
	require.ErrorIs(t, matrix.ValidateTallNonNil(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

// TestValidateVecLen checks nil and length mismatches.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestValidateMulCompatible checks inner-dimension agreement.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(nil, MustDense(t, 2, 3)), matrix.ErrNilMatrix)
}

// TestValidateFinite covers the Dense fast path, the fallback and vectors.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateFinite(hide{m}))

	raw := MustDense(t, 2, 2)
	lenient := rawWithValue(t, raw, 1, 0, math.Inf(1))
	require.ErrorIs(t, matrix.ValidateFinite(lenient), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{lenient}), matrix.ErrNaNInf)

	require.NoError(t, matrix.ValidateFiniteVec([]float64{1, 2}))
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{1, math.NaN()}), matrix.ErrNaNInf)
}

// rawWithValue overlays v at (i,j) on a clone of m; Set would reject non-finite v.
func rawWithValue(t *testing.T, m *matrix.Dense, i, j int, v float64) matrix.Matrix {
	t.Helper()

	return nanSink{Matrix: m.Clone(), i: i, j: j, v: v}
}

// nanSink overlays a single (possibly non-finite) value on a Matrix.
type nanSink struct {
	matrix.Matrix
	i, j int
	v    float64
}

func (n nanSink) At(i, j int) (float64, error) {
	if i == n.i && j == n.j {
		return n.v, nil
	}

	return n.Matrix.At(i, j)
}

// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestForwardSubstitution(t *testing.T) {
	t.Parallel()

	tol := matrix.DefaultTolerance()
	// upper triangle holds garbage that must never be read
	L := MustRows(t, [][]float64{
		{2, 9, 9},
		{1, 4, 9},
		{3, 2, 5},
	})

	// L y = b with y = [1, 2, 3]
	y, err := matrix.ForwardSubstitution(L, matrix.Vector{2, 9, 22}, false, tol)
	require.NoError(t, err)
	VecClose(t, y, []float64{1, 2, 3}, RtolTiny, AtolTiny)

	// unit diagonal: the stored diagonal is ignored
	y, err = matrix.ForwardSubstitution(L, matrix.Vector{1, 3, 10}, true, tol)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{1, 2, 3}, y)

	// fallback path gives identical results
	y2, err := matrix.ForwardSubstitution(hide{L}, matrix.Vector{1, 3, 10}, true, tol)
	require.NoError(t, err)
	require.Equal(t, y, y2)
}

func TestBackSubstitution(t *testing.T) {
	t.Parallel()

	tol := matrix.DefaultTolerance()
	U := MustRows(t, [][]float64{
		{2, 1, 1},
		{9, 1, 1},
		{9, 9, 2},
	})

	// U x = y with x = [1, 2, 3]
	x, err := matrix.BackSubstitution(U, matrix.Vector{7, 5, 6}, tol)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{1, 2, 3}, x)

	x2, err := matrix.BackSubstitution(hide{U}, matrix.Vector{7, 5, 6}, tol)
	require.NoError(t, err)
	require.Equal(t, x, x2)
}

func TestBackSubstitutionTransposed(t *testing.T) {
	t.Parallel()

	tol := matrix.DefaultTolerance()
	L := MustRows(t, [][]float64{
		{2, 0, 0},
		{1, 1, 0},
		{1, 1, 2},
	})
	// Lᵗ = [[2,1,1],[0,1,1],[0,0,2]]; Lᵗ x = y with x = [1, 2, 3]
	x, err := matrix.BackSubstitutionTransposed(L, matrix.Vector{7, 5, 6}, tol)
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{1, 2, 3}, x)
}

func TestTriangular_Errors(t *testing.T) {
	t.Parallel()

	tol := matrix.DefaultTolerance()
	singular := MustRows(t, [][]float64{{1, 0}, {1, 0}})
	b := matrix.Vector{1, 1}

	_, err := matrix.ForwardSubstitution(singular, b, false, tol)
	AssertErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.ForwardSubstitution(singular, b, true, tol) // unit diagonal never divides
	require.NoError(t, err)

	upperSingular := MustRows(t, [][]float64{{1, 1}, {0, 1e-12}})
	_, err = matrix.BackSubstitution(upperSingular, b, tol)
	AssertErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.BackSubstitution(upperSingular, b, matrix.Tolerance{}) // exact check accepts 1e-12
	require.NoError(t, err)

	_, err = matrix.BackSubstitutionTransposed(singular, b, tol)
	AssertErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.BackSubstitution(MustDense(t, 2, 3), b, tol)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ForwardSubstitution(IdentityDense(t, 2), matrix.Vector{1}, false, tol)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.BackSubstitutionTransposed(nil, b, tol)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

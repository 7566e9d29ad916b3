// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewVector(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	v, err := matrix.NewVector(3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	require.Equal(t, matrix.Vector{0, 0, 0}, v)

	a := matrix.Vector{3, 4}
	require.Equal(t, 5.0, a.Norm2())

	d, err := a.Dot(matrix.Vector{1, 2})
	require.NoError(t, err)
	require.Equal(t, 11.0, d)

	_, err = a.Dot(matrix.Vector{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	c := a.Clone()
	c[0] = 0
	require.Equal(t, 3.0, a[0])
	require.Nil(t, matrix.Vector(nil).Clone())
}

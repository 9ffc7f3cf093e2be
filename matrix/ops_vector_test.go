// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvopt/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewVector_CopiesAndValidates checks copy-in semantics and the NaN policy.
func TestNewVector_CopiesAndValidates(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := matrix.NewVector(src)
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
	require.True(t, v.IsVector())

	src[0] = 100 // caller mutation must not leak in
	got, err := matrix.VectorData(v)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, got)

	got[1] = -5 // and VectorData copies out
	again, _ := matrix.VectorData(v)
	require.Equal(t, 2.0, again[1])

	_, err = matrix.NewVector(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewVector([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewVector([]float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}

// TestVectorData_RowAndErrors flattens a row vector and rejects matrices.
func TestVectorData_RowAndErrors(t *testing.T) {
	row, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	_ = row.Set(0, 0, 4)
	_ = row.Set(0, 1, 5)
	got, err := matrix.VectorData(row)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5}, got)

	sq, _ := matrix.NewDense(2, 2)
	_, err = matrix.VectorData(sq)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestNorm2 checks the Euclidean norm and NaN propagation.
func TestNorm2(t *testing.T) {
	v, _ := matrix.NewVector([]float64{3, 4})
	n, err := matrix.Norm2(v)
	require.NoError(t, err)
	require.Equal(t, 5.0, n)

	w, _ := matrix.NewVector([]float64{math.NaN(), 1}, matrix.WithNoValidateNaNInf())
	n, err = matrix.Norm2(w)
	require.NoError(t, err)
	require.True(t, math.IsNaN(n))

	_, err = matrix.Norm2(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAllClose covers tolerance, NaN pairing and shape mismatch.
func TestAllClose(t *testing.T) {
	a, _ := matrix.NewVector([]float64{1, 2})
	b, _ := matrix.NewVector([]float64{1 + 1e-12, 2})
	c, _ := matrix.NewVector([]float64{1.1, 2})

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, c)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, c, matrix.WithEpsilon(0.2))
	require.NoError(t, err)
	require.True(t, ok)

	x, _ := matrix.NewVector([]float64{math.NaN(), math.Inf(1)}, matrix.WithNoValidateNaNInf())
	y, _ := matrix.NewVector([]float64{math.NaN(), math.Inf(1)}, matrix.WithNoValidateNaNInf())
	ok, err = matrix.AllClose(x, y)
	require.NoError(t, err)
	require.True(t, ok)

	long, _ := matrix.NewVector([]float64{1, 2, 3})
	_, err = matrix.AllClose(a, long)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestFormatVector pins the diagnostic layout.
func TestFormatVector(t *testing.T) {
	require.Equal(t, "[1, -0.5, 3]", matrix.FormatVector([]float64{1, -0.5, 3}))
	require.Equal(t, "[]", matrix.FormatVector(nil))
}

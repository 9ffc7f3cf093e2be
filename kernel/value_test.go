// SPDX-License-Identifier: MIT
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {
	n := kernel.NumericScalar(2.5)
	v, ok := n.Float64()
	require.True(t, ok)
	assert.Equal(t, 2.5, v)
	_, ok = n.Expr()
	assert.False(t, ok)
	assert.Equal(t, "2.5", n.String())

	s := kernel.SymbolicScalar(symbolic.NewSymbol("x"))
	e, ok := s.Expr()
	require.True(t, ok)
	assert.Equal(t, "x", e.String())
	_, ok = s.Float64()
	assert.False(t, ok)
	assert.Equal(t, kernel.Symbolic, s.Domain())

	var zero kernel.Scalar
	assert.Equal(t, kernel.Numeric, zero.Domain())
	assert.Equal(t, "0", zero.String())
}

func TestSumScalars(t *testing.T) {
	sum, err := kernel.SumScalars(kernel.NumericScalar(1), kernel.NumericScalar(2))
	require.NoError(t, err)
	v, _ := sum.Float64()
	assert.Equal(t, 3.0, v)

	sym, err := kernel.SumScalars(
		kernel.SymbolicScalar(symbolic.NewSymbol("a")),
		kernel.SymbolicScalar(symbolic.NewSymbol("b")))
	require.NoError(t, err)
	assert.Equal(t, "(a+b)", sym.String())

	empty, err := kernel.SumScalars()
	require.NoError(t, err)
	assert.Equal(t, "0", empty.String())

	_, err = kernel.SumScalars(kernel.NumericScalar(1), kernel.SymbolicScalar(symbolic.Const(1)))
	require.ErrorIs(t, err, kernel.ErrDomainMismatch)
}

func TestVectorAndConcat(t *testing.T) {
	src := []float64{1, 2}
	a := kernel.NumericVector(src)
	src[0] = 9
	got, ok := a.Float64s()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, got)
	assert.Equal(t, "[1, 2]", a.String())

	cat, err := kernel.ConcatVectors(a, kernel.NumericVector([]float64{3}))
	require.NoError(t, err)
	got, _ = cat.Float64s()
	assert.Equal(t, []float64{1, 2, 3}, got)
	assert.Equal(t, 3, cat.Len())

	s := kernel.SymbolicVector(symbolic.NewVector("x", 2))
	exprs, ok := s.Exprs()
	require.True(t, ok)
	assert.Len(t, exprs, 2)
	_, ok = s.Float64s()
	assert.False(t, ok)

	_, err = kernel.ConcatVectors(a, s)
	require.ErrorIs(t, err, kernel.ErrDomainMismatch)
}

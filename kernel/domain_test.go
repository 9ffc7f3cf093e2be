// SPDX-License-Identifier: MIT
package kernel_test

import (
	"testing"

	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassify_Numeric covers every accepted numeric container.
func TestClassify_Numeric(t *testing.T) {
	col, err := matrix.NewVector([]float64{1, 2, 3})
	require.NoError(t, err)
	row, err := col.Reshape(1, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   kernel.Point
	}{
		{"[]float64", []float64{1, 2, 3}},
		{"[]int", []int{1, 2, 3}},
		{"[]any", []any{1, 2.0, 3}},
		{"column Dense", col},
		{"row Dense", row},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			in, err := kernel.Classify(tc.in)
			require.NoError(t, err)
			assert.Equal(t, kernel.Numeric, in.Domain())
			assert.Equal(t, 3, in.Len())
			assert.Equal(t, []float64{1, 2, 3}, in.Numbers())
			assert.Nil(t, in.Symbols())
			assert.Equal(t, "[1, 2, 3]", in.String())
		})
	}
}

// TestClassify_Symbolic covers vectors and the single-expression case.
func TestClassify_Symbolic(t *testing.T) {
	u := symbolic.NewVector("u", 2)

	in, err := kernel.Classify(u)
	require.NoError(t, err)
	assert.Equal(t, kernel.Symbolic, in.Domain())
	assert.Equal(t, 2, in.Len())
	assert.Nil(t, in.Numbers())
	assert.Equal(t, "[u_0, u_1]", in.String())

	in, err = kernel.Classify([]symbolic.Expr(u))
	require.NoError(t, err)
	assert.Equal(t, kernel.Symbolic, in.Domain())

	in, err = kernel.Classify(symbolic.NewSymbol("x"))
	require.NoError(t, err)
	assert.Equal(t, kernel.Symbolic, in.Domain())
	assert.Equal(t, 1, in.Len())
}

// TestClassify_Rejects ensures nothing is silently coerced.
func TestClassify_Rejects(t *testing.T) {
	square, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	var nilDense *matrix.Dense
	var nilSym *symbolic.Symbol

	tests := []struct {
		name string
		in   kernel.Point
	}{
		{"nil", nil},
		{"empty floats", []float64{}},
		{"empty exprs", symbolic.Vector{}},
		{"string", "1,2"},
		{"float", 1.5},
		{"[]string", []string{"a"}},
		{"[]float32", []float32{1}},
		{"[]any with string", []any{1.0, "x"}},
		{"[]any with expr", []any{1.0, symbolic.NewSymbol("x")}},
		{"square Dense", square},
		{"nil Dense", nilDense},
		{"nil expr in vector", symbolic.Vector{symbolic.NewSymbol("a"), nil}},
		{"typed nil symbol", nilSym},
		{"map", map[int]float64{0: 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.Classify(tc.in)
			require.ErrorIs(t, err, kernel.ErrInvalidInputType)
		})
	}
}

// TestClassify_Copies makes sure the input never aliases caller storage.
func TestClassify_Copies(t *testing.T) {
	src := []float64{1, 2}
	in, err := kernel.Classify(src)
	require.NoError(t, err)
	src[0] = 100

	got := in.Numbers()
	require.Equal(t, []float64{1, 2}, got)
	got[1] = -5
	require.Equal(t, []float64{1, 2}, in.Numbers())
}

// TestInput_SliceAndPoint round-trips segments through Classify.
func TestInput_SliceAndPoint(t *testing.T) {
	in, err := kernel.Classify([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	seg := in.Slice(1, 3)
	require.Equal(t, []float64{2, 3}, seg.Numbers())

	again, err := kernel.Classify(seg.Point())
	require.NoError(t, err)
	require.Equal(t, seg.Numbers(), again.Numbers())

	sin, err := kernel.Classify(symbolic.NewVector("x", 3))
	require.NoError(t, err)
	sseg := sin.Slice(2, 3)
	require.Equal(t, kernel.Symbolic, sseg.Domain())
	require.Equal(t, "[x_2]", sseg.String())
	_, ok := sseg.Point().(symbolic.Vector)
	require.True(t, ok)
}

func TestDomain_String(t *testing.T) {
	assert.Equal(t, "numeric", kernel.Numeric.String())
	assert.Equal(t, "symbolic", kernel.Symbolic.String())
	assert.Equal(t, "Domain(9)", kernel.Domain(9).String())
}

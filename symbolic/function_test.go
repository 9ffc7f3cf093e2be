// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"testing"

	"github.com/katalvlaran/lvopt/symbolic"
	"github.com/stretchr/testify/require"
)

// TestFunction_Call evaluates positional inputs.
func TestFunction_Call(t *testing.T) {
	u := symbolic.NewVector("u", 2)
	f, err := symbolic.NewFunction("dist", u, symbolic.Norm2(u...), symbolic.Sum(u...))
	require.NoError(t, err)
	require.Equal(t, "dist", f.Name())
	require.Equal(t, 2, f.NumInputs())
	require.Equal(t, 2, f.NumOutputs())
	require.Equal(t, "dist(u_0, u_1) -> [norm_2([u_0, u_1]), (u_0+u_1)]", f.String())

	out, err := f.Call([]float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7}, out)

	_, err = f.Call([]float64{1})
	require.ErrorIs(t, err, symbolic.ErrArity)
}

// TestNewFunction_Validation covers every construction error.
func TestNewFunction_Validation(t *testing.T) {
	u := symbolic.NewVector("u", 2)
	w := symbolic.NewSymbol("w")

	_, err := symbolic.NewFunction("f", symbolic.Vector{symbolic.Add(u[0], u[1])}, u[0])
	require.ErrorIs(t, err, symbolic.ErrNotSymbol)

	_, err = symbolic.NewFunction("f", symbolic.Vector{u[0], u[0]}, u[0])
	require.ErrorIs(t, err, symbolic.ErrDuplicateSymbol)

	_, err = symbolic.NewFunction("f", u, symbolic.Add(u[0], w))
	require.ErrorIs(t, err, symbolic.ErrFreeSymbol)
}

// TestVector_Bind pairs symbols with values.
func TestVector_Bind(t *testing.T) {
	u := symbolic.NewVector("u", 2)
	env, err := u.Bind([]float64{1, 2})
	require.NoError(t, err)
	require.Equal(t, symbolic.Env{"u_0": 1, "u_1": 2}, env)

	_, err = u.Bind([]float64{1})
	require.ErrorIs(t, err, symbolic.ErrArity)

	_, err = symbolic.Consts([]float64{1}).Bind([]float64{1})
	require.ErrorIs(t, err, symbolic.ErrNotSymbol)

	require.Empty(t, symbolic.NewVector("z", 0))
}

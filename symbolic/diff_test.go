// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvopt/symbolic"
	"github.com/stretchr/testify/require"
)

// numericPartial approximates ∂e/∂name at env by central differences.
func numericPartial(t *testing.T, e symbolic.Expr, env symbolic.Env, name string) float64 {
	t.Helper()
	const h = 1e-6
	plus, minus := symbolic.Env{}, symbolic.Env{}
	for k, v := range env {
		plus[k], minus[k] = v, v
	}
	plus[name] += h
	minus[name] -= h
	fp, err := e.Eval(plus)
	require.NoError(t, err)
	fm, err := e.Eval(minus)
	require.NoError(t, err)

	return (fp - fm) / (2 * h)
}

// TestDiff_AgainstFiniteDifferences checks every smooth rule at a generic point.
func TestDiff_AgainstFiniteDifferences(t *testing.T) {
	x, y := symbolic.NewSymbol("x"), symbolic.NewSymbol("y")
	env := symbolic.Env{"x": 1.3, "y": -0.7}

	exprs := map[string]symbolic.Expr{
		"add":   symbolic.Add(x, y),
		"sub":   symbolic.Sub(x, y),
		"mul":   symbolic.Mul(x, y),
		"div":   symbolic.Div(x, y),
		"div c": symbolic.Div(x, symbolic.Const(4)),
		"neg":   symbolic.Neg(symbolic.Mul(x, y)),
		"pow":   symbolic.Pow(symbolic.Add(x, y), 3),
		"sqrt":  symbolic.Sqrt(symbolic.Add(symbolic.Mul(x, x), symbolic.Const(1))),
		"norm":  symbolic.Norm2(x, y, symbolic.Const(2)),
		"fmax":  symbolic.FMax(x, y),
		"fmin":  symbolic.FMin(x, y),
		"chain": symbolic.Mul(symbolic.Sign(x), symbolic.Pow(symbolic.Sub(symbolic.Norm2(x, y), symbolic.Const(1)), 2)),
	}
	for name, e := range exprs {
		e := e
		t.Run(name, func(t *testing.T) {
			for _, v := range []string{"x", "y"} {
				d, err := e.Diff(v).Eval(env)
				require.NoError(t, err)
				require.InDelta(t, numericPartial(t, e, env, v), d, 1e-6, "∂/∂%s", v)
			}
		})
	}
}

// TestDiff_PiecewiseRules pins the sign/step/fmax conventions.
func TestDiff_PiecewiseRules(t *testing.T) {
	x := symbolic.NewSymbol("x")

	require.Equal(t, "0", symbolic.Sign(x).Diff("x").String())
	require.Equal(t, "0", symbolic.Step(x, symbolic.Const(1)).Diff("x").String())
	require.Equal(t, "1", x.Diff("x").String())
	require.Equal(t, "0", x.Diff("y").String())
	require.Equal(t, "0", symbolic.Const(3).Diff("x").String())

	// at a tie fmax splits the derivative in half
	d := symbolic.FMax(symbolic.Const(0), x).Diff("x")
	got, err := d.Eval(symbolic.Env{"x": 0})
	require.NoError(t, err)
	require.Equal(t, 0.5, got)

	got, err = d.Eval(symbolic.Env{"x": 2})
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	got, err = d.Eval(symbolic.Env{"x": -2})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

// TestDiff_NormAtOrigin is NaN, the documented convention.
func TestDiff_NormAtOrigin(t *testing.T) {
	u := symbolic.NewVector("u", 2)
	d := symbolic.Norm2(u...).Diff("u_0")
	got, err := d.Eval(symbolic.Env{"u_0": 0, "u_1": 0})
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
}

// TestGradientAndJacobian checks shapes and the symbol guard.
func TestGradientAndJacobian(t *testing.T) {
	u := symbolic.NewVector("u", 2)
	f := symbolic.Dot(u, u) // u_0² + u_1²

	g, err := symbolic.Gradient(f, u)
	require.NoError(t, err)
	require.Len(t, g, 2)
	vals, err := g.Eval(symbolic.Env{"u_0": 1, "u_1": -2})
	require.NoError(t, err)
	require.Equal(t, []float64{2, -4}, vals)

	jac, err := symbolic.Jacobian(symbolic.Vector{f, u[0]}, u)
	require.NoError(t, err)
	require.Len(t, jac, 2)
	require.Equal(t, "1", jac[1][0].String())
	require.Equal(t, "0", jac[1][1].String())

	_, err = symbolic.Gradient(f, symbolic.Vector{symbolic.Add(u[0], u[1])})
	require.ErrorIs(t, err, symbolic.ErrNotSymbol)
}

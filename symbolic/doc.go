// SPDX-License-Identifier: MIT

// Package symbolic is a small expression-graph engine for building penalty
// terms once and differentiating or evaluating them later.
//
// Expressions are immutable DAG nodes over float64 constants and named
// scalar symbols:
//
//	u := symbolic.NewVector("u", 2)          // u_0, u_1
//	t := symbolic.Sub(symbolic.Norm2(u...), symbolic.Const(1))
//	f := symbolic.FMax(symbolic.Const(0), symbolic.Mul(symbolic.Sign(t), symbolic.Pow(t, 2)))
//	g, _ := symbolic.Gradient(f, u)
//
// Operators:
//   - arithmetic: Add, Sub, Mul, Div, Neg, Pow (integer exponent), Sqrt;
//   - piecewise: Sign, FMax, FMin, Step;
//   - reductions: Sum, Dot, Norm2.
//
// Constructors fold constants and drop neutral elements (x+0, x*1, x*0, x^1),
// so the graph handed to a code generator stays small. Folding x*0 to 0 is
// the usual symbolic convention and ignores a NaN x.
//
// Numeric semantics of Eval follow the matrix package kernels (SignOf,
// FMaxOf, FMinOf), so a symbolic formula evaluated at a point returns the
// same number as its numeric twin.
//
// Derivatives: sign and step are piecewise constant (derivative 0); fmax
// splits the derivative with weight 1, ½ or 0 on a>b, a=b, a<b; norm_2 has
// derivative Σ xᵢ·dxᵢ / ‖x‖ (NaN at the origin).
package symbolic

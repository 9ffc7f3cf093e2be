// SPDX-License-Identifier: MIT

// Package kernel is the dual-domain numeric kernel shared by every constraint set.
//
// A point reaches a constraint either as concrete numbers ([]float64, []int,
// a numeric []any or a vector-shaped *matrix.Dense) or as a vector of
// expression-graph nodes (symbolic.Vector, or a single symbolic.Expr).
// Classify inspects the point once per call and returns an Input tagged with
// its Domain; anything else fails with ErrInvalidInputType, with no silent
// coercion.
//
// Geometry is written once, as a generic formula over Ops[S]:
//
//	func dist[S any](ops kernel.Ops[S], u []S) S {
//		t := ops.Sub(ops.Norm(u), ops.Const(1))
//		return ops.Max(ops.Const(0), ops.Mul(ops.Sign(t), ops.Pow(t, 2)))
//	}
//
// FloatOps binds the primitives {sign, max, norm} to the matrix package and
// returns numbers; ExprOps binds them to the symbolic package and returns new,
// unevaluated expressions. EvalScalar and EvalVector run the float64 or the
// symbolic.Expr instantiation depending on the classified domain, so formulas
// never test the domain themselves.
//
// Results come back as Scalar or Vector values that remember their domain.
// Everything in this package is stateless and safe for concurrent use.
package kernel

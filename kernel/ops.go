// SPDX-License-Identifier: MIT
// Package: kernel
//
// Purpose:
//   - Ops[S] is the capability set a geometry formula may use: the primitive
//     triple {Sign, Max, Norm} plus the arithmetic needed to combine them.
//   - FloatOps evaluates on float64 through the matrix package.
//   - ExprOps builds symbolic.Expr graphs through the symbolic package.
//
// Contract:
//   - Both back-ends follow the same IEEE conventions: Sign(NaN) is NaN, Max
//     ignores a single NaN operand, Norm propagates NaN.
//   - Offset and Shift require len(u) == len(c) and report ErrDimensionMismatch
//     from the matrix package otherwise.

package kernel

import (
	"math"

	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/symbolic"
)

// Ops is the set of domain primitives a formula is written against.
type Ops[S any] interface {
	// Domain reports which back-end the values belong to.
	Domain() Domain

	// Const lifts a number into the domain.
	Const(v float64) S

	// Sign returns -1, 0 or 1 (NaN for NaN).
	Sign(x S) S
	// Max is the element-wise maximum, ignoring a single NaN operand.
	Max(a, b S) S
	// Norm is the Euclidean norm of v; 0 for an empty v.
	Norm(v []S) S

	Add(a, b S) S
	Sub(a, b S) S
	Mul(a, b S) S
	// Pow raises x to an integer power.
	Pow(x S, n int) S

	// Offset returns u - c.
	Offset(u []S, c []float64) ([]S, error)
	// Shift returns v + c.
	Shift(v []S, c []float64) ([]S, error)
}

// Compile-time assertions.
var (
	_ Ops[float64]       = FloatOps{}
	_ Ops[symbolic.Expr] = ExprOps{}
)

// points are caller data: NaN must flow through the kernel, not be rejected.
var pointPolicy = matrix.WithNoValidateNaNInf()

// FloatOps evaluates primitives on concrete numbers.
type FloatOps struct{}

func (FloatOps) Domain() Domain               { return Numeric }
func (FloatOps) Const(v float64) float64      { return v }
func (FloatOps) Sign(x float64) float64       { return matrix.SignOf(x) }
func (FloatOps) Max(a, b float64) float64     { return matrix.FMaxOf(a, b) }
func (FloatOps) Add(a, b float64) float64     { return a + b }
func (FloatOps) Sub(a, b float64) float64     { return a - b }
func (FloatOps) Mul(a, b float64) float64     { return a * b }
func (FloatOps) Pow(x float64, n int) float64 { return math.Pow(x, float64(n)) }

// Norm builds a column vector and takes its 2-norm.
func (FloatOps) Norm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	col, err := matrix.NewVector(v, pointPolicy)
	if err != nil {
		return math.NaN() // unreachable: v is non-empty and unvalidated
	}
	n, err := matrix.Norm2(col)
	if err != nil {
		return math.NaN()
	}

	return n
}

// Offset subtracts c as two column vectors through matrix.Sub.
func (FloatOps) Offset(u []float64, c []float64) ([]float64, error) {
	return floatCombine(u, c, matrix.Sub, "FloatOps.Offset")
}

// Shift adds c as two column vectors through matrix.Add.
func (FloatOps) Shift(v []float64, c []float64) ([]float64, error) {
	return floatCombine(v, c, matrix.Add, "FloatOps.Shift")
}

func floatCombine(a, b []float64, op func(matrix.Matrix, matrix.Matrix) (matrix.Matrix, error), tag string) ([]float64, error) {
	if len(a) == 0 && len(b) == 0 {
		return []float64{}, nil
	}
	ma, err := matrix.NewVector(a, pointPolicy)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}
	mb, err := matrix.NewVector(b, pointPolicy)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}
	res, err := op(ma, mb)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}
	out, err := matrix.VectorData(res)
	if err != nil {
		return nil, kernelErrorf(tag, err)
	}

	return out, nil
}

// ExprOps builds expression graphs.
type ExprOps struct{}

func (ExprOps) Domain() Domain                           { return Symbolic }
func (ExprOps) Const(v float64) symbolic.Expr            { return symbolic.Const(v) }
func (ExprOps) Sign(x symbolic.Expr) symbolic.Expr       { return symbolic.Sign(x) }
func (ExprOps) Max(a, b symbolic.Expr) symbolic.Expr     { return symbolic.FMax(a, b) }
func (ExprOps) Norm(v []symbolic.Expr) symbolic.Expr     { return symbolic.Norm2(v...) }
func (ExprOps) Add(a, b symbolic.Expr) symbolic.Expr     { return symbolic.Add(a, b) }
func (ExprOps) Sub(a, b symbolic.Expr) symbolic.Expr     { return symbolic.Sub(a, b) }
func (ExprOps) Mul(a, b symbolic.Expr) symbolic.Expr     { return symbolic.Mul(a, b) }
func (ExprOps) Pow(x symbolic.Expr, n int) symbolic.Expr { return symbolic.Pow(x, n) }

// Offset returns uᵢ - cᵢ element by element.
func (ExprOps) Offset(u []symbolic.Expr, c []float64) ([]symbolic.Expr, error) {
	return exprCombine(u, c, symbolic.Sub, "ExprOps.Offset")
}

// Shift returns vᵢ + cᵢ element by element.
func (ExprOps) Shift(v []symbolic.Expr, c []float64) ([]symbolic.Expr, error) {
	return exprCombine(v, c, symbolic.Add, "ExprOps.Shift")
}

func exprCombine(a []symbolic.Expr, c []float64, op func(x, y symbolic.Expr) symbolic.Expr, tag string) ([]symbolic.Expr, error) {
	if len(a) != len(c) {
		return nil, kernelErrorf(tag, matrix.ErrDimensionMismatch)
	}
	out := make([]symbolic.Expr, len(a))
	for i := range a {
		out[i] = op(a[i], symbolic.Const(c[i]))
	}

	return out, nil
}

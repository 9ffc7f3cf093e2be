// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/lvopt/symbolic"

// ScalarFunc is one instantiation of a scalar-valued formula.
type ScalarFunc[S any] func(ops Ops[S], u []S) (S, error)

// VectorFunc is one instantiation of a vector-valued formula.
type VectorFunc[S any] func(ops Ops[S], u []S) ([]S, error)

// EvalScalar runs num or sym, whichever matches the domain of in.
// Pass both instantiations of the same generic formula:
//
//	kernel.EvalScalar(in, dist[float64], dist[symbolic.Expr])
func EvalScalar(in Input, num ScalarFunc[float64], sym ScalarFunc[symbolic.Expr]) (Scalar, error) {
	if in.domain == Symbolic {
		e, err := sym(ExprOps{}, in.syms)
		if err != nil {
			return Scalar{}, err
		}
		return SymbolicScalar(e), nil
	}
	if in.domain != Numeric {
		return Scalar{}, kernelErrorf("EvalScalar(unclassified)", ErrInvalidInputType)
	}
	v, err := num(FloatOps{}, in.nums)
	if err != nil {
		return Scalar{}, err
	}

	return NumericScalar(v), nil
}

// EvalVector is EvalScalar for vector-valued formulas.
func EvalVector(in Input, num VectorFunc[float64], sym VectorFunc[symbolic.Expr]) (Vector, error) {
	if in.domain == Symbolic {
		e, err := sym(ExprOps{}, in.syms)
		if err != nil {
			return Vector{}, err
		}
		return SymbolicVector(e), nil
	}
	if in.domain != Numeric {
		return Vector{}, kernelErrorf("EvalVector(unclassified)", ErrInvalidInputType)
	}
	v, err := num(FloatOps{}, in.nums)
	if err != nil {
		return Vector{}, err
	}

	return NumericVector(v), nil
}

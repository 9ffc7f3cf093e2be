// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/symbolic"
)

// Scalar is a domain-tagged scalar result: a float64 or a symbolic.Expr.
// The zero value is the numeric 0.
type Scalar struct {
	domain Domain
	num    float64
	expr   symbolic.Expr
}

// NumericScalar wraps a number.
func NumericScalar(v float64) Scalar { return Scalar{domain: Numeric, num: v} }

// SymbolicScalar wraps an expression.
func SymbolicScalar(e symbolic.Expr) Scalar { return Scalar{domain: Symbolic, expr: e} }

// Domain returns Numeric or Symbolic.
func (s Scalar) Domain() Domain {
	if s.domain == Symbolic {
		return Symbolic
	}

	return Numeric
}

// Float64 returns the number and true for a numeric scalar.
func (s Scalar) Float64() (float64, bool) {
	if s.domain == Symbolic {
		return 0, false
	}

	return s.num, true
}

// Expr returns the expression and true for a symbolic scalar.
func (s Scalar) Expr() (symbolic.Expr, bool) {
	if s.domain != Symbolic {
		return nil, false
	}

	return s.expr, true
}

func (s Scalar) String() string {
	if s.domain == Symbolic {
		return s.expr.String()
	}

	return strconv.FormatFloat(s.num, 'g', -1, 64)
}

// SumScalars adds same-domain scalars. An empty list is the numeric 0.
//
// Errors: ErrDomainMismatch when numeric and symbolic terms are mixed.
func SumScalars(xs ...Scalar) (Scalar, error) {
	if len(xs) == 0 {
		return NumericScalar(0), nil
	}
	d := xs[0].Domain()
	for i, x := range xs {
		if x.Domain() != d {
			return Scalar{}, kernelErrorf(fmt.Sprintf("SumScalars[%d]: %s + %s", i, d, x.Domain()), ErrDomainMismatch)
		}
	}
	if d == Symbolic {
		terms := make([]symbolic.Expr, len(xs))
		for i, x := range xs {
			terms[i] = x.expr
		}
		return SymbolicScalar(symbolic.Sum(terms...)), nil
	}
	var sum float64
	for _, x := range xs {
		sum += x.num
	}

	return NumericScalar(sum), nil
}

// Vector is a domain-tagged vector result.
// The zero value is an empty numeric vector.
type Vector struct {
	domain Domain
	nums   []float64
	exprs  symbolic.Vector
}

// NumericVector wraps a copy of v.
func NumericVector(v []float64) Vector {
	return Vector{domain: Numeric, nums: append([]float64{}, v...)}
}

// SymbolicVector wraps a copy of v.
func SymbolicVector(v []symbolic.Expr) Vector {
	return Vector{domain: Symbolic, exprs: append(symbolic.Vector{}, v...)}
}

// Domain returns Numeric or Symbolic.
func (v Vector) Domain() Domain {
	if v.domain == Symbolic {
		return Symbolic
	}

	return Numeric
}

// Len returns the number of components.
func (v Vector) Len() int {
	if v.domain == Symbolic {
		return len(v.exprs)
	}

	return len(v.nums)
}

// Float64s returns a copy of the components and true for a numeric vector.
func (v Vector) Float64s() ([]float64, bool) {
	if v.domain == Symbolic {
		return nil, false
	}

	return append([]float64{}, v.nums...), true
}

// Exprs returns a copy of the components and true for a symbolic vector.
func (v Vector) Exprs() (symbolic.Vector, bool) {
	if v.domain != Symbolic {
		return nil, false
	}

	return append(symbolic.Vector{}, v.exprs...), true
}

func (v Vector) String() string {
	if v.domain == Symbolic {
		return v.exprs.String()
	}

	return matrix.FormatVector(v.nums)
}

// ConcatVectors joins same-domain vectors in order.
//
// Errors: ErrDomainMismatch when numeric and symbolic parts are mixed.
func ConcatVectors(vs ...Vector) (Vector, error) {
	if len(vs) == 0 {
		return NumericVector(nil), nil
	}
	d := vs[0].Domain()
	out := Vector{domain: d}
	for i, v := range vs {
		if v.Domain() != d {
			return Vector{}, kernelErrorf(fmt.Sprintf("ConcatVectors[%d]: %s + %s", i, d, v.Domain()), ErrDomainMismatch)
		}
		if d == Symbolic {
			out.exprs = append(out.exprs, v.exprs...)
		} else {
			out.nums = append(out.nums, v.nums...)
		}
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

package constraints

import (
	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/symbolic"
)

// Zero is the singleton {0}. It accepts points of any dimension.
type Zero struct{}

var _ Constraint = Zero{}

// NewZero returns the zero set.
func NewZero() Zero { return Zero{} }

func (Zero) Kind() Kind             { return KindZero }
func (Zero) Dimension() (int, bool) { return 0, false }
func (Zero) IsConvex() bool         { return true }
func (Zero) IsCompact() bool        { return true }
func (Zero) String() string         { return "Zero" }

// DistanceSquared returns Σ uᵢ².
func (Zero) DistanceSquared(u kernel.Point) (kernel.Scalar, error) {
	in, err := classifyPoint("Zero.DistanceSquared", u, 0, false)
	if err != nil {
		return kernel.Scalar{}, err
	}

	return kernel.EvalScalar(in, zeroDistanceSquared[float64], zeroDistanceSquared[symbolic.Expr])
}

// Project returns the zero vector of the same length and domain as u.
func (Zero) Project(u kernel.Point) (kernel.Vector, error) {
	in, err := classifyPoint("Zero.Project", u, 0, false)
	if err != nil {
		return kernel.Vector{}, err
	}

	return kernel.EvalVector(in, zeroProject[float64], zeroProject[symbolic.Expr])
}

func zeroDistanceSquared[S any](ops kernel.Ops[S], u []S) (S, error) {
	terms := make([]S, len(u))
	for i, ui := range u {
		terms[i] = ops.Pow(ui, 2)
	}

	return sumOf(ops, terms), nil
}

func zeroProject[S any](ops kernel.Ops[S], u []S) ([]S, error) {
	out := make([]S, len(u))
	for i := range out {
		out[i] = ops.Const(0)
	}

	return out, nil
}

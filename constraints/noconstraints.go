// SPDX-License-Identifier: MIT

package constraints

import (
	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/symbolic"
)

// NoConstraints is the whole space: every point is feasible.
type NoConstraints struct{}

var _ Constraint = NoConstraints{}

// NewNoConstraints returns the unconstrained set.
func NewNoConstraints() NoConstraints { return NoConstraints{} }

func (NoConstraints) Kind() Kind             { return KindNoConstraints }
func (NoConstraints) Dimension() (int, bool) { return 0, false }
func (NoConstraints) IsConvex() bool         { return true }
func (NoConstraints) IsCompact() bool        { return false }
func (NoConstraints) String() string         { return "NoConstraints" }

// DistanceSquared is 0 in the domain of u.
func (NoConstraints) DistanceSquared(u kernel.Point) (kernel.Scalar, error) {
	in, err := classifyPoint("NoConstraints.DistanceSquared", u, 0, false)
	if err != nil {
		return kernel.Scalar{}, err
	}

	return kernel.EvalScalar(in, freeDistanceSquared[float64], freeDistanceSquared[symbolic.Expr])
}

// Project returns a copy of u.
func (NoConstraints) Project(u kernel.Point) (kernel.Vector, error) {
	in, err := classifyPoint("NoConstraints.Project", u, 0, false)
	if err != nil {
		return kernel.Vector{}, err
	}

	return kernel.EvalVector(in, freeProject[float64], freeProject[symbolic.Expr])
}

func freeDistanceSquared[S any](ops kernel.Ops[S], _ []S) (S, error) { return ops.Const(0), nil }

func freeProject[S any](_ kernel.Ops[S], u []S) ([]S, error) { return u, nil }

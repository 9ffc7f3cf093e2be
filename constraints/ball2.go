// SPDX-License-Identifier: MIT
// Package: constraints
//
// Purpose:
//   - Ball2 is the Euclidean ball {x : ‖x − c‖₂ ≤ r}.
//   - An absent center means the origin. It is kept as an explicit state and
//     no zero vector is ever materialised for it.
//
// Formula:
//   - t = ‖u − c‖₂ − r (signed excess, negative inside the ball)
//   - DistanceSquared(u) = max(0, sign(t)·t²)
//   - The sign(t)·t² shape is kept as written: the symbolic graph built from
//     it is what downstream differentiation sees.
//
// Project:
//   - Not provided. Always ErrNotImplemented, whatever the point.

package constraints

import (
	"fmt"

	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/symbolic"
)

// Ball2 is a Euclidean ball with an optional center.
type Ball2 struct {
	center []float64 // nil: centered at the origin
	radius float64   // finite, > 0
}

var _ Constraint = (*Ball2)(nil)

// NewBall2 builds a Euclidean ball.
//
// center may be nil (origin), []float64, []int, a numeric []any or a
// vector-shaped *matrix.Dense; it is copied.
//
// Errors: ErrInvalidParameter when radius is not finite and > 0, or when
// center is non-nil but not a non-empty finite numeric vector.
func NewBall2(center any, radius float64) (*Ball2, error) {
	const tag = "NewBall2"
	if err := positiveRadius(tag, radius); err != nil {
		return nil, err
	}
	c, err := finiteVector(tag, "center", center)
	if err != nil {
		return nil, err
	}

	return &Ball2{center: c, radius: radius}, nil
}

// Center returns a copy of the center, and false when the ball is centered
// at the origin.
func (b *Ball2) Center() ([]float64, bool) {
	if b.center == nil {
		return nil, false
	}

	return copyOf(b.center), true
}

// Radius returns the radius.
func (b *Ball2) Radius() float64 { return b.radius }

func (b *Ball2) Kind() Kind { return KindBall2 }

func (b *Ball2) Dimension() (int, bool) { return len(b.center), b.center != nil }

func (b *Ball2) IsConvex() bool { return true }

func (b *Ball2) IsCompact() bool { return true }

// DistanceSquared returns max(0, sign(t)·t²) with t = ‖u − c‖₂ − r.
// The result is exactly 0 inside and on the boundary.
//
// Errors: ErrInvalidInputType, ErrDimensionMismatch (center present and
// len(u) differs).
func (b *Ball2) DistanceSquared(u kernel.Point) (kernel.Scalar, error) {
	n, fixed := b.Dimension()
	in, err := classifyPoint("Ball2.DistanceSquared", u, n, fixed)
	if err != nil {
		return kernel.Scalar{}, err
	}

	return kernel.EvalScalar(in,
		func(ops kernel.Ops[float64], v []float64) (float64, error) {
			return ball2DistanceSquared(ops, v, b.center, b.radius)
		},
		func(ops kernel.Ops[symbolic.Expr], v []symbolic.Expr) (symbolic.Expr, error) {
			return ball2DistanceSquared(ops, v, b.center, b.radius)
		})
}

// Project is not provided for Ball2.
func (b *Ball2) Project(kernel.Point) (kernel.Vector, error) {
	return kernel.Vector{}, constraintErrorf("Ball2.Project", ErrNotImplemented)
}

func (b *Ball2) String() string {
	return fmt.Sprintf("Ball2(center=%s, radius=%g)", formatCenter(b.center), b.radius)
}

func ball2DistanceSquared[S any](ops kernel.Ops[S], u []S, center []float64, radius float64) (S, error) {
	v, err := offsetFrom(ops, u, center)
	if err != nil {
		var zero S
		return zero, err
	}
	t := ops.Sub(ops.Norm(v), ops.Const(radius))

	return penalty(ops, t), nil
}

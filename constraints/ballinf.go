// SPDX-License-Identifier: MIT

package constraints

import (
	"fmt"

	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/symbolic"
)

// BallInf is the infinity-norm ball {x : max |xᵢ − cᵢ| ≤ r}, a box of
// half-width r. The center is optional, as for Ball2.
type BallInf struct {
	center []float64
	radius float64
}

var _ Constraint = (*BallInf)(nil)

// NewBallInf validates its parameters like NewBall2.
func NewBallInf(center any, radius float64) (*BallInf, error) {
	const tag = "NewBallInf"
	if err := positiveRadius(tag, radius); err != nil {
		return nil, err
	}
	c, err := finiteVector(tag, "center", center)
	if err != nil {
		return nil, err
	}

	return &BallInf{center: c, radius: radius}, nil
}

// Center returns a copy of the center, and false for the origin.
func (b *BallInf) Center() ([]float64, bool) {
	if b.center == nil {
		return nil, false
	}

	return copyOf(b.center), true
}

// Radius returns the half-width.
func (b *BallInf) Radius() float64 { return b.radius }

func (b *BallInf) Kind() Kind             { return KindBallInf }
func (b *BallInf) Dimension() (int, bool) { return len(b.center), b.center != nil }
func (b *BallInf) IsConvex() bool         { return true }
func (b *BallInf) IsCompact() bool        { return true }

// DistanceSquared returns Σ max(0, |uᵢ − cᵢ| − r)².
func (b *BallInf) DistanceSquared(u kernel.Point) (kernel.Scalar, error) {
	n, fixed := b.Dimension()
	in, err := classifyPoint("BallInf.DistanceSquared", u, n, fixed)
	if err != nil {
		return kernel.Scalar{}, err
	}

	return kernel.EvalScalar(in,
		func(ops kernel.Ops[float64], v []float64) (float64, error) {
			return ballInfDistanceSquared(ops, v, b.center, b.radius)
		},
		func(ops kernel.Ops[symbolic.Expr], v []symbolic.Expr) (symbolic.Expr, error) {
			return ballInfDistanceSquared(ops, v, b.center, b.radius)
		})
}

// Project clamps every coordinate of u − c to [−r, r] and shifts back by c.
func (b *BallInf) Project(u kernel.Point) (kernel.Vector, error) {
	n, fixed := b.Dimension()
	in, err := classifyPoint("BallInf.Project", u, n, fixed)
	if err != nil {
		return kernel.Vector{}, err
	}

	return kernel.EvalVector(in,
		func(ops kernel.Ops[float64], v []float64) ([]float64, error) {
			return ballInfProject(ops, v, b.center, b.radius)
		},
		func(ops kernel.Ops[symbolic.Expr], v []symbolic.Expr) ([]symbolic.Expr, error) {
			return ballInfProject(ops, v, b.center, b.radius)
		})
}

func (b *BallInf) String() string {
	return fmt.Sprintf("BallInf(center=%s, radius=%g)", formatCenter(b.center), b.radius)
}

func ballInfDistanceSquared[S any](ops kernel.Ops[S], u []S, center []float64, radius float64) (S, error) {
	v, err := offsetFrom(ops, u, center)
	if err != nil {
		var zero S
		return zero, err
	}
	terms := make([]S, len(v))
	for i, vi := range v {
		terms[i] = penalty(ops, ops.Sub(absOf(ops, vi), ops.Const(radius)))
	}

	return sumOf(ops, terms), nil
}

func ballInfProject[S any](ops kernel.Ops[S], u []S, center []float64, radius float64) ([]S, error) {
	v, err := offsetFrom(ops, u, center)
	if err != nil {
		return nil, err
	}
	lo, hi := ops.Const(-radius), ops.Const(radius)
	clamped := make([]S, len(v))
	for i, vi := range v {
		clamped[i] = minOf(ops, ops.Max(vi, lo), hi)
	}

	return shiftBy(ops, clamped, center)
}

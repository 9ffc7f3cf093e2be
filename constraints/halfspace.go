// SPDX-License-Identifier: MIT

package constraints

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/symbolic"
)

// Halfspace is {x : ⟨a, x⟩ ≤ b} for a nonzero normal a.
// The formulas run on the normalised pair (a/‖a‖, b/‖a‖).
type Halfspace struct {
	normal []float64
	offset float64
	unit   []float64 // a/‖a‖
	bound  float64   // b/‖a‖
}

var _ Constraint = (*Halfspace)(nil)

// NewHalfspace copies the normal vector.
//
// Errors: ErrInvalidParameter when normal is empty, non-finite or zero,
// offset is not finite, or b/‖a‖ overflows.
func NewHalfspace(normal []float64, offset float64) (*Halfspace, error) {
	const tag = "NewHalfspace"
	a, err := finiteVector(tag, "normal", normal)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, paramErrorf(tag, "normal is required")
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return nil, paramErrorf(tag, "offset must be finite, got %g", offset)
	}
	norm := scaledNorm(a)
	if norm == 0 {
		return nil, paramErrorf(tag, "normal must be nonzero")
	}
	unit := make([]float64, len(a))
	for i, x := range a {
		unit[i] = x / norm
	}
	bound := offset / norm
	if math.IsInf(bound, 0) {
		return nil, paramErrorf(tag, "offset/‖normal‖ overflows: %g/%g", offset, norm)
	}

	return &Halfspace{normal: a, offset: offset, unit: unit, bound: bound}, nil
}

// scaledNorm is ‖a‖ folded with math.Hypot, so finite entries near the
// float64 limits neither overflow nor underflow.
func scaledNorm(a []float64) float64 {
	var n float64
	for _, x := range a {
		n = math.Hypot(n, x)
	}

	return n
}

// Normal returns a copy of the normal vector.
func (h *Halfspace) Normal() []float64 { return copyOf(h.normal) }

// Offset returns b.
func (h *Halfspace) Offset() float64 { return h.offset }

func (h *Halfspace) Kind() Kind             { return KindHalfspace }
func (h *Halfspace) Dimension() (int, bool) { return len(h.normal), true }
func (h *Halfspace) IsConvex() bool         { return true }
func (h *Halfspace) IsCompact() bool        { return false }

// DistanceSquared returns max(0, sign(t)·t²) with t = (⟨a, u⟩ − b)/‖a‖.
func (h *Halfspace) DistanceSquared(u kernel.Point) (kernel.Scalar, error) {
	in, err := classifyPoint("Halfspace.DistanceSquared", u, len(h.normal), true)
	if err != nil {
		return kernel.Scalar{}, err
	}

	return kernel.EvalScalar(in,
		func(ops kernel.Ops[float64], v []float64) (float64, error) {
			return halfspaceDistanceSquared(ops, v, h), nil
		},
		func(ops kernel.Ops[symbolic.Expr], v []symbolic.Expr) (symbolic.Expr, error) {
			return halfspaceDistanceSquared(ops, v, h), nil
		})
}

// Project returns u − max(0, t)·a/‖a‖.
func (h *Halfspace) Project(u kernel.Point) (kernel.Vector, error) {
	in, err := classifyPoint("Halfspace.Project", u, len(h.normal), true)
	if err != nil {
		return kernel.Vector{}, err
	}

	return kernel.EvalVector(in,
		func(ops kernel.Ops[float64], v []float64) ([]float64, error) {
			return halfspaceProject(ops, v, h), nil
		},
		func(ops kernel.Ops[symbolic.Expr], v []symbolic.Expr) ([]symbolic.Expr, error) {
			return halfspaceProject(ops, v, h), nil
		})
}

func (h *Halfspace) String() string {
	return fmt.Sprintf("Halfspace(normal=%s, offset=%g)", matrix.FormatVector(h.normal), h.offset)
}

// violation returns the signed distance t = ⟨a/‖a‖, u⟩ − b/‖a‖.
func violation[S any](ops kernel.Ops[S], u []S, h *Halfspace) S {
	terms := make([]S, len(u))
	for i, ui := range u {
		terms[i] = ops.Mul(ops.Const(h.unit[i]), ui)
	}

	return ops.Sub(sumOf(ops, terms), ops.Const(h.bound))
}

func halfspaceDistanceSquared[S any](ops kernel.Ops[S], u []S, h *Halfspace) S {
	return penalty(ops, violation(ops, u, h))
}

func halfspaceProject[S any](ops kernel.Ops[S], u []S, h *Halfspace) []S {
	step := ops.Max(ops.Const(0), violation(ops, u, h))
	out := make([]S, len(u))
	for i, ui := range u {
		out[i] = ops.Sub(ui, ops.Mul(ops.Const(h.unit[i]), step))
	}

	return out
}

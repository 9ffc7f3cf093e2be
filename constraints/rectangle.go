// SPDX-License-Identifier: MIT

package constraints

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/symbolic"
)

// Rectangle is the box {x : xmin ≤ x ≤ xmax}.
// Either side may be absent (nil). A lower bound may be −Inf and an upper
// bound +Inf; such bounds do not constrain the coordinate.
type Rectangle struct {
	xmin, xmax []float64
}

var _ Constraint = (*Rectangle)(nil)

// NewRectangle copies the bounds.
//
// Errors: ErrInvalidParameter when both sides are absent, a side is empty,
// lengths differ, an entry is NaN, xminᵢ = +Inf, xmaxᵢ = −Inf, or
// xminᵢ > xmaxᵢ. Each of these leaves the box empty or undefined.
func NewRectangle(xmin, xmax []float64) (*Rectangle, error) {
	const tag = "NewRectangle"
	if xmin == nil && xmax == nil {
		return nil, paramErrorf(tag, "xmin and xmax cannot both be absent")
	}
	for _, side := range []struct {
		name  string
		v     []float64
		empty int // sign of the infinity that admits no point
	}{{"xmin", xmin, 1}, {"xmax", xmax, -1}} {
		if side.v == nil {
			continue
		}
		if len(side.v) == 0 {
			return nil, paramErrorf(tag, "%s is empty", side.name)
		}
		for i, x := range side.v {
			if math.IsNaN(x) {
				return nil, paramErrorf(tag, "%s[%d] is NaN", side.name, i)
			}
			if math.IsInf(x, side.empty) {
				return nil, paramErrorf(tag, "%s[%d]=%g leaves the box empty", side.name, i, x)
			}
		}
	}
	if xmin != nil && xmax != nil {
		if err := matrix.ValidateVecLen(xmax, len(xmin)); err != nil {
			return nil, paramErrorf(tag, "len(xmin)=%d, len(xmax)=%d", len(xmin), len(xmax))
		}
		for i := range xmin {
			if xmin[i] > xmax[i] {
				return nil, paramErrorf(tag, "xmin[%d]=%g > xmax[%d]=%g", i, xmin[i], i, xmax[i])
			}
		}
	}

	return &Rectangle{xmin: copyOf(xmin), xmax: copyOf(xmax)}, nil
}

// Bounds returns copies of xmin and xmax; an absent side is nil.
func (r *Rectangle) Bounds() (xmin, xmax []float64) { return copyOf(r.xmin), copyOf(r.xmax) }

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Dimension() (int, bool) {
	if r.xmin != nil {
		return len(r.xmin), true
	}

	return len(r.xmax), true
}

func (r *Rectangle) IsConvex() bool { return true }

// IsCompact is true only when both sides are present and finite.
func (r *Rectangle) IsCompact() bool {
	if r.xmin == nil || r.xmax == nil {
		return false
	}
	for i := range r.xmin {
		if math.IsInf(r.xmin[i], 0) || math.IsInf(r.xmax[i], 0) {
			return false
		}
	}

	return true
}

// DistanceSquared returns Σ (max(0, xminᵢ − uᵢ) + max(0, uᵢ − xmaxᵢ))².
func (r *Rectangle) DistanceSquared(u kernel.Point) (kernel.Scalar, error) {
	n, _ := r.Dimension()
	in, err := classifyPoint("Rectangle.DistanceSquared", u, n, true)
	if err != nil {
		return kernel.Scalar{}, err
	}

	return kernel.EvalScalar(in,
		func(ops kernel.Ops[float64], v []float64) (float64, error) {
			return rectangleDistanceSquared(ops, v, r.xmin, r.xmax), nil
		},
		func(ops kernel.Ops[symbolic.Expr], v []symbolic.Expr) (symbolic.Expr, error) {
			return rectangleDistanceSquared(ops, v, r.xmin, r.xmax), nil
		})
}

// Project clamps u to the box.
func (r *Rectangle) Project(u kernel.Point) (kernel.Vector, error) {
	n, _ := r.Dimension()
	in, err := classifyPoint("Rectangle.Project", u, n, true)
	if err != nil {
		return kernel.Vector{}, err
	}

	return kernel.EvalVector(in,
		func(ops kernel.Ops[float64], v []float64) ([]float64, error) {
			return rectangleProject(ops, v, r.xmin, r.xmax), nil
		},
		func(ops kernel.Ops[symbolic.Expr], v []symbolic.Expr) ([]symbolic.Expr, error) {
			return rectangleProject(ops, v, r.xmin, r.xmax), nil
		})
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(xmin=%s, xmax=%s)", formatBound(r.xmin), formatBound(r.xmax))
}

func formatBound(b []float64) string {
	if b == nil {
		return "none"
	}

	return matrix.FormatVector(b)
}

// lower and upper report the finite bound of coordinate i, if any.
func lower(xmin []float64, i int) (float64, bool) {
	if xmin == nil || math.IsInf(xmin[i], -1) {
		return 0, false
	}

	return xmin[i], true
}

func upper(xmax []float64, i int) (float64, bool) {
	if xmax == nil || math.IsInf(xmax[i], 1) {
		return 0, false
	}

	return xmax[i], true
}

func rectangleDistanceSquared[S any](ops kernel.Ops[S], u []S, xmin, xmax []float64) S {
	terms := make([]S, 0, len(u))
	for i, ui := range u {
		lo, hasLo := lower(xmin, i)
		hi, hasHi := upper(xmax, i)
		if !hasLo && !hasHi {
			continue
		}
		gap := ops.Const(0)
		if hasLo {
			gap = ops.Add(gap, ops.Max(ops.Const(0), ops.Sub(ops.Const(lo), ui)))
		}
		if hasHi {
			gap = ops.Add(gap, ops.Max(ops.Const(0), ops.Sub(ui, ops.Const(hi))))
		}
		terms = append(terms, ops.Pow(gap, 2))
	}

	return sumOf(ops, terms)
}

func rectangleProject[S any](ops kernel.Ops[S], u []S, xmin, xmax []float64) []S {
	out := make([]S, len(u))
	for i, ui := range u {
		x := ui
		if lo, ok := lower(xmin, i); ok {
			x = ops.Max(x, ops.Const(lo))
		}
		if hi, ok := upper(xmax, i); ok {
			x = minOf(ops, x, ops.Const(hi))
		}
		out[i] = x
	}

	return out
}

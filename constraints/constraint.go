// SPDX-License-Identifier: MIT
// Package: constraints
//
// Purpose:
//   - The Constraint contract shared by every set variant.
//   - Shared helpers: point classification with dimension checks, parameter
//     vector normalisation, and the small generic formulas (penalty, clamp)
//     the variants compose.

package constraints

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/matrix"
)

// Constraint is a closed, non-empty set. Callers hold this interface and never
// switch on the concrete variant.
type Constraint interface {
	// Kind identifies the variant.
	Kind() Kind

	// DistanceSquared returns the squared Euclidean distance from u to the
	// set, in the domain of u.
	DistanceSquared(u kernel.Point) (kernel.Scalar, error)

	// Project returns the Euclidean projection of u onto the set, in the
	// domain of u, or ErrNotImplemented.
	Project(u kernel.Point) (kernel.Vector, error)

	// Dimension reports the dimension pinned by the parameters. fixed is
	// false when the set accepts points of any length.
	Dimension() (n int, fixed bool)

	// IsConvex reports whether the set is convex.
	IsConvex() bool

	// IsCompact reports whether the set is closed and bounded.
	IsCompact() bool
}

// classifyPoint classifies u and, for fixed-dimension sets, checks its length.
func classifyPoint(tag string, u kernel.Point, n int, fixed bool) (kernel.Input, error) {
	in, err := kernel.Classify(u)
	if err != nil {
		return kernel.Input{}, constraintErrorf(tag, err)
	}
	if fixed && in.Len() != n {
		return kernel.Input{}, constraintErrorf(fmt.Sprintf("%s: got %d, want %d", tag, in.Len(), n), ErrDimensionMismatch)
	}

	return in, nil
}

// isAbsent reports a nil parameter, including typed nil containers.
func isAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case []float64:
		return x == nil
	case []int:
		return x == nil
	case []any:
		return x == nil
	case *matrix.Dense:
		return x == nil
	}

	return false
}

// finiteVector normalises a numeric vector parameter into a fresh []float64.
// Absent parameters yield (nil, nil). Symbolic or unrecognised containers,
// empty vectors and non-finite entries are rejected.
func finiteVector(tag, name string, v any) ([]float64, error) {
	if isAbsent(v) {
		return nil, nil
	}
	in, err := kernel.Classify(v)
	if err != nil {
		return nil, paramErrorf(tag, "%s: %v", name, err)
	}
	if in.Domain() != kernel.Numeric {
		return nil, paramErrorf(tag, "%s must be numeric, got %s", name, in.Domain())
	}
	col, err := matrix.NewVector(in.Numbers(), matrix.WithValidateNaNInf())
	if err != nil {
		return nil, paramErrorf(tag, "%s: %v", name, err)
	}
	out, err := matrix.VectorData(col)
	if err != nil {
		return nil, paramErrorf(tag, "%s: %v", name, err)
	}

	return out, nil
}

// positiveRadius accepts finite r > 0.
func positiveRadius(tag string, r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return paramErrorf(tag, "radius must be positive, got %g", r)
	}

	return nil
}

func copyOf(x []float64) []float64 {
	if x == nil {
		return nil
	}
	cp := make([]float64, len(x))
	copy(cp, x)

	return cp
}

// ---------- generic formula pieces ----------

// penalty returns max(0, sign(t)·t²), which equals max(0, t)².
func penalty[S any](ops kernel.Ops[S], t S) S {
	return ops.Max(ops.Const(0), ops.Mul(ops.Sign(t), ops.Pow(t, 2)))
}

// minOf is −max(−a, −b).
func minOf[S any](ops kernel.Ops[S], a, b S) S {
	neg := ops.Const(-1)
	return ops.Mul(neg, ops.Max(ops.Mul(neg, a), ops.Mul(neg, b)))
}

// absOf is sign(x)·x.
func absOf[S any](ops kernel.Ops[S], x S) S {
	return ops.Mul(ops.Sign(x), x)
}

// offsetFrom returns u − c, or u itself when c is absent.
func offsetFrom[S any](ops kernel.Ops[S], u []S, c []float64) ([]S, error) {
	if c == nil {
		return u, nil
	}

	return ops.Offset(u, c)
}

// shiftBy returns v + c, or v itself when c is absent.
func shiftBy[S any](ops kernel.Ops[S], v []S, c []float64) ([]S, error) {
	if c == nil {
		return v, nil
	}

	return ops.Shift(v, c)
}

// sumOf folds terms with Add starting from 0.
func sumOf[S any](ops kernel.Ops[S], terms []S) S {
	acc := ops.Const(0)
	for _, t := range terms {
		acc = ops.Add(acc, t)
	}

	return acc
}

// formatCenter renders an optional center.
func formatCenter(c []float64) string {
	if c == nil {
		return "origin"
	}

	return matrix.FormatVector(c)
}

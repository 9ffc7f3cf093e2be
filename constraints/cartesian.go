// SPDX-License-Identifier: MIT
// Package: constraints
//
// Purpose:
//   - CartesianProduct composes sets over consecutive segments of a point:
//     C₀ × C₁ × … with segment i covering coordinates [end(i−1), end(i)).
//
// Semantics:
//   - DistanceSquared is the sum of the segment distances.
//   - Project concatenates the segment projections; a segment that does not
//     provide Project makes the whole product fail with its error.

package constraints

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvopt/kernel"
)

// CartesianProduct is a product of constraint sets.
type CartesianProduct struct {
	ends []int
	sets []Constraint
}

var _ Constraint = (*CartesianProduct)(nil)

// NewCartesianProduct builds C₀ × … × Cₖ₋₁ where ends[i] is the exclusive
// end index of segment i. For example ends = [2, 5] splits a 5-vector into
// coordinates 0..1 and 2..4.
//
// Errors: ErrInvalidParameter when ends and sets are empty or of different
// lengths, ends are not strictly increasing from a positive first value, a set
// is nil, or a fixed-dimension set does not match its segment length.
func NewCartesianProduct(ends []int, sets []Constraint) (*CartesianProduct, error) {
	const tag = "NewCartesianProduct"
	if len(ends) == 0 {
		return nil, paramErrorf(tag, "at least one segment is required")
	}
	if len(ends) != len(sets) {
		return nil, paramErrorf(tag, "%d segment ends for %d sets", len(ends), len(sets))
	}
	prev := 0
	for i, end := range ends {
		if end <= prev {
			return nil, paramErrorf(tag, "segment %d: end %d must exceed %d", i, end, prev)
		}
		if isNilConstraint(sets[i]) {
			return nil, paramErrorf(tag, "segment %d: nil set", i)
		}
		if n, fixed := sets[i].Dimension(); fixed && n != end-prev {
			return nil, paramErrorf(tag, "segment %d: set dimension %d, segment length %d", i, n, end-prev)
		}
		prev = end
	}

	return &CartesianProduct{
		ends: append([]int(nil), ends...),
		sets: append([]Constraint(nil), sets...),
	}, nil
}

// isNilConstraint catches nil interfaces and typed nil pointers of the
// pointer-receiver variants.
func isNilConstraint(c Constraint) bool {
	switch s := c.(type) {
	case nil:
		return true
	case *Ball2:
		return s == nil
	case *BallInf:
		return s == nil
	case *Rectangle:
		return s == nil
	case *Halfspace:
		return s == nil
	case *CartesianProduct:
		return s == nil
	}

	return false
}

// Segments returns a copy of the segment end indices.
func (p *CartesianProduct) Segments() []int { return append([]int(nil), p.ends...) }

// Sets returns a copy of the component sets.
func (p *CartesianProduct) Sets() []Constraint { return append([]Constraint(nil), p.sets...) }

func (p *CartesianProduct) Kind() Kind { return KindCartesianProduct }

func (p *CartesianProduct) Dimension() (int, bool) { return p.ends[len(p.ends)-1], true }

// IsConvex is true when every component is convex.
func (p *CartesianProduct) IsConvex() bool {
	for _, s := range p.sets {
		if !s.IsConvex() {
			return false
		}
	}

	return true
}

// IsCompact is true when every component is compact.
func (p *CartesianProduct) IsCompact() bool {
	for _, s := range p.sets {
		if !s.IsCompact() {
			return false
		}
	}

	return true
}

// DistanceSquared sums the squared distances of the segments.
func (p *CartesianProduct) DistanceSquared(u kernel.Point) (kernel.Scalar, error) {
	const tag = "CartesianProduct.DistanceSquared"
	n, _ := p.Dimension()
	in, err := classifyPoint(tag, u, n, true)
	if err != nil {
		return kernel.Scalar{}, err
	}
	parts := make([]kernel.Scalar, len(p.sets))
	lo := 0
	for i, set := range p.sets {
		seg := in.Slice(lo, p.ends[i])
		if parts[i], err = set.DistanceSquared(seg.Point()); err != nil {
			return kernel.Scalar{}, constraintErrorf(fmt.Sprintf("%s: segment %d", tag, i), err)
		}
		lo = p.ends[i]
	}
	sum, err := kernel.SumScalars(parts...)
	if err != nil {
		return kernel.Scalar{}, constraintErrorf(tag, err)
	}

	return sum, nil
}

// Project concatenates the segment projections.
func (p *CartesianProduct) Project(u kernel.Point) (kernel.Vector, error) {
	const tag = "CartesianProduct.Project"
	n, _ := p.Dimension()
	in, err := classifyPoint(tag, u, n, true)
	if err != nil {
		return kernel.Vector{}, err
	}
	parts := make([]kernel.Vector, len(p.sets))
	lo := 0
	for i, set := range p.sets {
		seg := in.Slice(lo, p.ends[i])
		if parts[i], err = set.Project(seg.Point()); err != nil {
			return kernel.Vector{}, constraintErrorf(fmt.Sprintf("%s: segment %d", tag, i), err)
		}
		lo = p.ends[i]
	}
	out, err := kernel.ConcatVectors(parts...)
	if err != nil {
		return kernel.Vector{}, constraintErrorf(tag, err)
	}

	return out, nil
}

func (p *CartesianProduct) String() string {
	var b strings.Builder
	b.WriteString("CartesianProduct(")
	lo := 0
	for i, s := range p.sets {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%d:%d] %v", lo, p.ends[i], s)
		lo = p.ends[i]
	}
	b.WriteString(")")

	return b.String()
}

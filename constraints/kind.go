// SPDX-License-Identifier: MIT
// Package: constraints
//
// Purpose:
//   - Kind enumerates the variants and gives each a stable name.
//   - New builds a leaf variant from plain numeric parameters, so callers that
//     receive a kind name (flags, configuration) never switch on variants.

package constraints

import (
	"fmt"
	"strings"
)

// Kind identifies a constraint variant.
type Kind uint8

const (
	KindBall2 Kind = iota + 1
	KindBallInf
	KindRectangle
	KindHalfspace
	KindZero
	KindNoConstraints
	KindCartesianProduct
)

var kindNames = [...]string{
	KindBall2:            "ball2",
	KindBallInf:          "ballinf",
	KindRectangle:        "rectangle",
	KindHalfspace:        "halfspace",
	KindZero:             "zero",
	KindNoConstraints:    "no_constraints",
	KindCartesianProduct: "cartesian_product",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Kinds lists every registered kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindBall2; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}

	return out
}

// ParseKind resolves a kind name, ignoring case and surrounding space.
// "-" is accepted in place of "_".
//
// Errors: ErrUnknownKind.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, k := range Kinds() {
		if kindNames[k] == norm {
			return k, nil
		}
	}

	return 0, constraintErrorf(fmt.Sprintf("ParseKind(%q)", name), ErrUnknownKind)
}

// Params carries the numeric parameters of the leaf variants. Fields a kind
// does not use are ignored; nil slices mean "absent".
type Params struct {
	Center []float64 // Ball2, BallInf
	Radius float64   // Ball2, BallInf
	XMin   []float64 // Rectangle
	XMax   []float64 // Rectangle
	Normal []float64 // Halfspace
	Offset float64   // Halfspace
}

// New builds a constraint of the given kind. Validation is the variant
// constructor's.
//
// Errors: ErrUnknownKind, ErrInvalidParameter (including KindCartesianProduct,
// which is composed with NewCartesianProduct).
func New(kind Kind, p Params) (Constraint, error) {
	switch kind {
	case KindBall2:
		b, err := NewBall2(p.Center, p.Radius)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindBallInf:
		b, err := NewBallInf(p.Center, p.Radius)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindRectangle:
		r, err := NewRectangle(p.XMin, p.XMax)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindHalfspace:
		h, err := NewHalfspace(p.Normal, p.Offset)
		if err != nil {
			return nil, err
		}
		return h, nil
	case KindZero:
		return NewZero(), nil
	case KindNoConstraints:
		return NewNoConstraints(), nil
	case KindCartesianProduct:
		return nil, paramErrorf("New", "%s is built with NewCartesianProduct", kind)
	default:
		return nil, constraintErrorf(fmt.Sprintf("New(%s)", kind), ErrUnknownKind)
	}
}

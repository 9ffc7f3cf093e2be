// SPDX-License-Identifier: MIT

package constraints

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvopt/kernel"
)

var (
	// ErrInvalidParameter is returned by constructors for a rejected parameter
	// (non-positive radius, unrecognised center, inconsistent bounds, ...).
	ErrInvalidParameter = errors.New("constraints: invalid parameter")

	// ErrNotImplemented signals a declared capability gap of a variant.
	ErrNotImplemented = errors.New("constraints: not implemented")

	// ErrDimensionMismatch is returned when a point's length differs from the
	// fixed dimension of a set.
	ErrDimensionMismatch = errors.New("constraints: dimension mismatch")

	// ErrUnknownKind is returned by ParseKind and New for an unregistered kind.
	ErrUnknownKind = errors.New("constraints: unknown kind")

	// ErrInvalidInputType is the kernel sentinel for points of an unsupported shape.
	ErrInvalidInputType = kernel.ErrInvalidInputType
)

// constraintErrorf wraps err with a call-site tag.
func constraintErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// paramErrorf reports a rejected construction parameter.
func paramErrorf(tag, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", tag, ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// SPDX-License-Identifier: MIT
// Package: kernel
//
// Purpose:
//   - Classify a point into the numeric or the symbolic domain, once per call.
//   - Normalise every accepted container into one of two backing slices so the
//     formulas downstream see either []float64 or []symbolic.Expr.
//
// Ownership:
//   - Classify copies its input. An Input never aliases caller storage, and its
//     accessors copy again on the way out.

package kernel

import (
	"fmt"

	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/symbolic"
)

// Domain tells which back-end evaluates a formula.
type Domain uint8

const (
	// Numeric evaluates on concrete float64 values.
	Numeric Domain = iota + 1
	// Symbolic builds expression graphs.
	Symbolic
)

func (d Domain) String() string {
	switch d {
	case Numeric:
		return "numeric"
	case Symbolic:
		return "symbolic"
	default:
		return fmt.Sprintf("Domain(%d)", uint8(d))
	}
}

// Point is any value a constraint operation accepts as its argument.
// See Classify for the recognised shapes.
type Point = any

// Input is a classified, non-empty point.
type Input struct {
	domain Domain
	nums   []float64
	syms   symbolic.Vector
}

// Classify determines the domain of u.
//
// Numeric: []float64, []int, []any holding only int/float64 values, or a
// *matrix.Dense with a single row or column (a row is reshaped to a column).
// Symbolic: a symbolic.Vector or []symbolic.Expr without nil elements, or a
// single symbolic.Expr, which is treated as a 1-vector.
//
// Errors: ErrInvalidInputType for nil, empty, or any other container or
// element type.
func Classify(u Point) (Input, error) {
	switch v := u.(type) {
	case nil:
		return Input{}, kernelErrorf("Classify(nil)", ErrInvalidInputType)
	case symbolic.Vector:
		return classifyExprs(v)
	case []symbolic.Expr:
		return classifyExprs(v)
	case symbolic.Expr:
		if isNilExpr(v) {
			return Input{}, kernelErrorf("Classify(nil expr)", ErrInvalidInputType)
		}
		return Input{domain: Symbolic, syms: symbolic.Vector{v}}, nil
	case []float64:
		return numericInput(v)
	case []int:
		nums := make([]float64, len(v))
		for i, x := range v {
			nums[i] = float64(x)
		}
		return numericInput(nums)
	case []any:
		nums := make([]float64, len(v))
		for i, x := range v {
			switch n := x.(type) {
			case float64:
				nums[i] = n
			case int:
				nums[i] = float64(n)
			default:
				return Input{}, kernelErrorf(fmt.Sprintf("Classify([]any[%d] %T)", i, x), ErrInvalidInputType)
			}
		}
		return numericInput(nums)
	case *matrix.Dense:
		return classifyDense(v)
	default:
		return Input{}, kernelErrorf(fmt.Sprintf("Classify(%T)", u), ErrInvalidInputType)
	}
}

func numericInput(nums []float64) (Input, error) {
	if len(nums) == 0 {
		return Input{}, kernelErrorf("Classify(empty)", ErrInvalidInputType)
	}
	cp := make([]float64, len(nums))
	copy(cp, nums)

	return Input{domain: Numeric, nums: cp}, nil
}

func classifyExprs(v []symbolic.Expr) (Input, error) {
	if len(v) == 0 {
		return Input{}, kernelErrorf("Classify(empty)", ErrInvalidInputType)
	}
	cp := make(symbolic.Vector, len(v))
	for i, e := range v {
		if isNilExpr(e) {
			return Input{}, kernelErrorf(fmt.Sprintf("Classify(nil expr at %d)", i), ErrInvalidInputType)
		}
		cp[i] = e
	}

	return Input{domain: Symbolic, syms: cp}, nil
}

// classifyDense aligns a row vector to a column before flattening, so both
// orientations produce the same point.
func classifyDense(d *matrix.Dense) (Input, error) {
	if err := matrix.ValidateVector(d); err != nil {
		return Input{}, kernelErrorf("Classify(*matrix.Dense)", fmt.Errorf("%w: %v", ErrInvalidInputType, err))
	}
	col := d
	if rows, cols := d.Shape(); rows == 1 && cols > 1 {
		var err error
		if col, err = d.Reshape(cols, 1); err != nil {
			return Input{}, kernelErrorf("Classify(*matrix.Dense)", fmt.Errorf("%w: %v", ErrInvalidInputType, err))
		}
	}
	nums, err := matrix.VectorData(col)
	if err != nil {
		return Input{}, kernelErrorf("Classify(*matrix.Dense)", fmt.Errorf("%w: %v", ErrInvalidInputType, err))
	}

	return Input{domain: Numeric, nums: nums}, nil
}

// isNilExpr catches both a nil interface and a typed nil leaf.
func isNilExpr(e symbolic.Expr) bool {
	switch n := e.(type) {
	case nil:
		return true
	case *symbolic.Symbol:
		return n == nil
	case *symbolic.Constant:
		return n == nil
	}

	return false
}

// Domain returns the classified domain.
func (in Input) Domain() Domain { return in.domain }

// Len returns the point dimension.
func (in Input) Len() int {
	if in.domain == Symbolic {
		return len(in.syms)
	}

	return len(in.nums)
}

// Numbers returns a copy of the numeric coordinates, or nil for a symbolic input.
func (in Input) Numbers() []float64 {
	if in.nums == nil {
		return nil
	}
	cp := make([]float64, len(in.nums))
	copy(cp, in.nums)

	return cp
}

// Symbols returns a copy of the symbolic coordinates, or nil for a numeric input.
func (in Input) Symbols() symbolic.Vector {
	if in.syms == nil {
		return nil
	}
	cp := make(symbolic.Vector, len(in.syms))
	copy(cp, in.syms)

	return cp
}

// Slice returns coordinates [lo, hi) as a new Input of the same domain.
// Panics like a slice expression when the bounds are invalid.
func (in Input) Slice(lo, hi int) Input {
	out := Input{domain: in.domain}
	if in.domain == Symbolic {
		out.syms = append(symbolic.Vector(nil), in.syms[lo:hi]...)
	} else {
		out.nums = append([]float64(nil), in.nums[lo:hi]...)
	}

	return out
}

// Point converts the input back to a value Classify accepts:
// a []float64 or a symbolic.Vector.
func (in Input) Point() Point {
	if in.domain == Symbolic {
		return in.Symbols()
	}

	return in.Numbers()
}

func (in Input) String() string {
	if in.domain == Symbolic {
		return in.syms.String()
	}

	return matrix.FormatVector(in.nums)
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-vector helpers: construction from a slice, flattening back to a
//     slice, the Euclidean norm and approximate equality.
//
// Design:
//   - A vector is an n×1 *Dense. Row vectors (1×n) are accepted wherever a
//     vector is read and are never produced by constructors.
//   - Constructors copy their input; VectorData copies its output. No caller
//     slice is ever aliased by a Dense.
//
// Complexity quicksheet:
//   - NewVector O(n); VectorData O(n); Norm2 O(n); AllClose O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for error wrapping.
const (
	opNewVector  = "NewVector"
	opVectorData = "VectorData"
	opNorm2      = "Norm2"
	opAllClose   = "AllClose"
)

// NewVector builds an n×1 column vector holding a copy of data.
// MAIN DESCRIPTION:
//   - The numeric-domain entry point: every concrete point or parameter vector
//     enters the module through here.
//
// Implementation:
//   - Stage 1: resolve options (NaN/Inf policy).
//   - Stage 2: reject empty input (ErrInvalidDimensions).
//   - Stage 3: under validation, reject non-finite entries (ErrNaNInf).
//   - Stage 4: copy into a fresh Dense carrying the resolved policy.
//
// Errors:
//   - ErrInvalidDimensions, ErrNaNInf.
//
// Complexity:
//   - Time O(n), Space O(n).
//
// AI-Hints:
//   - Pass WithNoValidateNaNInf() for caller data that may legitimately carry NaN.
func NewVector(data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(data) == 0 {
		return nil, matrixErrorf(opNewVector, ErrInvalidDimensions)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(data); err != nil {
			return nil, matrixErrorf(opNewVector, err)
		}
	}
	v, err := newDenseWithPolicy(len(data), 1, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewVector, err)
	}
	copy(v.data, data)

	return v, nil
}

// VectorData returns a copy of the elements of a row or column vector.
//
// Errors: ErrNilMatrix, ErrBadShape (neither a single row nor a single column).
// Complexity: O(n).
func VectorData(m Matrix) ([]float64, error) {
	if err := ValidateVector(m); err != nil {
		return nil, matrixErrorf(opVectorData, err)
	}
	if d, ok := m.(*Dense); ok {
		out := make([]float64, len(d.data))
		copy(out, d.data)

		return out, nil
	}
	n := m.Rows() * m.Cols()
	out := make([]float64, n)
	col := m.Cols() == 1
	var err error
	for k := 0; k < n; k++ {
		if col {
			out[k], err = m.At(k, 0)
		} else {
			out[k], err = m.At(0, k)
		}
		if err != nil {
			return nil, matrixErrorf(opVectorData, err)
		}
	}

	return out, nil
}

// Norm2 returns the Euclidean (Frobenius) norm sqrt(Σ x²) of m.
// For a vector this is ‖x‖₂; NaN entries propagate.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
//
// Notes:
//   - No rescaling is applied (same result as numpy.linalg.norm on a column).
func Norm2(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm2, err)
	}
	var sum float64
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			sum += v * v
		}

		return math.Sqrt(sum), nil
	}
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, matrixErrorf(opNorm2, err)
			}
			sum += v * v
		}
	}

	return math.Sqrt(sum), nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most eps (WithEpsilon, default DefaultEpsilon).
// Two NaNs at the same position compare equal.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := gatherOptions(opts...).eps
	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.IsNaN(av) && math.IsNaN(bv) {
				continue
			}
			if av == bv { // covers equal infinities
				continue
			}
			if !(math.Abs(av-bv) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

// FormatVector renders x as "[a, b, c]" using %g, for diagnostics.
func FormatVector(x []float64) string {
	s := "["
	for i, v := range x {
		if i > 0 {
			s += _fmtSep
		}
		s += fmt.Sprintf("%g", v)
	}

	return s + "]"
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Scalar element kernels with NumPy semantics, shared by every numeric
//     consumer so sign/max/min behave identically across the module.
//
// Semantics:
//   - SignOf: -1, 0, +1; NaN stays NaN (np.sign).
//   - FMaxOf/FMinOf: NaN-ignoring max/min (np.fmax/np.fmin, C fmax/fmin):
//     if exactly one operand is NaN the other is returned.
//
// AI-Hints:
//   - Use FMaxOf(0, x) for the positive part; it never turns a number into NaN.

package matrix

import "math"

// SignOf returns the sign of x as -1, 0 or +1. NaN is propagated.
// Complexity: O(1).
func SignOf(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// FMaxOf returns the larger of a and b, ignoring a single NaN operand.
// Complexity: O(1).
func FMaxOf(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}

	return math.Max(a, b)
}

// FMinOf returns the smaller of a and b, ignoring a single NaN operand.
// Complexity: O(1).
func FMinOf(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}

	return math.Min(a, b)
}

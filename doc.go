// SPDX-License-Identifier: MIT

// Package lvopt is a constraint-set layer for numerical optimization, where
// every set operation runs unchanged on concrete numbers and on symbolic
// expression graphs.
//
// An optimizer needs two things from the set that bounds its decision
// variable: the squared distance to it (a penalty term) and the projection
// onto it (a projected-gradient step). lvopt writes the geometry of each set
// once and evaluates it in two domains:
//
//   - numeric: []float64, []int or a vector-shaped *matrix.Dense, giving a
//     number, used at runtime and in tests;
//   - symbolic: a symbolic.Vector, giving an expression that can be
//     differentiated and compiled, used when the problem is being generated.
//
// Subpackages, leaves first:
//
//	matrix/       dense row-major storage, column vectors, sign/fmax/norm kernels
//	symbolic/     expression graphs: evaluation, differentiation, functions
//	kernel/       domain classification and the Ops[S] primitive set
//	constraints/  Ball2, BallInf, Rectangle, Halfspace, Zero, NoConstraints,
//	              CartesianProduct, and the Kind registry
//	cmd/setdist   command-line diagnostics
//
// Quick example:
//
//	ball, _ := constraints.NewBall2(nil, 1.0)
//	d, _ := ball.DistanceSquared([]float64{2, 0})             // 1
//	e, _ := ball.DistanceSquared(symbolic.NewVector("u", 2)) // fmax(0, ...)
//
//	go get github.com/katalvlaran/lvopt
package lvopt

// SPDX-License-Identifier: MIT

// Package constraints implements closed, non-empty constraint sets that bound
// a decision variable inside an optimization toolchain.
//
// Every set satisfies the Constraint contract:
//
//   - DistanceSquared(u) returns the squared Euclidean distance from u to the
//     set, the penalty term an augmented-Lagrangian method adds to its cost.
//   - Project(u) returns the closest point of the set. A variant may declare
//     this a capability gap and fail with ErrNotImplemented; it never returns
//     a guessed value.
//
// Both operations accept a point in either domain understood by package
// kernel: concrete numbers for runtime diagnostics, or a symbolic.Vector when
// the problem is being built into an expression graph for code generation.
// The result has the same domain as the point. Each variant writes its
// geometry once, as a generic formula over kernel.Ops, so the symbolic result
// is exactly the graph of the numeric computation and differentiates cleanly.
//
// Variants:
//
//	Ball2             {x : ‖x − c‖₂ ≤ r}, center optional (absent means the origin)
//	BallInf           {x : ‖x − c‖∞ ≤ r}
//	Rectangle         {x : xmin ≤ x ≤ xmax}, either side optional, ±Inf allowed
//	Halfspace         {x : ⟨a, x⟩ ≤ b}
//	Zero              {0}
//	NoConstraints     the whole space
//	CartesianProduct  C₀ × C₁ × … over consecutive segments of x
//
// Sets are immutable after construction. Parameters are copied in and every
// accessor copies out, so a set can be shared between goroutines.
//
// Errors:
//
//	ErrInvalidParameter   construction rejected a parameter; no set is returned
//	ErrInvalidInputType   the point is neither a numeric nor a symbolic vector
//	ErrDimensionMismatch  the point length differs from the set dimension
//	ErrNotImplemented     the variant does not provide the operation
//	ErrUnknownKind        registry lookup failed
//
// Example:
//
//	ball, _ := constraints.NewBall2(nil, 1.0)
//	d, _ := ball.DistanceSquared([]float64{2, 0}) // 1
//	e, _ := ball.DistanceSquared(symbolic.NewVector("u", 2))
//	fmt.Println(d, e)
package constraints

// SPDX-License-Identifier: MIT

// Package matrix is the numeric array layer of lvopt.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and an optional NaN/Inf ingestion policy.
//   - Column vectors (NewVector, VectorData) and shape changes (Reshape), the
//     shapes used when a concrete point is evaluated against a constraint set.
//   - Element-wise arithmetic (Add, Sub) with a flat fast-path for *Dense.
//   - Scalar kernels with NumPy-compatible semantics: SignOf, FMaxOf, FMinOf
//     (the f-variants ignore a NaN operand), and the Euclidean norm Norm2.
//   - Functional options (WithEpsilon, WithValidateNaNInf, ...) resolved by
//     NewMatrixOptions and consumed by constructors and AllClose.
//
// Errors are package-level sentinels (errors.go) wrapped with call-site
// context; match them with errors.Is.
package matrix

// SPDX-License-Identifier: MIT

// Package solver solves square linear systems a·x = b with three direct
// methods: Gaussian elimination with back substitution, Gauss-Jordan
// elimination, and Doolittle LU factorization with forward and back
// substitution.
//
// What & Why:
//
//	All three methods walk the diagonal in natural order and never swap
//	rows. A pivot whose magnitude falls below the pivot tolerance (default
//	DefaultPivotTolerance, see WithPivotTolerance) aborts the solve with
//	ErrSingular. Systems that are solvable only after row exchanges are
//	therefore reported as singular; this is a known limitation.
//
// Contract:
//
//   - Operands are validated before any arithmetic: nil operands yield
//     matrix.ErrNilMatrix, a non-square a or a right-hand side of the wrong
//     length yields matrix.ErrDimensionMismatch.
//   - Elimination runs on a private row-major copy; a and b are never
//     modified, also when the solve fails.
//   - On error the returned vector is nil.
//
// Complexity:
//
//	O(n³) time and O(n²) extra space for every method.
//
// Concurrency:
//
//	Functions keep no shared state; solves on distinct inputs may run in
//	parallel.
package solver

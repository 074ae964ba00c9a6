// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No exported
// function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Context is
// added with fmt.Errorf("<Op>: %w", ErrX) so errors.Is keeps matching.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension mismatch -> index -> numeric.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row, column or vector position)
	// is outside valid bounds. At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: ragged rows
	// in a literal, Add/Sub on different shapes, Mul with a.Cols != b.Rows,
	// a non-square system matrix or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix or *Vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadTolerance is returned by AllClose when a tolerance is NaN or ±Inf.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite")
)

// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra containers used by imeth:
// a row-major Dense matrix, a Vector, and the kernels that combine them.
//
// What & Why:
//
//	Dense stores r*c float64 values in one flat slice (offset i*c + j), which
//	keeps rows contiguous for the elimination loops in package solver. Every
//	instance owns its buffer exclusively; Clone and all kernels return deep
//	copies, so a caller's operands are never modified by an operation.
//
// Surface:
//
//   - Construction: NewDense (zero-filled), NewDenseFromRows (nested literal,
//     ragged rows rejected), NewIdentity, NewVector, NewVectorFrom.
//   - Access: At/Set on both types return ErrOutOfRange instead of panicking.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MulVec, AllClose, Flatten.
//
// Errors:
//
//	ErrDimensionMismatch is reported before any computation starts, so a
//	failing kernel never leaves a partially built result behind.
//
// Concurrency:
//
//	Values are not synchronized. Distinct instances may be used from
//	different goroutines; concurrent mutation of one instance must be
//	serialized by the caller.
package matrix

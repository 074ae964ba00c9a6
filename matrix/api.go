// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that delegate to the canonical kernels.
//   - No logic duplication: every facade forwards to a single implementation.

package matrix

// DefaultEqualTolerance is the absolute tolerance used by Equal.
const DefaultEqualTolerance = 1e-9

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// CloneMatrix returns a deep copy of m, or nil for a nil input.
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// Equal reports whether a and b have the same shape and all elements agree
// within DefaultEqualTolerance. Nil operands are never equal.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, 0, DefaultEqualTolerance)

	return err == nil && ok
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Whole-matrix comparisons and extraction helpers shared by solver code and tests.
//
// Determinism & Performance:
//  - Dense fast path walks the flat buffer 0..n-1; generic path is i→j via At.

package matrix

import "math"

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Returns (true, nil) if every element satisfies the relation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//   - Any NaN element compares as not close.
//
// Errors: ErrBadTolerance, ErrNilMatrix, ErrDimensionMismatch.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !isClose(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, accessErrorf(opAllClose, "At", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, accessErrorf(opAllClose, "At", i, j, err)
			}
			if !isClose(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// isClose is the scalar predicate behind AllClose. NaN is never close.
func isClose(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// Flatten returns a row-major copy of m's elements (length Rows*Cols).
// Package solver runs its elimination loops on this buffer.
//
// Errors: ErrNilMatrix.
// Time: O(r*c). Space: O(r*c).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}

	if dm, ok := m.(*Dense); ok {
		out := make([]float64, len(dm.data))
		copy(out, dm.data)

		return out, nil
	}

	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opFlatten, "At", i, j, err)
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}

// NewDenseFromFlat wraps a copy of a row-major buffer as a rows×cols Dense.
//
// Errors: ErrInvalidDimensions for negative sizes, ErrDimensionMismatch when
// len(data) != rows*cols.
func NewDenseFromFlat(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(data, rows*cols); err != nil {
		return nil, matrixErrorf("NewDenseFromFlat", err)
	}
	copy(m.data, data)

	return m, nil
}

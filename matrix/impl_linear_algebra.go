// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, matrix product, transpose, scalar
// scaling and the matrix-vector product. Every function validates its
// operands before touching data and returns a freshly allocated result.
//
// Purpose:
//   - Canonical linear-algebra kernels used by package solver and by callers.
//   - Operation tags for uniform error reporting.
//
// Notes:
//   - Each kernel has a *Dense fast path over the flat buffers and a generic
//     At/Set fallback with a fixed i→j(→k) loop order.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMulVec    = "MulVec"
	opAllClose  = "AllClose"
	opFlatten   = "Flatten"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accessErrorf tags a failed At/Set in the generic fallback path.
func accessErrorf(tag, access string, i, j int, err error) error {
	return matrixErrorf(tag, fmt.Errorf("%s(%d,%d): %w", access, i, j, err))
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add and Sub for validation, allocation and the fast path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: both *Dense → single flat loop 0..n-1; otherwise i→j via At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, accessErrorf(opTag, "At", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, accessErrorf(opTag, "At", i, j, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	return addSub(a, b, 1, opAdd)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	return addSub(a, b, -1, opSub)
}

// Mul computes the matrix product C = A × B where A is r×n and B is n×c.
// Each entry is the dot product of a row of A with a column of B.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate Dense(r, c).
//   - Stage 2: both *Dense → i→k→j loop over flat buffers (rows of B are
//     streamed contiguously); otherwise the textbook i→j→k loop via At.
//
// Behavior highlights:
//   - An n of zero yields an r×c zero matrix.
//   - Inputs are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, accessErrorf(opMul, "At", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, accessErrorf(opMul, "At", k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with (i,j) ↦ (j,i).
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opTranspose, "At", i, j, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new Dense.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		res := dm.cloneDense()
		for idx := range res.data {
			res.data[idx] *= alpha
		}

		return res, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opScale, "At", i, j, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// MulVec computes y = m·v for an r×c matrix and a vector of length c.
// The result is a new Vector of length r.
//
// Errors:
//   - ErrNilMatrix when m or v is nil.
//   - ErrDimensionMismatch when v.Len() != m.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MulVec(m Matrix, v *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if v == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(v.data, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	out := &Vector{data: make([]float64, rows)}
	var i, j int
	var sum float64

	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += dm.data[base+j] * v.data[j]
			}
			out.data[i] = sum
		}

		return out, nil
	}

	var x float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, accessErrorf(opMulVec, "At", i, j, err)
			}
			sum += x * v.data[j]
		}
		out.data[i] = sum
	}

	return out, nil
}

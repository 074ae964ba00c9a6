// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/imeth/matrix"

// LU performs Doolittle factorization a = L·U without row exchanges.
// L is unit lower triangular and U is upper triangular.
//
// Implementation:
//   - Stage 1: validate a (non-nil, square) and copy it into U.
//   - Stage 2: for each i: reject |U(i,i)| < tol, then for k > i store
//     L(k,i) = U(k,i)/U(i,i) and subtract L(k,i)·row(i) from row(k).
//
// Behavior highlights:
//   - The pivot check covers every diagonal entry, including the last one,
//     so a returned U is always invertible under the tolerance.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(a matrix.Matrix, opts ...Option) (l, u *matrix.Dense, err error) {
	o := gatherOptions(opts...)
	if err = matrix.ValidateSquareNonNil(a); err != nil {
		return nil, nil, solverErrorf(opLU, err)
	}
	flat, err := matrix.Flatten(a)
	if err != nil {
		return nil, nil, solverErrorf(opLU, err)
	}

	n := a.Rows()
	lf, uf, err := factorLU(opLU, n, flat, o.pivotTol)
	if err != nil {
		return nil, nil, err
	}
	if l, err = matrix.NewDenseFromFlat(n, n, lf); err != nil {
		return nil, nil, solverErrorf(opLU, err)
	}
	if u, err = matrix.NewDenseFromFlat(n, n, uf); err != nil {
		return nil, nil, solverErrorf(opLU, err)
	}

	return l, u, nil
}

// factorLU factors the row-major n×n buffer uf in place into U and returns
// the unit lower factor alongside it.
func factorLU(tag string, n int, uf []float64, tol float64) ([]float64, []float64, error) {
	lf := make([]float64, n*n)
	var i, j, k int
	var pivot, factor float64
	for i = 0; i < n; i++ {
		lf[i*n+i] = 1
	}
	for i = 0; i < n; i++ {
		pivot = uf[i*n+i]
		if isSingularPivot(pivot, tol) {
			return nil, nil, singularAt(tag, i, pivot)
		}
		for k = i + 1; k < n; k++ {
			factor = uf[k*n+i] / pivot
			lf[k*n+i] = factor
			// Column i below the pivot is eliminated exactly.
			uf[k*n+i] = 0
			for j = i + 1; j < n; j++ {
				uf[k*n+j] -= factor * uf[i*n+j]
			}
		}
	}

	return lf, uf, nil
}

// LUDecomposition solves a·x = b through a = L·U: forward substitution
// L·y = b, then back substitution U·x = y.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LUDecomposition(a matrix.Matrix, b *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	o := gatherOptions(opts...)
	s, err := loadSystem(opLUSolve, a, b)
	if err != nil {
		return nil, err
	}

	n := s.n
	lf, uf, err := factorLU(opLUSolve, n, s.m, o.pivotTol)
	if err != nil {
		return nil, err
	}

	var i, j int
	// Forward: y = L⁻¹b, L has a unit diagonal.
	y := s.x
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			y[i] -= lf[i*n+j] * y[j]
		}
	}
	// Backward: x = U⁻¹y.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		x[i] = y[i]
		for j = i + 1; j < n; j++ {
			x[i] -= uf[i*n+j] * x[j]
		}
		x[i] /= uf[i*n+i]
	}

	return matrix.NewVectorFrom(x...), nil
}

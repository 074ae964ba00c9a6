// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/imeth/matrix"

// GaussJordan solves a·x = b by reducing a to the identity. After the loop
// the transformed right-hand side is the solution; no back substitution.
//
// Implementation:
//   - Stage 1: validate and copy (a, b).
//   - Stage 2: for i = 0..n-1: reject |m(i,i)| < tol, divide the whole row i
//     and x[i] by the pivot, then clear column i in every row k ≠ i.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func GaussJordan(a matrix.Matrix, b *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	o := gatherOptions(opts...)
	s, err := loadSystem(opGaussJordan, a, b)
	if err != nil {
		return nil, err
	}

	n := s.n
	var i, k int
	var pivot float64
	for i = 0; i < n; i++ {
		pivot = s.m[i*n+i]
		if isSingularPivot(pivot, o.pivotTol) {
			return nil, singularAt(opGaussJordan, i, pivot)
		}
		s.normalizeRow(i, 0, pivot)
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			s.eliminate(k, i, 0)
		}
	}

	return s.solution(), nil
}

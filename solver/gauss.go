// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/imeth/matrix"

// GaussianElimination solves a·x = b by forward elimination to a unit upper
// triangular system followed by back substitution.
//
// Implementation:
//   - Stage 1: validate and copy (a, b).
//   - Stage 2: for i = 0..n-1: reject |m(i,i)| < tol, divide row i (columns
//     i..n-1) and x[i] by the pivot, then clear column i in every row k > i.
//   - Stage 3: for i = n-1..0: x[i] -= Σ_{j>i} m(i,j)·x[j].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (validation).
//   - ErrSingular at the first pivot below tolerance.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func GaussianElimination(a matrix.Matrix, b *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	o := gatherOptions(opts...)
	s, err := loadSystem(opGaussian, a, b)
	if err != nil {
		return nil, err
	}

	n := s.n
	var i, j, k int
	var pivot float64
	for i = 0; i < n; i++ {
		pivot = s.m[i*n+i]
		if isSingularPivot(pivot, o.pivotTol) {
			return nil, singularAt(opGaussian, i, pivot)
		}
		s.normalizeRow(i, i, pivot)
		for k = i + 1; k < n; k++ {
			s.eliminate(k, i, i)
		}
	}

	// Back substitution on the unit upper triangle.
	for i = n - 1; i >= 0; i-- {
		for j = i + 1; j < n; j++ {
			s.x[i] -= s.m[i*n+j] * s.x[j]
		}
	}

	return s.solution(), nil
}

// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/imeth/arithmetic"
	"github.com/katalvlaran/imeth/matrix"
)

// system is a private working copy of a·x = b.
//   - m holds a in row-major order (offset i*n + j).
//   - x starts as b and is transformed into the solution in place.
type system struct {
	n int
	m []float64
	x []float64
}

// loadSystem validates (a, b) and copies them into a fresh system.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (wrapped with tag).
func loadSystem(tag string, a matrix.Matrix, b *matrix.Vector) (*system, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, solverErrorf(tag, err)
	}
	flat, err := matrix.Flatten(a)
	if err != nil {
		return nil, solverErrorf(tag, err)
	}

	return &system{n: a.Rows(), m: flat, x: b.Values()}, nil
}

// isSingularPivot reports whether p is too small to divide by.
// An exact zero is always singular, also under a zero tolerance. A NaN pivot
// is singular as well, so NaN entries never yield a silent NaN solution.
func isSingularPivot(p, tol float64) bool {
	return p == 0 || math.IsNaN(p) || arithmetic.NearZero(p, tol)
}

// normalizeRow divides row i of m (columns from..n-1) and x[i] by the pivot.
func (s *system) normalizeRow(i, from int, pivot float64) {
	row := s.m[i*s.n : (i+1)*s.n]
	for j := from; j < s.n; j++ {
		row[j] /= pivot
	}
	s.x[i] /= pivot
}

// eliminate subtracts factor·row(i) from row(k), columns from..n-1, where
// factor = m(k,i), and mirrors the update on x.
func (s *system) eliminate(k, i, from int) {
	n := s.n
	factor := s.m[k*n+i]
	src := s.m[i*n : (i+1)*n]
	dst := s.m[k*n : (k+1)*n]
	for j := from; j < n; j++ {
		dst[j] -= factor * src[j]
	}
	s.x[k] -= factor * s.x[i]
}

// solution wraps the working right-hand side as the result vector.
func (s *system) solution() *matrix.Vector {
	return matrix.NewVectorFrom(s.x...)
}

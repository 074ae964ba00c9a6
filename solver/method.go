// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/imeth/matrix"
)

// Method selects a direct solver for Solve.
type Method int

const (
	// MethodGaussian is Gaussian elimination with back substitution.
	MethodGaussian Method = iota
	// MethodGaussJordan is Gauss-Jordan elimination.
	MethodGaussJordan
	// MethodLU is Doolittle LU factorization with two triangular solves.
	MethodLU
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodGaussian:
		return "gaussian"
	case MethodGaussJordan:
		return "gauss-jordan"
	case MethodLU:
		return "lu"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Methods lists every supported method in declaration order.
func Methods() []Method {
	return []Method{MethodGaussian, MethodGaussJordan, MethodLU}
}

// Solve dispatches to the solver selected by method.
// Errors: ErrUnknownMethod, plus whatever the selected solver returns.
func Solve(method Method, a matrix.Matrix, b *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	switch method {
	case MethodGaussian:
		return GaussianElimination(a, b, opts...)
	case MethodGaussJordan:
		return GaussJordan(a, b, opts...)
	case MethodLU:
		return LUDecomposition(a, b, opts...)
	default:
		return nil, solverErrorf(opSolve, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
}

// Residual returns max_i |(a·x)_i - b_i|, the max-norm of the residual.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Residual(a matrix.Matrix, x, b *matrix.Vector) (float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return 0, solverErrorf(opResidual, err)
	}
	ax, err := matrix.MulVec(a, x)
	if err != nil {
		return 0, solverErrorf(opResidual, err)
	}

	want := b.Values()
	worst := 0.0
	for i, v := range ax.Values() {
		worst = math.Max(worst, math.Abs(v-want[i]))
	}

	return worst, nil
}

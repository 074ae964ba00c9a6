// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular indicates a pivot with magnitude below the pivot tolerance.
	ErrSingular = errors.New("solver: singular matrix")

	// ErrUnknownMethod is returned by Solve for a Method outside the declared set.
	ErrUnknownMethod = errors.New("solver: unknown method")
)

// Operation tags used in error wrapping.
const (
	opGaussian    = "GaussianElimination"
	opGaussJordan = "GaussJordan"
	opLU          = "LU"
	opLUSolve     = "LUDecomposition"
	opSolve       = "Solve"
	opResidual    = "Residual"
)

// solverErrorf wraps err with an operation tag. Call only with err != nil.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// singularAt reports the diagonal position whose pivot failed the tolerance.
func singularAt(tag string, i int, pivot float64) error {
	return fmt.Errorf("%s: pivot %d = %g: %w", tag, i, pivot, ErrSingular)
}

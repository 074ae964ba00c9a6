// Package imeth is a small, dependency-light toolbox of everyday numerical
// methods for Go.
//
// Everything lives in focused subpackages:
//
//	arithmetic/      guarded scalar operations, percentages, fractions, basic statistics
//	matrix/          dense row-major matrices and vectors, Add/Sub/Mul/Transpose/MulVec
//	solver/          Gaussian, Gauss–Jordan and LU solvers for square systems A·x = b
//	algebra/         linear equations in one and two unknowns, quadratic roots
//	logarithm/       natural and arbitrary-base logarithms from a series expansion
//	base/            positional numeral conversion for bases 2..36, binary bit ops
//	geometry/        area, perimeter, surface and volume of common shapes
//	combinatorics/   counting formulas, generators, set operations and sequences
//	probability/     distributions, event algebra and small experiment models
//
// All functions are pure and safe for concurrent use. Errors are sentinel
// values matched with errors.Is; every mathematical domain failure wraps
// arithmetic.ErrDomain:
//
//	x, err := solver.GaussianElimination(a, b)
//	if errors.Is(err, solver.ErrSingular) {
//		// no unique solution
//	}
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/imeth
package imeth

// SPDX-License-Identifier: MIT

package algebra

import "errors"

var (
	// ErrNoSolution is returned by Solve1V when the x coefficient is zero.
	ErrNoSolution = errors.New("algebra: no solution")

	// ErrNoUniqueSolution is returned by Solve2V when elimination leaves a
	// zero y coefficient or the second x coefficient is zero.
	ErrNoUniqueSolution = errors.New("algebra: no unique solution")
)

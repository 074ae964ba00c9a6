// SPDX-License-Identifier: MIT

package algebra

import (
	"fmt"
	"math"
)

// Solve1V solves a·x + b = 0 and returns x = -b/a.
// Errors: ErrNoSolution when a == 0 exactly.
func Solve1V(a, b float64) (float64, error) {
	if a == 0 {
		return 0, fmt.Errorf("Solve1V(%g, %g): %w", a, b, ErrNoSolution)
	}

	return -b / a, nil
}

// Solve2V solves the system
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// by eliminating x. Unless a1 == a2, each equation is first scaled by the
// magnitude of the other equation's x coefficient, which leaves x terms of
// equal magnitude. The scaled equations are added when the x coefficients
// have opposite signs and subtracted otherwise; y is read from the reduced
// equation and x is recovered from the second one.
//
// Errors: ErrNoUniqueSolution when the reduced y coefficient is exactly zero,
// or when a2 == 0 (x cannot be recovered from the second equation).
func Solve2V(a1, b1, c1, a2, b2, c2 float64) (x, y float64, err error) {
	nb1, nb2, nc1, nc2 := b1, b2, c1, c2
	if a1 != a2 {
		s1, s2 := math.Abs(a2), math.Abs(a1)
		nb1, nb2 = b1*s1, b2*s2
		nc1, nc2 = c1*s1, c2*s2
	}

	var b3, c3 float64
	if (a1 < 0) != (a2 < 0) {
		b3, c3 = nb1+nb2, nc1+nc2
	} else {
		b3, c3 = nb1-nb2, nc1-nc2
	}

	if b3 == 0 || a2 == 0 {
		return 0, 0, fmt.Errorf("Solve2V: %w", ErrNoUniqueSolution)
	}

	y = c3 / b3
	x = (c2 - b2*y) / a2

	return x, y, nil
}

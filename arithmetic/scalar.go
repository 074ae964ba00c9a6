// SPDX-License-Identifier: MIT

package arithmetic

import "golang.org/x/exp/constraints"

// Number is any signed integer or floating-point type.
type Number interface {
	constraints.Signed | constraints.Float
}

// Abs returns |v|.
// Note: for the most negative value of a signed integer type the result
// overflows back to itself, as with any two's-complement negation.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sign returns -1, 0 or 1 according to the sign of v. NaN reports 0.
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// NearZero reports whether |v| < eps.
// The solvers use it with eps = 1e-12 to detect a numerically singular pivot.
// Complexity: O(1).
func NearZero(v, eps float64) bool {
	return Abs(v) < eps
}

// ApproxEqual reports whether |a-b| < eps.
func ApproxEqual(a, b, eps float64) bool {
	return Abs(a-b) < eps
}

// GCD returns the greatest common divisor of |a| and |b| (Euclid).
// GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// SPDX-License-Identifier: MIT

package base

import "math"

// addInt returns x+y or ok=false when the sum leaves the int range.
func addInt(x, y int) (int, bool) {
	s := x + y
	if (y > 0 && s < x) || (y < 0 && s > x) {
		return 0, false
	}

	return s, true
}

// subInt returns x-y or ok=false when the difference leaves the int range.
func subInt(x, y int) (int, bool) {
	d := x - y
	if (y > 0 && d > x) || (y < 0 && d < x) {
		return 0, false
	}

	return d, true
}

// mulInt returns x·y or ok=false when the product leaves the int range.
func mulInt(x, y int) (int, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt) || (y == -1 && x == math.MinInt) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}

	return p, true
}

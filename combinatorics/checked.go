// SPDX-License-Identifier: MIT

package combinatorics

import "math/bits"

// mul returns a·b or ok=false on overflow.
func mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)

	return lo, hi == 0
}

// add returns a+b or ok=false on overflow.
func add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)

	return sum, carry == 0
}

// mulDiv returns a·b/d with a 128-bit intermediate, or ok=false when the
// quotient does not fit in 64 bits. d must be non-zero.
func mulDiv(a, b, d uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, false
	}
	q, _ := bits.Div64(hi, lo, d)

	return q, true
}

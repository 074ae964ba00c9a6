// SPDX-License-Identifier: MIT

// Package logarithm evaluates logarithms with a power series instead of the
// math package: the argument is reduced by powers of two into (0.5, 1] and
// the Mercator series ln(1+z) = z - z²/2 + z³/3 - ... is summed for the
// remaining factor. Results agree with math.Log to roughly 1e-15 absolute.
package logarithm

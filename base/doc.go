// SPDX-License-Identifier: MIT

// Package base converts integers between positional numeral systems with
// radix 2 through 36, using the digit alphabet Digits. Output is always
// upper case; input is accepted in either case with an optional leading '-'.
//
// Arithmetic helpers (AddInBase, SubtractInBase, MultiplyInBase) convert
// their operands to int, operate, and convert back in the same base, and
// report ErrOverflow when the result leaves the int range.
//
// Bit operations (BitwiseAND, LeftShift, ...) take and return base-2 strings.
package base

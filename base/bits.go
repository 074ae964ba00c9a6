// SPDX-License-Identifier: MIT

package base

import (
	"fmt"
	"math/bits"
	"strings"
)

// bitwise parses two binary strings, applies op and renders the result in
// base 2. Negative operands take part in two's complement.
func bitwise(name, a, b string, op func(x, y int) int) (string, error) {
	x, err := FromBinary(a)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	y, err := FromBinary(b)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return ToBinary(op(x, y)), nil
}

// BitwiseAND returns a & b for binary strings.
func BitwiseAND(a, b string) (string, error) {
	return bitwise("BitwiseAND", a, b, func(x, y int) int { return x & y })
}

// BitwiseOR returns a | b for binary strings.
func BitwiseOR(a, b string) (string, error) {
	return bitwise("BitwiseOR", a, b, func(x, y int) int { return x | y })
}

// BitwiseXOR returns a ^ b for binary strings.
func BitwiseXOR(a, b string) (string, error) {
	return bitwise("BitwiseXOR", a, b, func(x, y int) int { return x ^ y })
}

// BitwiseNOT flips every digit of the binary string s and keeps its width,
// so BitwiseNOT("0101") == "1010". A leading '-' is kept as is.
// Errors: ErrEmptyNumber, ErrInvalidDigit.
func BitwiseNOT(s string) (string, error) {
	if _, err := FromBinary(s); err != nil {
		return "", fmt.Errorf("BitwiseNOT: %w", err)
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case '0':
			return '1'
		case '1':
			return '0'
		default:
			return r
		}
	}, s), nil
}

// LeftShift returns s << positions in base 2.
// Errors: ErrNegativeShift, ErrOverflow when set bits or the sign would be lost.
func LeftShift(s string, positions int) (string, error) {
	x, err := shiftOperand("LeftShift", s, positions)
	if err != nil {
		return "", err
	}
	if x == 0 {
		return "0", nil
	}
	if positions >= bits.UintSize {
		return "", fmt.Errorf("LeftShift(%q, %d): %w", s, positions, ErrOverflow)
	}
	r := x << positions
	if r>>positions != x {
		return "", fmt.Errorf("LeftShift(%q, %d): %w", s, positions, ErrOverflow)
	}

	return ToBinary(r), nil
}

// RightShift returns s >> positions in base 2 (arithmetic shift, so negative
// values round toward minus infinity).
// Errors: ErrNegativeShift.
func RightShift(s string, positions int) (string, error) {
	x, err := shiftOperand("RightShift", s, positions)
	if err != nil {
		return "", err
	}

	return ToBinary(x >> positions), nil
}

func shiftOperand(name, s string, positions int) (int, error) {
	if positions < 0 {
		return 0, fmt.Errorf("%s(%q, %d): %w", name, s, positions, ErrNegativeShift)
	}
	x, err := FromBinary(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return x, nil
}

// PadLeft left-pads the digits of s with '0' up to width characters,
// e.g. PadLeft("101", 8) == "00000101". A leading '-' stays in front and does
// not count toward width. Strings already at least width long are unchanged.
func PadLeft(s string, width int) string {
	sign, digits := "", s
	if strings.HasPrefix(s, "-") {
		sign, digits = "-", s[1:]
	}
	if len(digits) >= width {
		return s
	}

	return sign + strings.Repeat("0", width-len(digits)) + digits
}

// CountOnes returns the number of '1' digits in s.
func CountOnes(s string) int { return strings.Count(s, "1") }

// CountZeros returns the number of '0' digits in s.
func CountZeros(s string) int { return strings.Count(s, "0") }

// UpperDigits renders the letter digits of s in upper case ("ff" → "FF").
func UpperDigits(s string) string { return strings.ToUpper(s) }

// LowerDigits renders the letter digits of s in lower case ("FF" → "ff").
func LowerDigits(s string) string { return strings.ToLower(s) }

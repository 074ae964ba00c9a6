// SPDX-License-Identifier: MIT

package base

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Digits is the digit alphabet; the value of a digit is its index.
const Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Radix bounds accepted by every function in this package.
const (
	MinBase = 2
	MaxBase = len(Digits)
)

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return fmt.Errorf("base %d: %w", base, ErrInvalidBase)
	}

	return nil
}

// digitValue returns the value of c in the Digits alphabet (case-insensitive),
// or -1 when c is not an alphanumeric ASCII character.
func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// FromDecimal renders n in the given base, e.g. FromDecimal(255, 16) == "FF".
// Negative numbers get a leading '-'; zero is "0".
// Errors: ErrInvalidBase.
func FromDecimal(n, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}

	return strings.ToUpper(strconv.FormatInt(int64(n), base)), nil
}

// ToDecimal parses s as a number in the given base.
// Errors: ErrInvalidBase, ErrEmptyNumber, ErrInvalidDigit, ErrOverflow.
func ToDecimal(s string, base int) (int, error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, fmt.Errorf("%q: %w", s, ErrEmptyNumber)
	}
	for i := 0; i < len(digits); i++ {
		if d := digitValue(digits[i]); d < 0 || d >= base {
			return 0, fmt.Errorf("%q: %q in base %d: %w", s, digits[i], base, ErrInvalidDigit)
		}
	}

	v, err := strconv.ParseInt(s, base, strconv.IntSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%q: %w", s, ErrOverflow)
		}

		return 0, fmt.Errorf("%q: %w", s, ErrInvalidDigit)
	}

	return int(v), nil
}

// IsValid reports whether s is a well-formed number in base.
// A lone "-" and the empty string are not valid.
func IsValid(s string, base int) bool {
	if checkBase(base) != nil {
		return false
	}
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if d := digitValue(digits[i]); d < 0 || d >= base {
			return false
		}
	}

	return true
}

// Convert re-expresses s from one base in another.
func Convert(s string, from, to int) (string, error) {
	if err := checkBase(to); err != nil {
		return "", err
	}
	n, err := ToDecimal(s, from)
	if err != nil {
		return "", err
	}

	return FromDecimal(n, to)
}

// binaryOp parses both operands in base, applies op and renders the result.
// Errors: anything ToDecimal reports; ErrOverflow when op leaves the int range.
func binaryOp(name, a, b string, base int, op func(x, y int) (int, bool)) (string, error) {
	x, err := ToDecimal(a, base)
	if err != nil {
		return "", err
	}
	y, err := ToDecimal(b, base)
	if err != nil {
		return "", err
	}
	r, ok := op(x, y)
	if !ok {
		return "", fmt.Errorf("%s(%q, %q, %d): %w", name, a, b, base, ErrOverflow)
	}

	return FromDecimal(r, base)
}

// AddInBase returns a + b, all in the given base.
func AddInBase(a, b string, base int) (string, error) {
	return binaryOp("AddInBase", a, b, base, addInt)
}

// SubtractInBase returns a - b, all in the given base.
func SubtractInBase(a, b string, base int) (string, error) {
	return binaryOp("SubtractInBase", a, b, base, subInt)
}

// MultiplyInBase returns a * b, all in the given base.
func MultiplyInBase(a, b string, base int) (string, error) {
	return binaryOp("MultiplyInBase", a, b, base, mulInt)
}

// ToBinary renders n in base 2.
func ToBinary(n int) string { return mustFrom(n, 2) }

// ToTrinary renders n in base 3.
func ToTrinary(n int) string { return mustFrom(n, 3) }

// ToOctal renders n in base 8.
func ToOctal(n int) string { return mustFrom(n, 8) }

// ToHex renders n in base 16.
func ToHex(n int) string { return mustFrom(n, 16) }

// FromBinary parses a base-2 string.
func FromBinary(s string) (int, error) { return ToDecimal(s, 2) }

// FromTrinary parses a base-3 string.
func FromTrinary(s string) (int, error) { return ToDecimal(s, 3) }

// FromOctal parses a base-8 string.
func FromOctal(s string) (int, error) { return ToDecimal(s, 8) }

// FromHex parses a base-16 string.
func FromHex(s string) (int, error) { return ToDecimal(s, 16) }

// mustFrom renders n in a base known to be valid.
func mustFrom(n, base int) string {
	return strings.ToUpper(strconv.FormatInt(int64(n), base))
}

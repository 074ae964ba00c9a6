// SPDX-License-Identifier: MIT

package base

import "errors"

var (
	// ErrInvalidBase indicates a radix outside [MinBase, MaxBase].
	ErrInvalidBase = errors.New("base: base must be between 2 and 36")

	// ErrInvalidDigit indicates a character that is not a digit of the base.
	ErrInvalidDigit = errors.New("base: invalid digit for base")

	// ErrEmptyNumber indicates an empty string, or a lone sign.
	ErrEmptyNumber = errors.New("base: empty number")

	// ErrOverflow indicates a value that does not fit in an int.
	ErrOverflow = errors.New("base: value out of int range")

	// ErrNegativeShift indicates a negative shift count.
	ErrNegativeShift = errors.New("base: negative shift count")
)

// SPDX-License-Identifier: MIT
// Package arithmetic: sentinel error set.
// All domain failures wrap ErrDomain; match them with errors.Is.

package arithmetic

import (
	"errors"
	"fmt"
)

// ErrDomain is the umbrella sentinel for inputs outside a function's domain.
var ErrDomain = errors.New("arithmetic: domain error")

var (
	// ErrDivideByZero is returned when a divisor (or denominator) is exactly zero.
	ErrDivideByZero = fmt.Errorf("%w: division by zero", ErrDomain)

	// ErrNegativeRoot is returned when an even root of a negative number is requested.
	ErrNegativeRoot = fmt.Errorf("%w: square root of negative number", ErrDomain)

	// ErrEmptyInput is returned by statistics that are undefined for an empty sample.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrDomain)
)

// Operation tags used when wrapping sentinels.
const (
	opDivide     = "Divide"
	opPower      = "Power"
	opSquareRoot = "SquareRoot"
	opRemainder  = "Remainder"
	opPercent    = "Percent"
	opFraction   = "Fraction"
	opAverage    = "Average"
	opMinimum    = "Minimum"
	opMaximum    = "Maximum"
	opMedian     = "Median"
)

// arithmeticErrorf wraps err with an operation tag, preserving it for errors.Is.
func arithmeticErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

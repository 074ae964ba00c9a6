// SPDX-License-Identifier: MIT

// Package arithmetic provides the scalar helpers shared by the rest of imeth:
// epsilon-aware comparisons, absolute value and sign, guarded division and
// roots, percentages, fractions, rounding and small descriptive statistics.
//
// Every function is pure. Failures that come from the mathematical domain
// (division by zero, even root of a negative number, statistics of an empty
// sample) are reported through sentinels that all wrap ErrDomain, so callers
// can match the whole family with a single errors.Is check:
//
//	if errors.Is(err, arithmetic.ErrDomain) { ... }
//
// Generic helpers (Abs, Sign, GCD, LCM) accept any built-in numeric type via
// golang.org/x/exp/constraints.
package arithmetic

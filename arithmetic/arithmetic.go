// SPDX-License-Identifier: MIT

package arithmetic

import "math"

// Divide returns a/b, or ErrDivideByZero when b == 0.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, arithmeticErrorf(opDivide, ErrDivideByZero)
	}

	return a / b, nil
}

// Power raises base to an integer exponent by binary exponentiation.
// A negative exponent yields the reciprocal; 0 raised to a negative
// exponent is ErrDivideByZero. Power(x, 0) is 1 for every x.
// Complexity: O(log |exp|).
func Power(base float64, exp int) (float64, error) {
	neg := exp < 0
	if neg && base == 0 {
		return 0, arithmeticErrorf(opPower, ErrDivideByZero)
	}
	// uint(-exp) is still the right magnitude for math.MinInt.
	e := uint(exp)
	if neg {
		e = uint(-exp)
	}
	result := 1.0
	for sq := base; e > 0; e >>= 1 {
		if e&1 == 1 {
			result *= sq
		}
		sq *= sq
	}
	if neg {
		return 1 / result, nil
	}

	return result, nil
}

// SquareRoot returns √n, or ErrNegativeRoot when n < 0.
func SquareRoot(n float64) (float64, error) {
	if n < 0 {
		return 0, arithmeticErrorf(opSquareRoot, ErrNegativeRoot)
	}

	return math.Sqrt(n), nil
}

// CubeRoot returns the real cube root of n, preserving its sign.
func CubeRoot(n float64) float64 {
	return math.Cbrt(n)
}

// Remainder returns a % b (Go truncated semantics), or ErrDivideByZero when b == 0.
func Remainder(a, b int) (int, error) {
	if b == 0 {
		return 0, arithmeticErrorf(opRemainder, ErrDivideByZero)
	}

	return a % b, nil
}

// IsDivisible reports whether b divides a. A zero divisor divides nothing.
func IsDivisible(a, b int) bool {
	if b == 0 {
		return false
	}

	return a%b == 0
}

// ---------- Percentages ----------

// PercentOf returns percent% of total.
func PercentOf(percent, total float64) float64 {
	return percent / 100 * total
}

// WhatPercent returns the share of part in total, in percent.
func WhatPercent(part, total float64) (float64, error) {
	if total == 0 {
		return 0, arithmeticErrorf(opPercent, ErrDivideByZero)
	}

	return part / total * 100, nil
}

// PercentIncrease returns the relative growth from original to next, in percent.
func PercentIncrease(original, next float64) (float64, error) {
	if original == 0 {
		return 0, arithmeticErrorf(opPercent, ErrDivideByZero)
	}

	return (next - original) / original * 100, nil
}

// PercentDecrease returns the relative drop from original to next, in percent.
func PercentDecrease(original, next float64) (float64, error) {
	if original == 0 {
		return 0, arithmeticErrorf(opPercent, ErrDivideByZero)
	}

	return (original - next) / original * 100, nil
}

// ---------- Fractions (evaluated as float64) ----------

// AddFractions returns n1/d1 + n2/d2 over the common denominator d1*d2.
func AddFractions(n1, d1, n2, d2 float64) (float64, error) {
	if d1 == 0 || d2 == 0 {
		return 0, arithmeticErrorf(opFraction, ErrDivideByZero)
	}

	return (n1*d2 + n2*d1) / (d1 * d2), nil
}

// SubtractFractions returns n1/d1 - n2/d2.
func SubtractFractions(n1, d1, n2, d2 float64) (float64, error) {
	if d1 == 0 || d2 == 0 {
		return 0, arithmeticErrorf(opFraction, ErrDivideByZero)
	}

	return (n1*d2 - n2*d1) / (d1 * d2), nil
}

// MultiplyFractions returns (n1/d1) * (n2/d2).
func MultiplyFractions(n1, d1, n2, d2 float64) (float64, error) {
	if d1 == 0 || d2 == 0 {
		return 0, arithmeticErrorf(opFraction, ErrDivideByZero)
	}

	return (n1 * n2) / (d1 * d2), nil
}

// DivideFractions returns (n1/d1) / (n2/d2); the divisor must be non-zero.
func DivideFractions(n1, d1, n2, d2 float64) (float64, error) {
	if d1 == 0 || d2 == 0 || n2 == 0 {
		return 0, arithmeticErrorf(opFraction, ErrDivideByZero)
	}

	return (n1 * d2) / (d1 * n2), nil
}

// ---------- Rounding ----------

// RoundToNearest rounds half away from zero.
func RoundToNearest(n float64) float64 { return math.Round(n) }

// RoundUp rounds toward +Inf.
func RoundUp(n float64) float64 { return math.Ceil(n) }

// RoundDown rounds toward -Inf.
func RoundDown(n float64) float64 { return math.Floor(n) }

// RoundToDecimalPlaces rounds n half away from zero to the given number of
// decimal places. Negative places round to tens, hundreds, ...
func RoundToDecimalPlaces(n float64, places int) float64 {
	scale := math.Pow(10, float64(places))

	return math.Round(n*scale) / scale
}

// ---------- Number properties ----------

// IsEven reports whether n is even.
func IsEven(n int) bool { return n%2 == 0 }

// IsOdd reports whether n is odd.
func IsOdd(n int) bool { return n%2 != 0 }

// IsPrime reports whether n is prime by trial division over odd divisors ≤ √n.
// Complexity: O(√n).
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// ---------- Distances ----------

// Distance2D returns the Euclidean distance between (x1,y1) and (x2,y2).
func Distance2D(x1, y1, x2, y2 float64) float64 {
	return Pythagorean(x2-x1, y2-y1)
}

// Pythagorean returns the hypotenuse √(a²+b²) without intermediate overflow.
func Pythagorean(a, b float64) float64 {
	return math.Hypot(a, b)
}

// ---------- Conversions ----------

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// SimpleInterest returns principal * rate% * time.
func SimpleInterest(principal, rate, time float64) float64 {
	return principal * (rate / 100) * time
}

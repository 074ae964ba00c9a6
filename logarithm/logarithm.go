// SPDX-License-Identifier: MIT

package logarithm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/imeth/arithmetic"
)

// Series controls.
const (
	// MaxTerms bounds the number of series terms.
	MaxTerms = 100
	// TermCutoff stops the series once |term/n| drops below it.
	TermCutoff = 1e-15
	// BaseOneTolerance rejects bases this close to 1.
	BaseOneTolerance = 1e-10
)

// ln computes ln(x) for finite x > 0.
func ln(x float64) float64 {
	frac, exp := math.Frexp(x) // x = frac·2^exp, frac ∈ [0.5, 1)
	if frac == 0.5 {
		frac, exp = 1, exp-1
	}

	z := frac - 1 // z ∈ (-0.5, 0]
	result := 0.0
	term := z
	for n := 1; n <= MaxTerms; n++ {
		result += term / float64(n)
		term *= -z
		if arithmetic.Abs(term/float64(n)) < TermCutoff {
			break
		}
	}

	return result + float64(exp)*math.Ln2
}

func checkArg(name string, x float64) error {
	if !(x > 0) { // also catches NaN
		return fmt.Errorf("%s(%g): %w", name, x, ErrDomain)
	}

	return nil
}

func checkBase(name string, base float64) error {
	if !(base > 0) || arithmetic.NearZero(base-1, BaseOneTolerance) {
		return fmt.Errorf("%s: base %g: %w", name, base, ErrDomain)
	}

	return nil
}

// lnChecked is ln with the domain check; +Inf maps to +Inf.
func lnChecked(name string, x float64) (float64, error) {
	if err := checkArg(name, x); err != nil {
		return 0, err
	}
	if math.IsInf(x, 1) {
		return math.Inf(1), nil
	}

	return ln(x), nil
}

// Ln returns the natural logarithm of x.
// Errors: ErrDomain when x ≤ 0 or x is NaN.
func Ln(x float64) (float64, error) {
	return lnChecked("Ln", x)
}

// Log returns the logarithm of x in the given base.
// Errors: ErrDomain for x ≤ 0, base ≤ 0 or base ≈ 1.
func Log(base, x float64) (float64, error) {
	if err := checkBase("Log", base); err != nil {
		return 0, err
	}
	num, err := lnChecked("Log", x)
	if err != nil {
		return 0, err
	}
	den, err := lnChecked("Log", base)
	if err != nil {
		return 0, err
	}

	return num / den, nil
}

// Log10 returns the decimal logarithm of x.
func Log10(x float64) (float64, error) {
	v, err := lnChecked("Log10", x)

	return v / math.Ln10, err
}

// Log2 returns the binary logarithm of x.
func Log2(x float64) (float64, error) {
	v, err := lnChecked("Log2", x)

	return v / math.Ln2, err
}

// SolveExponential returns the x solving base^x = value, i.e. Log(base, value).
func SolveExponential(base, value float64) (float64, error) {
	return Log(base, value)
}

// ChangeBase re-expresses log_oldBase(value) in newBase:
// log_new(value) = log_old(value) / log_old(newBase).
// Errors: ErrDomain for a bad value or either bad base.
func ChangeBase(value, oldBase, newBase float64) (float64, error) {
	if err := checkBase("ChangeBase", oldBase); err != nil {
		return 0, err
	}
	if err := checkBase("ChangeBase", newBase); err != nil {
		return 0, err
	}
	logValue, err := Log(oldBase, value)
	if err != nil {
		return 0, err
	}
	logNew, err := Log(oldBase, newBase)
	if err != nil {
		return 0, err
	}

	return logValue / logNew, nil
}

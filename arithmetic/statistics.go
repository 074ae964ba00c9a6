// SPDX-License-Identifier: MIT

package arithmetic

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the sum of xs; the empty sum is 0.
func Sum(xs []float64) float64 { return floats.Sum(xs) }

// Average returns the arithmetic mean of xs, or ErrEmptyInput.
func Average(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, arithmeticErrorf(opAverage, ErrEmptyInput)
	}

	return stat.Mean(xs, nil), nil
}

// Minimum returns the smallest element of xs, or ErrEmptyInput.
func Minimum(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, arithmeticErrorf(opMinimum, ErrEmptyInput)
	}

	return floats.Min(xs), nil
}

// Maximum returns the largest element of xs, or ErrEmptyInput.
func Maximum(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, arithmeticErrorf(opMaximum, ErrEmptyInput)
	}

	return floats.Max(xs), nil
}

// Range returns Maximum(xs) - Minimum(xs), or ErrEmptyInput.
func Range(xs []float64) (float64, error) {
	lo, err := Minimum(xs)
	if err != nil {
		return 0, err
	}
	hi, _ := Maximum(xs) // non-empty already checked

	return hi - lo, nil
}

// Median returns the middle value of xs (mean of the two middle values for
// an even count), or ErrEmptyInput. xs itself is not reordered.
// stat.Quantile picks one of the two middle values instead of averaging them,
// so the even case is computed here.
// Complexity: O(n log n) time, O(n) space for the sorted copy.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, arithmeticErrorf(opMedian, ErrEmptyInput)
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}

	return sorted[n/2], nil
}

// SPDX-License-Identifier: MIT

package combinatorics

import "fmt"

// Operation tags.
const (
	opFactorial   = "Factorial"
	opCombination = "Combination"
	opPermutation = "Permutation"
	opMultiset    = "PermutationWithRepetition"
	opPower       = "PermutationFullRepetition"
	opDerangement = "Derangement"
)

// Factorial returns n!. Exact for n ≤ 20.
// Errors: ErrOverflow for n > 20.
func Factorial(n uint64) (uint64, error) {
	result := uint64(1)
	var ok bool
	for i := uint64(2); i <= n; i++ {
		if result, ok = mul(result, i); !ok {
			return 0, combErrorf(opFactorial, fmt.Errorf("%d!: %w", n, ErrOverflow))
		}
	}

	return result, nil
}

// Combination returns C(n, k), the number of k-subsets of an n-set.
// C(n, k) is 0 when k > n.
// Errors: ErrOverflow when the result exceeds uint64.
func Combination(n, k uint64) (uint64, error) {
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	// After step i, result == C(n, i+1), so every division is exact.
	result := uint64(1)
	var ok bool
	for i := uint64(0); i < k; i++ {
		if result, ok = mulDiv(result, n-i, i+1); !ok {
			return 0, combErrorf(opCombination, fmt.Errorf("C(%d,%d): %w", n, k, ErrOverflow))
		}
	}

	return result, nil
}

// CombinationFloat returns C(n, k) as a float64. It never overflows for
// arguments whose result is below math.MaxFloat64 and loses exactness above 2^53.
func CombinationFloat(n, k uint64) float64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := uint64(0); i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}

	return result
}

// Permutation returns P(n, r) = n!/(n-r)!, the ordered r-arrangements of n items.
// Errors: ErrInvalidArgument when r > n; ErrOverflow.
func Permutation(n, r uint64) (uint64, error) {
	if r > n {
		return 0, combErrorf(opPermutation, fmt.Errorf("r=%d > n=%d: %w", r, n, ErrInvalidArgument))
	}
	result := uint64(1)
	var ok bool
	for i := uint64(0); i < r; i++ {
		if result, ok = mul(result, n-i); !ok {
			return 0, combErrorf(opPermutation, fmt.Errorf("P(%d,%d): %w", n, r, ErrOverflow))
		}
	}

	return result, nil
}

// CombinationWithRepetition returns C(n+r-1, r), the r-multisets over n kinds.
// By convention it is 1 for r == 0 and 0 for n == 0 < r.
func CombinationWithRepetition(n, r uint64) (uint64, error) {
	if r == 0 {
		return 1, nil
	}
	if n == 0 {
		return 0, nil
	}
	top, ok := add(n, r-1)
	if !ok {
		return 0, combErrorf(opCombination, ErrOverflow)
	}

	return Combination(top, r)
}

// PermutationWithRepetition returns n!/(r1!·r2!·...), the distinct orderings
// of n items where the i-th kind repeats reps[i] times.
// Errors: ErrInvalidArgument when Σreps > n; ErrOverflow.
func PermutationWithRepetition(n uint64, reps ...uint64) (uint64, error) {
	var total uint64
	var ok bool
	for _, r := range reps {
		if total, ok = add(total, r); !ok || total > n {
			return 0, combErrorf(opMultiset, fmt.Errorf("repetitions exceed n=%d: %w", n, ErrInvalidArgument))
		}
	}

	// Multiply binomials C(m, r) instead of dividing factorials, which keeps
	// intermediates as small as the result allows.
	result := uint64(1)
	remaining := n
	for _, r := range reps {
		c, err := Combination(remaining, r)
		if err != nil {
			return 0, combErrorf(opMultiset, ErrOverflow)
		}
		if result, ok = mul(result, c); !ok {
			return 0, combErrorf(opMultiset, ErrOverflow)
		}
		remaining -= r
	}
	// Unlisted items are distinct.
	rest, err := Factorial(remaining)
	if err != nil {
		return 0, combErrorf(opMultiset, ErrOverflow)
	}
	if result, ok = mul(result, rest); !ok {
		return 0, combErrorf(opMultiset, ErrOverflow)
	}

	return result, nil
}

// PermutationFullRepetition returns n^r, the r-sequences over n symbols.
// Errors: ErrOverflow.
func PermutationFullRepetition(n, r uint64) (uint64, error) {
	switch {
	case r == 0 || n == 1:
		return 1, nil
	case n == 0:
		return 0, nil
	}
	// n ≥ 2 overflows within 64 steps.
	result := uint64(1)
	var ok bool
	for i := uint64(0); i < r; i++ {
		if result, ok = mul(result, n); !ok {
			return 0, combErrorf(opPower, fmt.Errorf("%d^%d: %w", n, r, ErrOverflow))
		}
	}

	return result, nil
}

// CircularPermutation returns (n-1)!, the arrangements of n items around a
// circle; 0 for n == 0.
func CircularPermutation(n uint64) (uint64, error) {
	if n == 0 {
		return 0, nil
	}

	return Factorial(n - 1)
}

// PermutationWithRestriction returns (n-fixed)!, the arrangements of n items
// when fixed of them have prescribed positions; 0 when fixed > n.
func PermutationWithRestriction(n, fixed uint64) (uint64, error) {
	if fixed > n {
		return 0, nil
	}

	return Factorial(n - fixed)
}

// Derangement returns !n, the permutations of n items with no fixed point.
// Errors: ErrOverflow for n > 20.
func Derangement(n uint64) (uint64, error) {
	if n == 0 {
		return 1, nil
	}
	if n == 1 {
		return 0, nil
	}

	// !i = (i-1)·(!(i-1) + !(i-2))
	prev2, prev1 := uint64(1), uint64(0)
	var curr uint64
	var ok bool
	for i := uint64(2); i <= n; i++ {
		sum, okAdd := add(prev1, prev2)
		if curr, ok = mul(i-1, sum); !ok || !okAdd {
			return 0, combErrorf(opDerangement, fmt.Errorf("!%d: %w", n, ErrOverflow))
		}
		prev2, prev1 = prev1, curr
	}

	return curr, nil
}

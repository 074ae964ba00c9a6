// SPDX-License-Identifier: MIT

package combinatorics

import "fmt"

const (
	opArithmetic = "Arithmetic"
	opGeometric  = "Geometric"
)

// ArithmeticSequence returns first, first+diff, ... (terms values).
// Errors: ErrOverflow.
func ArithmeticSequence(first, diff uint64, terms int) ([]uint64, error) {
	out := make([]uint64, 0, max(terms, 0))
	cur := first
	var ok bool
	for i := 0; i < terms; i++ {
		out = append(out, cur)
		if i+1 < terms {
			if cur, ok = add(cur, diff); !ok {
				return nil, combErrorf(opArithmetic, ErrOverflow)
			}
		}
	}

	return out, nil
}

// NthTermArithmetic returns first + (n-1)·diff. n is 1-based.
// Errors: ErrInvalidArgument for n == 0; ErrOverflow.
func NthTermArithmetic(first, diff, n uint64) (uint64, error) {
	if n == 0 {
		return 0, combErrorf(opArithmetic, fmt.Errorf("term 0: %w", ErrInvalidArgument))
	}
	step, ok := mul(n-1, diff)
	if !ok {
		return 0, combErrorf(opArithmetic, ErrOverflow)
	}
	term, ok := add(first, step)
	if !ok {
		return 0, combErrorf(opArithmetic, ErrOverflow)
	}

	return term, nil
}

// ArithmeticSum returns terms·(first+last)/2, the sum of an arithmetic
// progression given its end points.
// Errors: ErrOverflow.
func ArithmeticSum(first, last, terms uint64) (uint64, error) {
	ends, ok := add(first, last)
	if !ok {
		// (first+last)/2 with the carry folded back in.
		return sumHalves(first, last, terms)
	}
	s, ok := mulDiv(terms, ends, 2)
	if !ok {
		return 0, combErrorf(opArithmetic, ErrOverflow)
	}

	return s, nil
}

// sumHalves computes terms·(first+last)/2 when first+last itself overflows,
// which only fits when terms is small.
func sumHalves(first, last, terms uint64) (uint64, error) {
	half := first/2 + last/2 + (first%2+last%2)/2
	odd := (first%2 + last%2) % 2
	s, ok := mul(terms, half)
	if !ok {
		return 0, combErrorf(opArithmetic, ErrOverflow)
	}
	if s, ok = add(s, terms*odd/2); !ok {
		return 0, combErrorf(opArithmetic, ErrOverflow)
	}

	return s, nil
}

// GeometricSequence returns first, first·ratio, ... (terms values).
// Errors: ErrOverflow.
func GeometricSequence(first, ratio uint64, terms int) ([]uint64, error) {
	out := make([]uint64, 0, max(terms, 0))
	cur := first
	var ok bool
	for i := 0; i < terms; i++ {
		out = append(out, cur)
		if i+1 < terms {
			if cur, ok = mul(cur, ratio); !ok {
				return nil, combErrorf(opGeometric, ErrOverflow)
			}
		}
	}

	return out, nil
}

// NthTermGeometric returns first·ratio^(n-1). n is 1-based.
// Errors: ErrInvalidArgument for n == 0; ErrOverflow.
func NthTermGeometric(first, ratio, n uint64) (uint64, error) {
	if n == 0 {
		return 0, combErrorf(opGeometric, fmt.Errorf("term 0: %w", ErrInvalidArgument))
	}
	if first == 0 {
		return 0, nil
	}
	p, err := PermutationFullRepetition(ratio, n-1)
	if err != nil {
		return 0, combErrorf(opGeometric, ErrOverflow)
	}
	term, ok := mul(first, p)
	if !ok {
		return 0, combErrorf(opGeometric, ErrOverflow)
	}

	return term, nil
}

// GeometricSum returns first + first·ratio + ... over terms terms, summed
// term by term; a zero term ends the sum.
// Errors: ErrOverflow.
func GeometricSum(first, ratio uint64, terms int) (uint64, error) {
	if terms <= 0 {
		return 0, nil
	}
	if ratio == 1 {
		s, ok := mul(first, uint64(terms))
		if !ok {
			return 0, combErrorf(opGeometric, ErrOverflow)
		}

		return s, nil
	}

	var sum uint64
	cur := first
	var ok bool
	for i := 0; i < terms; i++ {
		if sum, ok = add(sum, cur); !ok {
			return 0, combErrorf(opGeometric, ErrOverflow)
		}
		if cur == 0 {
			break
		}
		if i+1 < terms {
			if cur, ok = mul(cur, ratio); !ok {
				return 0, combErrorf(opGeometric, ErrOverflow)
			}
		}
	}

	return sum, nil
}

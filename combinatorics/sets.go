// SPDX-License-Identifier: MIT

package combinatorics

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Combinations returns every k-element selection of items, in lexicographic
// order of positions: for items [a b c] and k = 2 it yields [a b], [a c], [b c].
// k == 0 yields one empty selection; k < 0 or k > len(items) yields none.
// Each selection is a fresh slice.
func Combinations[T any](items []T, k int) [][]T {
	n := len(items)
	if k < 0 || k > n {
		return nil
	}

	var out [][]T
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		pick := make([]T, k)
		for i, p := range idx {
			pick[i] = items[p]
		}
		out = append(out, pick)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Permutations returns the distinct orderings of items in ascending
// lexicographic order. Repeated values are not permuted among themselves,
// so [1 1 2] has 3 permutations, not 6. items is not modified.
func Permutations[T constraints.Ordered](items []T) [][]T {
	perm := slices.Clone(items)
	slices.Sort(perm)

	out := [][]T{slices.Clone(perm)}
	for nextPermutation(perm) {
		out = append(out, slices.Clone(perm))
	}

	return out
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false when p is already the last permutation.
func nextPermutation[T constraints.Ordered](p []T) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}

// Subsets returns all 2^n subsets of items. Subset m holds items[i] for each
// set bit i of m, so the order starts [], [a], [b], [a b], [c], ...
func Subsets[T any](items []T) [][]T {
	out := [][]T{{}}
	for _, it := range items {
		for _, s := range out[:len(out):len(out)] {
			next := make([]T, len(s), len(s)+1)
			copy(next, s)
			out = append(out, append(next, it))
		}
	}

	return out
}

// IsSubset reports whether every element of sub occurs in set.
func IsSubset[T comparable](sub, set []T) bool {
	seen := make(map[T]struct{}, len(set))
	for _, v := range set {
		seen[v] = struct{}{}
	}
	for _, v := range sub {
		if _, ok := seen[v]; !ok {
			return false
		}
	}

	return true
}

// sortedSet returns the distinct values of xs in ascending order.
func sortedSet[T constraints.Ordered](xs []T) []T {
	s := slices.Clone(xs)
	slices.Sort(s)

	return slices.Compact(s)
}

// merge walks the sorted sets a and b and keeps values according to the
// membership flags: inA for values only in a, inB for values only in b,
// both for values in each.
func merge[T constraints.Ordered](a, b []T, inA, inB, both bool) []T {
	a, b = sortedSet(a), sortedSet(b)
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]):
			if inA {
				out = append(out, a[i])
			}
			i++
		case i == len(a) || b[j] < a[i]:
			if inB {
				out = append(out, b[j])
			}
			j++
		default:
			if both {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}

	return out
}

// Union returns the sorted distinct values found in a or b.
func Union[T constraints.Ordered](a, b []T) []T { return merge(a, b, true, true, true) }

// Intersection returns the sorted distinct values found in both a and b.
func Intersection[T constraints.Ordered](a, b []T) []T { return merge(a, b, false, false, true) }

// Difference returns the sorted distinct values of a that are not in b.
func Difference[T constraints.Ordered](a, b []T) []T { return merge(a, b, true, false, false) }

// SymmetricDifference returns the sorted distinct values in exactly one of a and b.
func SymmetricDifference[T constraints.Ordered](a, b []T) []T {
	return merge(a, b, true, true, false)
}

// Pair is one element of a Cartesian product.
type Pair[T any] struct {
	First, Second T
}

// CartesianProduct returns every (x, y) with x from a and y from b, a-major.
func CartesianProduct[T any](a, b []T) []Pair[T] {
	out := make([]Pair[T], 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, Pair[T]{First: x, Second: y})
		}
	}

	return out
}

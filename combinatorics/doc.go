// SPDX-License-Identifier: MIT

// Package combinatorics counts arrangements, selections and partitions in
// uint64 arithmetic.
//
// The factorial and permutation family reports ErrOverflow instead of
// wrapping. Sequence helpers (Fibonacci, Catalan, Bell, ...) return plain
// uint64 values and are exact within the ranges stated on each function;
// beyond them results wrap modulo 2^64.
//
// Generic generators (Combinations, Permutations, Subsets) and set
// operations work on slices; set results are sorted and deduplicated.
// Progressions and graph edge counts are overflow-checked like the factorial
// family.
package combinatorics

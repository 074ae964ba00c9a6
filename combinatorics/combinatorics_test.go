// SPDX-License-Identifier: MIT

package combinatorics_test

import (
	"testing"

	"github.com/katalvlaran/imeth/arithmetic"
	"github.com/katalvlaran/imeth/combinatorics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustU returns an unwrapper for (uint64, error) results that fails t on error.
func mustU(t *testing.T) func(uint64, error) uint64 {
	return func(v uint64, err error) uint64 {
		t.Helper()
		require.NoError(t, err)

		return v
	}
}

func TestFactorial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(1), mustU(t)(combinatorics.Factorial(0)))
	assert.Equal(t, uint64(1), mustU(t)(combinatorics.Factorial(1)))
	assert.Equal(t, uint64(120), mustU(t)(combinatorics.Factorial(5)))
	assert.Equal(t, uint64(2432902008176640000), mustU(t)(combinatorics.Factorial(20)))

	_, err := combinatorics.Factorial(21)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)
}

func TestCombination(t *testing.T) {
	t.Parallel()

	tests := []struct{ n, k, want uint64 }{
		{5, 2, 10},
		{10, 0, 1},
		{10, 10, 1},
		{3, 5, 0},
		{52, 5, 2598960},
		{67, 33, 14226520737620288370},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, mustU(t)(combinatorics.Combination(tc.n, tc.k)), "C(%d,%d)", tc.n, tc.k)
	}

	_, err := combinatorics.Combination(68, 34)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)

	assert.InDelta(t, 2598960, combinatorics.CombinationFloat(52, 5), 1e-6)
	assert.Zero(t, combinatorics.CombinationFloat(2, 3))
}

func TestPermutation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(20), mustU(t)(combinatorics.Permutation(5, 2)))
	assert.Equal(t, uint64(1), mustU(t)(combinatorics.Permutation(5, 0)))

	_, err := combinatorics.Permutation(3, 4)
	require.ErrorIs(t, err, combinatorics.ErrInvalidArgument)
	require.ErrorIs(t, err, arithmetic.ErrDomain)

	assert.Equal(t, uint64(15), mustU(t)(combinatorics.CombinationWithRepetition(3, 4)))
	assert.Equal(t, uint64(1), mustU(t)(combinatorics.CombinationWithRepetition(0, 0)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.CombinationWithRepetition(0, 2)))

	// MISSISSIPPI: 11!/(4!·4!·2!)
	assert.Equal(t, uint64(34650), mustU(t)(combinatorics.PermutationWithRepetition(11, 4, 4, 2)))
	assert.Equal(t, uint64(6), mustU(t)(combinatorics.PermutationWithRepetition(3)))
	_, err = combinatorics.PermutationWithRepetition(3, 2, 2)
	require.ErrorIs(t, err, combinatorics.ErrInvalidArgument)

	assert.Equal(t, uint64(1024), mustU(t)(combinatorics.PermutationFullRepetition(2, 10)))
	_, err = combinatorics.PermutationFullRepetition(2, 64)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)
	// Bases 0 and 1 answer without iterating over r.
	assert.Equal(t, uint64(1), mustU(t)(combinatorics.PermutationFullRepetition(1, 1<<63)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.PermutationFullRepetition(0, 1<<63)))
	assert.Equal(t, uint64(1), mustU(t)(combinatorics.PermutationFullRepetition(0, 0)))

	assert.Equal(t, uint64(24), mustU(t)(combinatorics.CircularPermutation(5)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.CircularPermutation(0)))
	assert.Equal(t, uint64(6), mustU(t)(combinatorics.PermutationWithRestriction(5, 2)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.PermutationWithRestriction(2, 5)))
}

func TestDerangement(t *testing.T) {
	t.Parallel()

	want := []uint64{1, 0, 1, 2, 9, 44, 265}
	for n, w := range want {
		assert.Equal(t, w, mustU(t)(combinatorics.Derangement(uint64(n))), "!%d", n)
	}
	assert.Equal(t, uint64(895014631192902121), mustU(t)(combinatorics.Derangement(20)))
	_, err := combinatorics.Derangement(21)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)
}

func TestSequences(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(25), combinatorics.StirlingSecond(5, 3))
	assert.Equal(t, uint64(1), combinatorics.StirlingSecond(0, 0))
	assert.Equal(t, uint64(0), combinatorics.StirlingSecond(3, 0))
	assert.Equal(t, uint64(0), combinatorics.StirlingSecond(2, 3))
	assert.Equal(t, uint64(1), combinatorics.StirlingSecond(4, 4))

	for n, w := range []uint64{1, 1, 2, 5, 14, 42, 132} {
		assert.Equal(t, w, combinatorics.Catalan(uint64(n)), "Catalan(%d)", n)
	}
	for n, w := range []uint64{1, 1, 2, 5, 15, 52, 203} {
		assert.Equal(t, w, combinatorics.Bell(uint64(n)), "Bell(%d)", n)
	}
	for n, w := range []uint64{0, 1, 1, 2, 3, 5, 8, 13} {
		assert.Equal(t, w, combinatorics.Fibonacci(uint64(n)), "F(%d)", n)
	}
	assert.Equal(t, uint64(12200160415121876738), combinatorics.Fibonacci(93))
	for n, w := range []uint64{2, 1, 3, 4, 7, 11, 18} {
		assert.Equal(t, w, combinatorics.Lucas(uint64(n)), "L(%d)", n)
	}

	assert.Equal(t, uint64(15), combinatorics.Triangular(5))
	assert.Equal(t, uint64(21), combinatorics.Triangular(6))
	assert.Equal(t, uint64(35), combinatorics.Pentagonal(5))
	assert.Equal(t, uint64(45), combinatorics.Hexagonal(5))
	assert.Zero(t, combinatorics.Pentagonal(0))
}

func TestCountingDP(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(8), combinatorics.WaysToClimbStairs(5, 1, 2))
	assert.Equal(t, uint64(1), combinatorics.WaysToClimbStairs(0, 1, 2))
	assert.Equal(t, uint64(0), combinatorics.WaysToClimbStairs(3))

	assert.Equal(t, uint64(4), combinatorics.WaysToMakeChange(5, 1, 2, 5))
	assert.Equal(t, uint64(1), combinatorics.WaysToMakeChange(0, 1))
	assert.Equal(t, uint64(0), combinatorics.WaysToMakeChange(3, 0, 2))

	for n, w := range []uint64{1, 1, 2, 3, 5, 7, 11, 15, 22} {
		assert.Equal(t, w, combinatorics.Partitions(uint64(n)), "p(%d)", n)
	}
	assert.Equal(t, uint64(2), combinatorics.PartitionsIntoK(5, 2))
	assert.Equal(t, uint64(2), combinatorics.PartitionsIntoK(5, 3))
	assert.Equal(t, uint64(0), combinatorics.PartitionsIntoK(3, 5))
	assert.Equal(t, uint64(1), combinatorics.PartitionsIntoK(7, 7))

	assert.Equal(t, []uint64{1, 4, 6, 4, 1}, combinatorics.PascalRow(4))
	assert.Equal(t, []uint64{1}, combinatorics.PascalRow(0))
}

// TestPascalMatchesCombination checks row entries against C(n, k).
func TestPascalMatchesCombination(t *testing.T) {
	t.Parallel()

	for n := uint64(0); n <= 30; n++ {
		row := combinatorics.PascalRow(n)
		for k := uint64(0); k <= n; k++ {
			assert.Equal(t, mustU(t)(combinatorics.Combination(n, k)), row[k])
		}
	}
}

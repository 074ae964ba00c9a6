// SPDX-License-Identifier: MIT

package combinatorics_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/imeth/combinatorics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticProgression(t *testing.T) {
	t.Parallel()

	seq, err := combinatorics.ArithmeticSequence(2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2, 5, 8, 11, 14}, seq)

	seq, err = combinatorics.ArithmeticSequence(2, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, seq)

	_, err = combinatorics.ArithmeticSequence(math.MaxUint64-1, 2, 2)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)

	assert.Equal(t, uint64(14), mustU(t)(combinatorics.NthTermArithmetic(2, 3, 5)))
	_, err = combinatorics.NthTermArithmetic(2, 3, 0)
	require.ErrorIs(t, err, combinatorics.ErrInvalidArgument)

	assert.Equal(t, uint64(5050), mustU(t)(combinatorics.ArithmeticSum(1, 100, 100)))
	assert.Equal(t, uint64(40), mustU(t)(combinatorics.ArithmeticSum(2, 14, 5)))
	// first+last overflows, the sum itself does not.
	assert.Equal(t, uint64(math.MaxUint64), mustU(t)(combinatorics.ArithmeticSum(math.MaxUint64, math.MaxUint64, 1)))
	_, err = combinatorics.ArithmeticSum(math.MaxUint64, math.MaxUint64, 3)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)
}

func TestGeometricProgression(t *testing.T) {
	t.Parallel()

	seq, err := combinatorics.GeometricSequence(3, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 6, 12, 24, 48}, seq)

	seq, err = combinatorics.GeometricSequence(1, 2, 64)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, seq[63])
	_, err = combinatorics.GeometricSequence(1, 2, 65)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)

	assert.Equal(t, uint64(48), mustU(t)(combinatorics.NthTermGeometric(3, 2, 5)))
	assert.Equal(t, uint64(3), mustU(t)(combinatorics.NthTermGeometric(3, 2, 1)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.NthTermGeometric(0, 2, 1000)))
	_, err = combinatorics.NthTermGeometric(3, 2, 0)
	require.ErrorIs(t, err, combinatorics.ErrInvalidArgument)
	_, err = combinatorics.NthTermGeometric(3, 2, 64)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)

	assert.Equal(t, uint64(93), mustU(t)(combinatorics.GeometricSum(3, 2, 5)))
	assert.Equal(t, uint64(15), mustU(t)(combinatorics.GeometricSum(3, 1, 5)))
	assert.Equal(t, uint64(3), mustU(t)(combinatorics.GeometricSum(3, 0, 5)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.GeometricSum(3, 2, 0)))
	assert.Equal(t, uint64(math.MaxUint64), mustU(t)(combinatorics.GeometricSum(1, 2, 64)))
	_, err = combinatorics.GeometricSum(1, 2, 65)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)
}

func TestGraphCounting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(10), mustU(t)(combinatorics.CompleteGraphEdges(5)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.CompleteGraphEdges(1)))
	assert.Equal(t, uint64(4), combinatorics.TreeEdges(5))
	assert.Equal(t, uint64(0), combinatorics.TreeEdges(0))
	assert.Equal(t, uint64(12), mustU(t)(combinatorics.BipartiteCompleteEdges(3, 4)))
	_, err := combinatorics.BipartiteCompleteEdges(1<<32, 1<<32)
	require.ErrorIs(t, err, combinatorics.ErrOverflow)

	assert.Equal(t, uint64(6), mustU(t)(combinatorics.HandshakeEdges(3, 3, 3, 3)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.HandshakeEdges()))
	_, err = combinatorics.HandshakeEdges(1, 2)
	require.ErrorIs(t, err, combinatorics.ErrInvalidArgument)

	assert.True(t, combinatorics.IsGraphical(3, 3, 3, 3)) // K4
	assert.True(t, combinatorics.IsGraphical(2, 2, 2))    // triangle
	assert.True(t, combinatorics.IsGraphical())
	assert.True(t, combinatorics.IsGraphical(0, 0))
	assert.False(t, combinatorics.IsGraphical(3, 3, 3)) // degree 3 needs 4 vertices
	assert.False(t, combinatorics.IsGraphical(3, 3, 1, 1))
	assert.False(t, combinatorics.IsGraphical(1))

	assert.Equal(t, uint64(24), mustU(t)(combinatorics.ChromaticComplete(3, 4)))
	assert.Equal(t, uint64(0), mustU(t)(combinatorics.ChromaticComplete(4, 3)))
	assert.Equal(t, uint64(1), mustU(t)(combinatorics.ChromaticComplete(0, 0)))
}

// SPDX-License-Identifier: MIT

package combinatorics

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const opGraph = "Graph"

// CompleteGraphEdges returns C(v, 2), the edge count of the complete graph Kv.
func CompleteGraphEdges(vertices uint64) (uint64, error) {
	return Combination(vertices, 2)
}

// TreeEdges returns v-1, the edge count of any tree on v vertices; 0 for v == 0.
func TreeEdges(vertices uint64) uint64 {
	if vertices == 0 {
		return 0
	}

	return vertices - 1
}

// BipartiteCompleteEdges returns a·b, the edge count of K(a,b).
// Errors: ErrOverflow.
func BipartiteCompleteEdges(a, b uint64) (uint64, error) {
	e, ok := mul(a, b)
	if !ok {
		return 0, combErrorf(opGraph, ErrOverflow)
	}

	return e, nil
}

// HandshakeEdges returns the edge count Σdeg/2 implied by a degree sequence.
// Errors: ErrInvalidArgument when the degree sum is odd; ErrOverflow.
func HandshakeEdges(degrees ...uint64) (uint64, error) {
	var sum uint64
	var ok bool
	for _, d := range degrees {
		if sum, ok = add(sum, d); !ok {
			return 0, combErrorf(opGraph, ErrOverflow)
		}
	}
	if sum%2 != 0 {
		return 0, combErrorf(opGraph, fmt.Errorf("odd degree sum %d: %w", sum, ErrInvalidArgument))
	}

	return sum / 2, nil
}

// IsGraphical reports whether degrees is the degree sequence of some simple
// graph (Havel–Hakimi). The empty sequence is graphical.
func IsGraphical(degrees ...uint64) bool {
	d := slices.Clone(degrees)
	for {
		slices.SortFunc(d, func(a, b uint64) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		})
		if len(d) == 0 || d[0] == 0 {
			return true
		}
		v := d[0]
		d = d[1:]
		if v > uint64(len(d)) {
			return false
		}
		for i := uint64(0); i < v; i++ {
			if d[i] == 0 {
				return false
			}
			d[i]--
		}
	}
}

// ChromaticComplete evaluates the chromatic polynomial of Kn at k colours:
// k·(k-1)···(k-n+1), the proper colourings of Kn; 0 when k < n.
// Errors: ErrOverflow.
func ChromaticComplete(n, k uint64) (uint64, error) {
	if k < n {
		return 0, nil
	}

	return Permutation(k, n)
}

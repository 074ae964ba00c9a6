// SPDX-License-Identifier: MIT

package probability

import "math"

// Die is a fair die whose faces are numbered 1..Faces.
// A die with Faces <= 0 has no outcomes and every probability is 0.
type Die struct {
	Faces int
}

// D6 is the standard six-sided die.
var D6 = Die{Faces: 6}

// count returns the faces in [lo, hi] clipped to the die.
func (d Die) count(lo, hi int) int {
	lo = max(lo, 1)
	hi = min(hi, d.Faces)
	if hi < lo {
		return 0
	}

	return hi - lo + 1
}

func (d Die) fraction(faces int) float64 {
	if d.Faces <= 0 {
		return 0
	}

	return float64(faces) / float64(d.Faces)
}

// Number returns P(roll == face).
func (d Die) Number(face int) float64 { return d.fraction(d.count(face, face)) }

// Even returns P(roll is even).
func (d Die) Even() float64 { return d.fraction(max(d.Faces, 0) / 2) }

// Odd returns P(roll is odd).
func (d Die) Odd() float64 { return d.fraction(max(d.Faces, 0) - max(d.Faces, 0)/2) }

// Greater returns P(roll > v).
func (d Die) Greater(v int) float64 {
	if v >= d.Faces {
		return 0
	}

	return d.fraction(d.count(v+1, d.Faces))
}

// Less returns P(roll < v).
func (d Die) Less(v int) float64 {
	if v <= 1 {
		return 0
	}

	return d.fraction(d.count(1, v-1))
}

// Between returns P(lo <= roll <= hi).
func (d Die) Between(lo, hi int) float64 { return d.fraction(d.count(lo, hi)) }

// SumOfTwo returns P(two rolls sum to target).
func (d Die) SumOfTwo(target int) float64 { return d.SumOfN(2, target) }

// SumOfN returns P(n rolls sum to target), counting outcomes by dynamic
// programming over partial sums. It is 0 for n <= 0.
func (d Die) SumOfN(n, target int) float64 {
	if n <= 0 || d.Faces <= 0 || target < n || target > n*d.Faces {
		return 0
	}

	// ways[s] is the number of outcomes of the dice rolled so far summing to s;
	// counts are kept in float64 since they reach Faces^n.
	ways := make([]float64, target+1)
	next := make([]float64, target+1)
	ways[0] = 1
	for i := 0; i < n; i++ {
		clear(next)
		for s, w := range ways {
			if w == 0 {
				continue
			}
			for f := 1; f <= d.Faces && s+f <= target; f++ {
				next[s+f] += w
			}
		}
		ways, next = next, ways
	}

	return ways[target] / math.Pow(float64(d.Faces), float64(n))
}

// AllSame returns P(n rolls all show face): (1/Faces)^n.
// It is 0 when face is not on the die or n <= 0.
func (d Die) AllSame(n, face int) float64 {
	if n <= 0 {
		return 0
	}

	return math.Pow(d.Number(face), float64(n))
}

// AllDifferent returns P(n rolls show pairwise distinct faces).
func (d Die) AllDifferent(n int) float64 {
	if n <= 0 || n > d.Faces {
		return 0
	}
	p := 1.0
	for i := 0; i < n; i++ {
		p *= float64(d.Faces-i) / float64(d.Faces)
	}

	return p
}

// SPDX-License-Identifier: MIT

package probability

import (
	"math"

	"github.com/katalvlaran/imeth/combinatorics"
)

// Binomial returns P(X = k) for X ~ Bin(n, p): C(n,k)·p^k·(1-p)^(n-k).
// It is 0 when k > n.
func Binomial(n, k uint64, p float64) float64 {
	if k > n {
		return 0
	}

	return combinatorics.CombinationFloat(n, k) *
		math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}

// Geometric returns the probability that the first success happens on trial
// k (1-based): (1-p)^(k-1)·p. It is 0 for k == 0.
func Geometric(k uint64, p float64) float64 {
	if k == 0 {
		return 0
	}

	return math.Pow(1-p, float64(k-1)) * p
}

// Hypergeometric returns the probability of exactly k successes in draws
// taken without replacement from a population holding successes marked items.
func Hypergeometric(population, successes, draws, k uint64) float64 {
	if successes > population || draws > population || k > successes || k > draws {
		return 0
	}
	if draws-k > population-successes {
		return 0
	}

	return combinatorics.CombinationFloat(successes, k) *
		combinatorics.CombinationFloat(population-successes, draws-k) /
		combinatorics.CombinationFloat(population, draws)
}

// Complement returns P(not A).
func Complement(p float64) float64 { return 1 - p }

// Union returns P(A or B) = P(A) + P(B) - P(A and B).
func Union(pA, pB, pBoth float64) float64 { return pA + pB - pBoth }

// Intersection returns P(A and B) = P(A)·P(B|A).
// For independent events pass P(B) as pBGivenA.
func Intersection(pA, pBGivenA float64) float64 { return pA * pBGivenA }

// Conditional returns P(A|B) = P(A and B)/P(B), or 0 when P(B) is 0.
func Conditional(pBoth, pB float64) float64 {
	if pB == 0 {
		return 0
	}

	return pBoth / pB
}

// Total applies the law of total probability: Σ P(A|Bi)·P(Bi).
// Extra entries in the longer slice are ignored.
func Total(conditionals, priors []float64) float64 {
	n := min(len(conditionals), len(priors))
	var sum float64
	for i := 0; i < n; i++ {
		sum += conditionals[i] * priors[i]
	}

	return sum
}

// Bayes returns P(A|B) = P(B|A)·P(A)/P(B), or 0 when P(B) is 0.
func Bayes(pBGivenA, pA, pB float64) float64 {
	if pB == 0 {
		return 0
	}

	return pBGivenA * pA / pB
}

// ExpectedValue returns Σ xi·pi over the paired prefix of values and probs.
func ExpectedValue(values, probs []float64) float64 {
	return Total(values, probs)
}

// Variance returns Σ pi·(xi - E[X])² over the paired prefix of values and probs.
func Variance(values, probs []float64) float64 {
	mean := ExpectedValue(values, probs)
	n := min(len(values), len(probs))
	var sum float64
	for i := 0; i < n; i++ {
		d := values[i] - mean
		sum += probs[i] * d * d
	}

	return sum
}

// StandardDeviation returns √Variance(values, probs).
func StandardDeviation(values, probs []float64) float64 {
	return math.Sqrt(Variance(values, probs))
}

// SPDX-License-Identifier: MIT

package probability

import "math"

// Side is one face of a coin.
type Side byte

// Coin sides.
const (
	Heads Side = 'H'
	Tails Side = 'T'
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Heads:
		return "heads"
	case Tails:
		return "tails"
	default:
		return "Side(" + string(rune(s)) + ")"
	}
}

// Coin is a coin landing heads with probability P.
type Coin struct {
	P float64
}

// FairCoin lands on either side with probability 0.5.
var FairCoin = Coin{P: 0.5}

// Of returns the probability of one toss landing on side; 0 for an unknown side.
func (c Coin) Of(side Side) float64 {
	switch side {
	case Heads:
		return c.P
	case Tails:
		return 1 - c.P
	default:
		return 0
	}
}

// Consecutive returns P(times tosses in a row all land on side).
func (c Coin) Consecutive(side Side, times uint64) float64 {
	return math.Pow(c.Of(side), float64(times))
}

// AtLeastOne returns P(side shows at least once in tosses tosses).
func (c Coin) AtLeastOne(side Side, tosses uint64) float64 {
	return 1 - math.Pow(1-c.Of(side), float64(tosses))
}

// ExactlyK returns P(exactly k heads in n tosses).
func (c Coin) ExactlyK(n, k uint64) float64 { return Binomial(n, k, c.P) }

// MoreThanK returns P(more than k heads in n tosses).
func (c Coin) MoreThanK(n, k uint64) float64 {
	if k >= n {
		return 0
	}
	var sum float64
	for i := k + 1; i <= n; i++ {
		sum += Binomial(n, i, c.P)
	}

	return sum
}

// Alternating returns P(n tosses strictly alternate, HTHT... or THTH...).
// A single toss always alternates; zero tosses never do.
func (c Coin) Alternating(n uint64) float64 {
	if n == 0 {
		return 0
	}
	long, short := float64((n+1)/2), float64(n/2)
	h, t := c.P, 1-c.P

	return math.Pow(h, long)*math.Pow(t, short) + math.Pow(t, long)*math.Pow(h, short)
}

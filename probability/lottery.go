// SPDX-License-Identifier: MIT

package probability

// Lottery draws Drawn distinct numbers out of Total; a ticket picks Drawn
// numbers as well.
type Lottery struct {
	Total, Drawn uint64
}

// MatchAll returns the jackpot probability 1/C(Total, Drawn).
func (l Lottery) MatchAll() float64 { return l.MatchK(l.Drawn) }

// MatchK returns P(exactly k of the ticket's numbers are drawn).
func (l Lottery) MatchK(k uint64) float64 {
	if l.Drawn > l.Total || k > l.Drawn {
		return 0
	}

	return Hypergeometric(l.Total, l.Drawn, l.Drawn, k)
}

// MatchAtLeastK returns P(k or more of the ticket's numbers are drawn).
func (l Lottery) MatchAtLeastK(k uint64) float64 {
	if l.Drawn > l.Total {
		return 0
	}
	var sum float64
	for i := k; i <= l.Drawn; i++ {
		sum += l.MatchK(i)
	}

	return sum
}

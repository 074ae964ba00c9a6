// SPDX-License-Identifier: MIT

package probability

// Color is a marble colour.
type Color byte

// Marble colours.
const (
	Red   Color = 'R'
	White Color = 'W'
	Blue  Color = 'B'
)

// MarbleBag holds Red, White and Blue marbles drawn uniformly at random.
// Unknown colours have probability 0.
type MarbleBag struct {
	Red, White, Blue uint64
}

// Total returns the number of marbles in the bag.
func (b MarbleBag) Total() uint64 { return b.Red + b.White + b.Blue }

// split returns the marbles of color c and of every other colour; ok is false
// for an unknown colour.
func (b MarbleBag) split(c Color) (same, other uint64, ok bool) {
	switch c {
	case Red:
		return b.Red, b.White + b.Blue, true
	case White:
		return b.White, b.Red + b.Blue, true
	case Blue:
		return b.Blue, b.Red + b.White, true
	default:
		return 0, 0, false
	}
}

// Single returns P(one draw is c).
func (b MarbleBag) Single(c Color) float64 {
	same, _, ok := b.split(c)
	t := b.Total()
	if !ok || t == 0 {
		return 0
	}

	return float64(same) / float64(t)
}

// TwoConsecutive returns P(first then second) drawing twice without replacement.
func (b MarbleBag) TwoConsecutive(first, second Color) float64 {
	t := b.Total()
	if t < 2 {
		return 0
	}
	n1, _, ok := b.split(first)
	if !ok {
		return 0
	}
	n2, _, ok := b.split(second)
	if !ok {
		return 0
	}
	if first == second {
		if n1 == 0 {
			return 0
		}
		n2 = n1 - 1
	}

	return float64(n1) / float64(t) * float64(n2) / float64(t-1)
}

// TwoWithReplacement returns P(first then second) when the first marble is
// put back before the second draw.
func (b MarbleBag) TwoWithReplacement(first, second Color) float64 {
	return b.Single(first) * b.Single(second)
}

// AllSame returns P(draws marbles drawn without replacement are all c).
// Zero draws are trivially all the same colour.
func (b MarbleBag) AllSame(c Color, draws uint64) float64 {
	same, _, ok := b.split(c)
	if !ok || draws > same {
		return 0
	}
	t := b.Total()
	p := 1.0
	for i := uint64(0); i < draws; i++ {
		p *= float64(same-i) / float64(t-i)
	}

	return p
}

// AtLeastOne returns P(at least one of draws marbles drawn without
// replacement is c). It is 1 once the other colours cannot fill every draw.
func (b MarbleBag) AtLeastOne(c Color, draws uint64) float64 {
	same, other, ok := b.split(c)
	if !ok || same == 0 {
		return 0
	}
	if draws > other {
		return 1
	}
	t := b.Total()
	none := 1.0
	for i := uint64(0); i < draws; i++ {
		none *= float64(other-i) / float64(t-i)
	}

	return 1 - none
}

// ExactlyK returns P(exactly k of draws marbles drawn without replacement are c).
func (b MarbleBag) ExactlyK(c Color, k, draws uint64) float64 {
	same, _, ok := b.split(c)
	if !ok {
		return 0
	}

	return Hypergeometric(b.Total(), same, draws, k)
}

// SPDX-License-Identifier: MIT

package probability

import "github.com/katalvlaran/imeth/combinatorics"

// Suit is a card suit.
type Suit byte

// Card suits.
const (
	Hearts   Suit = 'H'
	Diamonds Suit = 'D'
	Clubs    Suit = 'C'
	Spades   Suit = 'S'
)

// Deck is a standard 52-card deck: four suits of 13 ranks, Ace (1) through
// King (13), with Jack, Queen and King as face cards.
type Deck struct{}

// Standard deck shape.
const (
	DeckSize     = 52
	RanksPerSuit = 13
	SuitCount    = 4
	faceRanks    = 3
)

// StandardDeck is the only Deck there is; the zero value works equally well.
var StandardDeck Deck

func (Deck) fraction(cards int) float64 { return float64(cards) / DeckSize }

// Suit returns P(one card is of suit s); 0 for an unknown suit.
func (d Deck) Suit(s Suit) float64 {
	switch s {
	case Hearts, Diamonds, Clubs, Spades:
		return d.fraction(RanksPerSuit)
	default:
		return 0
	}
}

// Red returns P(one card is a heart or a diamond).
func (d Deck) Red() float64 { return d.fraction(2 * RanksPerSuit) }

// Black returns P(one card is a club or a spade).
func (d Deck) Black() float64 { return d.fraction(2 * RanksPerSuit) }

// FaceCard returns P(one card is a Jack, Queen or King).
func (d Deck) FaceCard() float64 { return d.fraction(faceRanks * SuitCount) }

// NumberCard returns P(one card is ranked 2 through 10).
func (d Deck) NumberCard() float64 { return d.fraction((RanksPerSuit - faceRanks - 1) * SuitCount) }

// Ace returns P(one card is an ace).
func (d Deck) Ace() float64 { return d.fraction(SuitCount) }

// SpecificCard returns P(one card is a given card of rank 1..13); 0 otherwise.
func (d Deck) SpecificCard(rank int) float64 {
	if rank < 1 || rank > RanksPerSuit {
		return 0
	}

	return d.fraction(1)
}

// TwoSameSuit returns P(two cards dealt share a suit).
func (d Deck) TwoSameSuit() float64 {
	return d.fraction(RanksPerSuit) * (RanksPerSuit - 1) / (DeckSize - 1) * SuitCount
}

// Pair returns P(two cards dealt share a rank).
func (d Deck) Pair() float64 {
	return d.fraction(SuitCount) * (SuitCount - 1) / (DeckSize - 1) * RanksPerSuit
}

// StraightFlush returns P(a hand of cards cards is a run of consecutive
// ranks in one suit), with aces low only. It is 0 for an empty hand or one
// longer than a suit.
func (d Deck) StraightFlush(cards uint64) float64 {
	if cards == 0 || cards > RanksPerSuit {
		return 0
	}
	runs := float64((RanksPerSuit - cards + 1) * SuitCount)

	return runs / combinatorics.CombinationFloat(DeckSize, cards)
}

// SPDX-License-Identifier: MIT

// Package probability provides closed-form probabilities for classic
// discrete experiments.
//
// Distribution helpers (Binomial, Geometric, Hypergeometric) and the event
// algebra (Complement, Union, Conditional, Bayes, ...) are plain functions
// over float64. Small value types model textbook setups:
//
//   - Die: a fair die with any number of faces (D6 is the usual cube).
//   - Coin: a coin with a fixed probability of heads (FairCoin is 0.5).
//   - Lottery: drawing Drawn numbers out of Total without replacement.
//   - MarbleBag: marbles of three colours drawn with or without replacement.
//   - Deck: the standard 52-card deck.
//   - Spinner: a wheel of equal sections labelled with integers.
//
// Impossible events (a face outside the die, more matches than drawn numbers,
// and so on) have probability 0 rather than an error. Probabilities passed in
// are not range-checked.
package probability

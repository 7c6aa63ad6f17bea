package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// NewDeck builds a standard 52-card deck in suit-major order
// (all hearts Ace to King, then clubs, diamonds, spades). Every card is face-down.
func NewDeck() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle randomizes the order of cards in place using Fisher-Yates.
// The result is deterministic for a given rng state.
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// NewShuffledDeck returns a standard deck shuffled with rng
func NewShuffledDeck(rng *rand.Rand) []Card {
	cards := NewDeck()
	Shuffle(cards, rng)
	return cards
}

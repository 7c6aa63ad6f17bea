// Package rules holds the placement predicates of Klondike. Every function is
// pure: it reads the cards and piles it is given and never mutates them.
package rules

import (
	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/pile"
)

// SameColor returns true when both suits are red or both are black
func SameColor(a, b deck.Suit) bool {
	return a.Color() == b.Color()
}

// CanPlaceOnTableau reports whether a block whose lowest card is moving may be
// placed on target. An empty column accepts only a King; otherwise the target's
// top card must be one rank higher and of the opposite colour.
func CanPlaceOnTableau(moving deck.Card, target *pile.Pile) bool {
	top, ok := target.Top()
	if !ok {
		return moving.Rank == deck.King
	}
	return top.Rank == moving.Rank+1 && !SameColor(top.Suit, moving.Suit)
}

// CanPlaceOnFoundation reports whether card continues the foundation's
// sequence: an Ace on an empty foundation, otherwise exactly one rank above
// the current top. Suit is not checked.
func CanPlaceOnFoundation(card deck.Card, foundation *pile.Pile) bool {
	top, ok := foundation.Top()
	if !ok {
		return card.Rank == deck.Ace
	}
	return card.Rank == top.Rank+1
}

// CanPlaceOnFoundationSlot is CanPlaceOnFoundation for the foundation that
// belongs to slot, additionally requiring the card to be of that suit.
func CanPlaceOnFoundationSlot(card deck.Card, foundation *pile.Pile, slot deck.Suit) bool {
	return card.Suit == slot && CanPlaceOnFoundation(card, foundation)
}

// IsValidFoundation reports whether cards form a legal foundation for slot:
// empty, or Ace upward by one with no gaps, all face-up. When strict is set
// every card must also be of the slot's suit.
func IsValidFoundation(cards []deck.Card, slot deck.Suit, strict bool) bool {
	for i, c := range cards {
		if !c.FaceUp || c.Rank != deck.Rank(i+1) {
			return false
		}
		if strict && c.Suit != slot {
			return false
		}
	}
	return true
}

// IsValidTableau reports whether face-down cards form a prefix of cards, i.e.
// no face-up card sits below a face-down one.
func IsValidTableau(cards []deck.Card) bool {
	seenUp := false
	for _, c := range cards {
		if c.FaceUp {
			seenUp = true
		} else if seenUp {
			return false
		}
	}
	return true
}

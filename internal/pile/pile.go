// Package pile provides the ordered card sequence shared by the stock, the
// waste, the tableau columns and the foundations.
//
// Cards are ordered bottom-to-top: index 0 is the bottom card and the last
// element is the top, the most recently placed card.
package pile

import (
	"strings"

	"github.com/lox/klondike/internal/deck"
)

// Pile is an ordered, mutable sequence of cards. The zero value is an empty pile.
type Pile struct {
	cards []deck.Card
}

// New creates a pile holding cards in bottom-to-top order. The slice is copied.
func New(cards ...deck.Card) *Pile {
	p := &Pile{cards: make([]deck.Card, len(cards))}
	copy(p.cards, cards)
	return p
}

// Len returns the number of cards in the pile
func (p *Pile) Len() int {
	return len(p.cards)
}

// IsEmpty returns true if the pile has no cards
func (p *Pile) IsEmpty() bool {
	return len(p.cards) == 0
}

// Cards returns a copy of the pile's cards, bottom first
func (p *Pile) Cards() []deck.Card {
	out := make([]deck.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// At returns the card at position i counted from the bottom
func (p *Pile) At(i int) (deck.Card, bool) {
	if i < 0 || i >= len(p.cards) {
		return deck.Card{}, false
	}
	return p.cards[i], true
}

// Top returns the top card without removing it. ok is false on an empty pile.
func (p *Pile) Top() (card deck.Card, ok bool) {
	if len(p.cards) == 0 {
		return deck.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Push places card on top of the pile
func (p *Pile) Push(card deck.Card) {
	p.cards = append(p.cards, card)
}

// PushAll places cards on top of the pile, the first card of the slice lowest
func (p *Pile) PushAll(cards []deck.Card) {
	p.cards = append(p.cards, cards...)
}

// Pop removes and returns the top card. ok is false on an empty pile.
func (p *Pile) Pop() (card deck.Card, ok bool) {
	if len(p.cards) == 0 {
		return deck.Card{}, false
	}
	card = p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return card, true
}

// runStart returns the index of the lowest card of the face-up run
func (p *Pile) runStart() int {
	i := len(p.cards)
	for i > 0 && p.cards[i-1].FaceUp {
		i--
	}
	return i
}

// FaceUpRun returns the maximal contiguous run of face-up cards ending at the
// top, lowest card first. It is empty when the pile is empty or its top card
// is face-down.
func (p *Pile) FaceUpRun() []deck.Card {
	start := p.runStart()
	run := make([]deck.Card, len(p.cards)-start)
	copy(run, p.cards[start:])
	return run
}

// RemoveFaceUpRun removes the face-up run from the pile and returns it,
// lowest card first.
func (p *Pile) RemoveFaceUpRun() []deck.Card {
	run := p.FaceUpRun()
	p.cards = p.cards[:len(p.cards)-len(run)]
	return run
}

// FlipTop turns the top card face-up. It does nothing on an empty pile.
func (p *Pile) FlipTop() {
	if len(p.cards) == 0 {
		return
	}
	p.cards[len(p.cards)-1].FaceUp = true
}

// AppendAll moves every card of other onto this pile, preserving their
// order, and leaves other empty.
func (p *Pile) AppendAll(other *Pile) {
	if other == p {
		return
	}
	p.cards = append(p.cards, other.cards...)
	other.cards = nil
}

// TurnOver reverses the pile and turns every card face-down, the way a
// player picks up the waste and flips it to form a new stock.
func (p *Pile) TurnOver() {
	for i, j := 0, len(p.cards)-1; i < j; i, j = i+1, j-1 {
		p.cards[i], p.cards[j] = p.cards[j], p.cards[i]
	}
	for i := range p.cards {
		p.cards[i].FaceUp = false
	}
}

// Clear removes every card
func (p *Pile) Clear() {
	p.cards = nil
}

// String renders the pile bottom-to-top, face-down cards as "##"
func (p *Pile) String() string {
	parts := make([]string, len(p.cards))
	for i, c := range p.cards {
		if c.FaceUp {
			parts[i] = c.String()
		} else {
			parts[i] = "##"
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

package solitaire

import (
	"fmt"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/rules"
)

// CardCount returns the number of cards across every pile
func (g *Game) CardCount() int {
	n := g.stock.Len() + g.waste.Len()
	for i := range g.tableau {
		n += g.tableau[i].Len()
	}
	for i := range g.foundations {
		n += g.foundations[i].Len()
	}
	return n
}

// Validate checks the board invariants: all 52 cards present exactly once,
// stock face-down, waste face-up, tableau face-down cards forming a prefix,
// foundations built up from the Ace, and a selection that points at a real
// pile. It returns an error wrapping ErrInvalidLayout describing the first
// violation.
func (g *Game) Validate() error {
	if n := g.CardCount(); n != deck.Size {
		return fmt.Errorf("%w: %d cards on the board, want %d", ErrInvalidLayout, n, deck.Size)
	}

	seen := make(map[deck.Card]string, deck.Size)
	check := func(where string, cards []deck.Card) error {
		for _, c := range cards {
			if !c.Suit.Valid() || !c.Rank.Valid() {
				return fmt.Errorf("%w: bad card %+v in %s", ErrInvalidLayout, c, where)
			}
			key := deck.NewCard(c.Suit, c.Rank)
			if prev, dup := seen[key]; dup {
				return fmt.Errorf("%w: %s appears in %s and %s", ErrInvalidLayout, key, prev, where)
			}
			seen[key] = where
		}
		return nil
	}

	stock := g.stock.Cards()
	if err := check("stock", stock); err != nil {
		return err
	}
	for _, c := range stock {
		if c.FaceUp {
			return fmt.Errorf("%w: %s is face-up in the stock", ErrInvalidLayout, c)
		}
	}

	waste := g.waste.Cards()
	if err := check("waste", waste); err != nil {
		return err
	}
	for _, c := range waste {
		if !c.FaceUp {
			return fmt.Errorf("%w: %s is face-down in the waste", ErrInvalidLayout, c)
		}
	}

	for i := range g.tableau {
		where := fmt.Sprintf("column %d", i+1)
		cards := g.tableau[i].Cards()
		if err := check(where, cards); err != nil {
			return err
		}
		if !rules.IsValidTableau(cards) {
			return fmt.Errorf("%w: face-up card below a face-down card in %s", ErrInvalidLayout, where)
		}
	}

	for i := range g.foundations {
		slot := deck.Suits[i]
		where := fmt.Sprintf("%s foundation", slot.Letter())
		cards := g.foundations[i].Cards()
		if err := check(where, cards); err != nil {
			return err
		}
		if !rules.IsValidFoundation(cards, slot, g.config.StrictFoundations) {
			return fmt.Errorf("%w: %s is out of sequence", ErrInvalidLayout, where)
		}
	}

	if idx, ok := g.selection.Tableau(); ok && (idx < 0 || idx >= TableauCount) {
		return fmt.Errorf("%w: selection points at column %d", ErrInvalidLayout, idx+1)
	}
	return nil
}

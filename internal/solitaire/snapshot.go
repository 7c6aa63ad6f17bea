package solitaire

import "github.com/lox/klondike/internal/deck"

// Snapshot is a read-only view of the board for display adapters. Empty
// piles show up as nil tops. Face-down tableau cards are masked: only their
// position is visible, their suit and rank are zeroed.
type Snapshot struct {
	StockCount       int
	WasteCount       int
	WasteTop         *deck.Card
	Foundations      [FoundationCount]*deck.Card
	FoundationCounts [FoundationCount]int
	Tableau          [TableauCount][]deck.Card
	Selection        Selection
	Won              bool
}

// StockEmpty reports whether the stock has no cards
func (s Snapshot) StockEmpty() bool {
	return s.StockCount == 0
}

// TallestColumn returns the number of cards in the longest tableau column
func (s Snapshot) TallestColumn() int {
	n := 0
	for _, col := range s.Tableau {
		n = max(n, len(col))
	}
	return n
}

// Snapshot captures the current board
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		StockCount: g.stock.Len(),
		WasteCount: g.waste.Len(),
		Selection:  g.selection,
		Won:        g.IsWon(),
	}

	if c, ok := g.waste.Top(); ok {
		s.WasteTop = &c
	}

	for i := range g.foundations {
		s.FoundationCounts[i] = g.foundations[i].Len()
		if c, ok := g.foundations[i].Top(); ok {
			s.Foundations[i] = &c
		}
	}

	for i := range g.tableau {
		cards := g.tableau[i].Cards()
		for j := range cards {
			if !cards[j].FaceUp {
				cards[j] = deck.Card{}
			}
		}
		s.Tableau[i] = cards
	}
	return s
}

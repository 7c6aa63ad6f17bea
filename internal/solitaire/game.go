package solitaire

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/pile"
)

const (
	// TableauCount is the number of tableau columns
	TableauCount = 7

	// FoundationCount is the number of foundations, one per suit
	FoundationCount = 4

	// DrawCount is the number of cards moved from stock to waste per draw
	DrawCount = 3
)

// Config holds the rule options of a game
type Config struct {
	// StrictFoundations requires a card to match the suit of the foundation
	// slot it is sent to (H, C, D, S). When false only rank sequencing is
	// checked and any suit may start any foundation.
	StrictFoundations bool
}

// Game is the complete board plus the selection cursor. It is not safe for
// concurrent use; one command is processed at a time.
type Game struct {
	config      Config
	stock       pile.Pile
	waste       pile.Pile
	tableau     [TableauCount]pile.Pile
	foundations [FoundationCount]pile.Pile
	selection   Selection
	quit        bool
}

// New shuffles a standard deck with rng and deals it
func New(rng *rand.Rand, config Config) *Game {
	g, err := NewFromDeck(deck.NewShuffledDeck(rng), config)
	if err != nil {
		// a freshly built deck always deals
		panic(err)
	}
	return g
}

// NewFromDeck deals cards without shuffling. The last card of the slice is
// the top of the stock: column 1 receives it, column 2 the next two, and so
// on. Whatever is left forms the stock. cards must be a full 52-card deck.
func NewFromDeck(cards []deck.Card, config Config) (*Game, error) {
	if len(cards) != deck.Size {
		return nil, fmt.Errorf("%w: deck has %d cards, want %d", ErrInvalidLayout, len(cards), deck.Size)
	}

	g := &Game{config: config}
	for _, c := range cards {
		c.FaceUp = false
		g.stock.Push(c)
	}

	for i := range g.tableau {
		for range i + 1 {
			c, _ := g.stock.Pop()
			g.tableau[i].Push(c)
		}
		g.tableau[i].FlipTop()
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Layout describes a board position, every pile bottom card first. Face
// state is taken as given, except waste and foundation cards which are
// always face-up and stock cards which are always face-down.
type Layout struct {
	Stock       []deck.Card
	Waste       []deck.Card
	Tableau     [TableauCount][]deck.Card
	Foundations [FoundationCount][]deck.Card
}

// NewFromLayout builds a game from an explicit position. The layout must hold
// all 52 cards exactly once and satisfy the board invariants.
func NewFromLayout(layout Layout, config Config) (*Game, error) {
	g := &Game{config: config}

	for _, c := range layout.Stock {
		c.FaceUp = false
		g.stock.Push(c)
	}
	for _, c := range layout.Waste {
		c.FaceUp = true
		g.waste.Push(c)
	}
	for i, cards := range layout.Tableau {
		g.tableau[i].PushAll(cards)
	}
	for i, cards := range layout.Foundations {
		for _, c := range cards {
			c.FaceUp = true
			g.foundations[i].Push(c)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Config returns the rule options of the game
func (g *Game) Config() Config {
	return g.config
}

// Selection returns the current cursor
func (g *Game) Selection() Selection {
	return g.selection
}

// Stock returns a copy of the stock, bottom first
func (g *Game) Stock() []deck.Card { return g.stock.Cards() }

// Waste returns a copy of the waste, bottom first
func (g *Game) Waste() []deck.Card { return g.waste.Cards() }

// Tableau returns a copy of column i, bottom first. It returns nil for an
// index out of range.
func (g *Game) Tableau(i int) []deck.Card {
	if i < 0 || i >= TableauCount {
		return nil
	}
	return g.tableau[i].Cards()
}

// Foundation returns a copy of foundation slot i, bottom first. It returns
// nil for a slot out of range.
func (g *Game) Foundation(i int) []deck.Card {
	if i < 0 || i >= FoundationCount {
		return nil
	}
	return g.foundations[i].Cards()
}

// IsWon reports whether the stock, the waste and every tableau column are
// empty, which leaves all 52 cards on the foundations.
func (g *Game) IsWon() bool {
	if !g.stock.IsEmpty() || !g.waste.IsEmpty() {
		return false
	}
	for i := range g.tableau {
		if !g.tableau[i].IsEmpty() {
			return false
		}
	}
	return true
}

// Quit ends the game. Later commands return ErrGameOver.
func (g *Game) Quit() {
	g.quit = true
	g.selection = NoSelection()
}

// HasQuit reports whether Quit was called
func (g *Game) HasQuit() bool {
	return g.quit
}

// IsOver reports whether the game was won or quit
func (g *Game) IsOver() bool {
	return g.quit || g.IsWon()
}

// Deselect clears the cursor
func (g *Game) Deselect() {
	g.selection = NoSelection()
}

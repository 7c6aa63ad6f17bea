package solitaire

import (
	"testing"

	"github.com/lox/klondike/internal/deck"
	"github.com/stretchr/testify/require"
)

// restPolicy says where cards not placed explicitly end up
type restPolicy int

const (
	restToStock restPolicy = iota
	restToFoundations
	restUnderLastColumn
)

// layoutBuilder assembles a full 52-card layout for tests
type layoutBuilder struct {
	t      *testing.T
	layout Layout
	used   map[deck.Card]bool
}

func newLayout(t *testing.T) *layoutBuilder {
	t.Helper()
	return &layoutBuilder{t: t, used: make(map[deck.Card]bool)}
}

func (b *layoutBuilder) take(s string, faceUp bool) []deck.Card {
	b.t.Helper()
	cards, err := deck.ParseCards(s)
	require.NoError(b.t, err)
	for i := range cards {
		require.False(b.t, b.used[cards[i]], "card %s used twice in layout", cards[i])
		b.used[cards[i]] = true
		cards[i].FaceUp = faceUp
	}
	return cards
}

// column sets tableau column i (0-based) to the face-down cards followed by the face-up ones
func (b *layoutBuilder) column(i int, down, up string) *layoutBuilder {
	b.t.Helper()
	b.layout.Tableau[i] = append(b.take(down, false), b.take(up, true)...)
	return b
}

func (b *layoutBuilder) waste(s string) *layoutBuilder {
	b.t.Helper()
	b.layout.Waste = b.take(s, true)
	return b
}

func (b *layoutBuilder) stock(s string) *layoutBuilder {
	b.t.Helper()
	b.layout.Stock = b.take(s, false)
	return b
}

func (b *layoutBuilder) foundation(slot int, s string) *layoutBuilder {
	b.t.Helper()
	b.layout.Foundations[slot] = b.take(s, true)
	return b
}

func (b *layoutBuilder) build(config Config, rest restPolicy) *Game {
	b.t.Helper()
	for _, c := range deck.NewDeck() {
		if b.used[c] {
			continue
		}
		switch rest {
		case restToStock:
			b.layout.Stock = append([]deck.Card{c}, b.layout.Stock...)
		case restUnderLastColumn:
			b.layout.Tableau[TableauCount-1] = append([]deck.Card{c}, b.layout.Tableau[TableauCount-1]...)
		case restToFoundations:
			slot := int(c.Suit)
			c.FaceUp = true
			b.layout.Foundations[slot] = append(b.layout.Foundations[slot], c)
		}
	}
	g, err := NewFromLayout(b.layout, config)
	require.NoError(b.t, err)
	return g
}

var strict = Config{StrictFoundations: true}

// requireInvariants fails the test if any board invariant is broken
func requireInvariants(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.Validate())
	require.Equal(t, deck.Size, g.CardCount())
}

// topOf returns the top card of cards, failing if empty
func topOf(t *testing.T, cards []deck.Card) deck.Card {
	t.Helper()
	require.NotEmpty(t, cards)
	return cards[len(cards)-1]
}

func same(t *testing.T, want string, got deck.Card) {
	t.Helper()
	w := deck.MustParseCards(want)[0]
	require.True(t, w.Same(got), "want %s, got %s", w, got)
}

package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The order matches the foundation slots.
type Suit int

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

// Suits lists every suit in foundation-slot order
var Suits = [...]Suit{Hearts, Clubs, Diamonds, Spades}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single upper-case letter used on the command line (H, C, D, S)
func (s Suit) Letter() string {
	switch s {
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Spades
}

// Color is the colour parity of a suit
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Color returns Red for hearts and diamonds, Black for clubs and spades
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s.Color() == Red
}

// Rank represents a card rank, Ace low
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the rank label ("A", "2" ... "10", "J", "Q", "K")
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Valid reports whether r is in 1..13
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card is a playing card. Suit and Rank never change after creation;
// FaceUp is flipped as the card moves between piles.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard creates a new face-down card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card name, e.g. "A♥" or "10♠"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Label returns the card name padded to a fixed width of three runes
// so that board columns line up (" A♥", "10♠").
func (c Card) Label() string {
	return fmt.Sprintf("%2s%s", c.Rank.String(), c.Suit.String())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Color returns the colour of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Same reports whether two cards have the same identity, ignoring face state
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// ParseCard parses a card such as "AH", "10s", "qd" or "Tc".
// The returned card is face-down.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]

	var suit Suit
	switch suitPart {
	case "H":
		suit = Hearts
	case "C":
		suit = Clubs
	case "D":
		suit = Diamonds
	case "S":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}

	var rank Rank
	switch rankPart {
	case "A", "1":
		rank = Ace
	case "T", "10":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		if len(rankPart) == 1 && rankPart[0] >= '2' && rankPart[0] <= '9' {
			rank = Rank(rankPart[0] - '0')
		} else {
			return Card{}, fmt.Errorf("invalid rank in %q", s)
		}
	}

	return NewCard(suit, rank), nil
}

// ParseCards parses a space separated list of cards
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for fixed inputs; it panics on error
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

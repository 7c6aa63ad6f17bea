// Package command turns a line of player input into a Command.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/klondike/internal/deck"
)

var (
	// ErrEmpty is returned for a blank line
	ErrEmpty = errors.New("empty command")

	// ErrUnknownCommand is returned for input that matches no command
	ErrUnknownCommand = errors.New("unknown command")

	// ErrPileOutOfRange is returned for a column number outside 1..7
	ErrPileOutOfRange = errors.New("pile number out of range")
)

// Kind identifies a command
type Kind int

const (
	Quit Kind = iota
	Foundation
	Draw
	Waste
	Tableau
	NewGame
	Help
)

// String returns the canonical token of the command kind
func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case Foundation:
		return "foundation"
	case Draw:
		return "draw"
	case Waste:
		return "waste"
	case Tableau:
		return "tableau"
	case NewGame:
		return "new"
	case Help:
		return "help"
	default:
		return "unknown"
	}
}

// PileCount is the number of tableau columns a player can name
const PileCount = 7

// Command is a parsed player command. Slot is the foundation slot for
// Foundation; Pile is the 0-based column for Tableau.
type Command struct {
	Kind Kind
	Slot int
	Pile int
}

// String renders the command the way a player would type it
func (c Command) String() string {
	switch c.Kind {
	case Foundation:
		if c.Slot >= 0 && c.Slot < len(deck.Suits) {
			return strings.ToLower(deck.Suits[c.Slot].Letter())
		}
		return "foundation"
	case Tableau:
		return strconv.Itoa(c.Pile + 1)
	case Quit:
		return "q"
	default:
		return c.Kind.String()
	}
}

// Entry describes one token of the vocabulary, for help text and completion
type Entry struct {
	Name        string
	Aliases     []string
	Description string
}

// Vocabulary lists the commands in the order they are shown to players
var Vocabulary = []Entry{
	{Name: "q", Aliases: []string{"quit", "exit"}, Description: "Quit"},
	{Name: "draw", Description: "Draw three cards from the stock"},
	{Name: "waste", Description: "Select the waste pile"},
	{Name: "1-7", Description: "Select a pile; the same number again deselects it"},
	{Name: "h", Description: "Move the selected card to the hearts foundation"},
	{Name: "c", Description: "Move the selected card to the clubs foundation"},
	{Name: "d", Description: "Move the selected card to the diamonds foundation"},
	{Name: "s", Description: "Move the selected card to the spades foundation"},
	{Name: "new", Description: "Deal a new game"},
	{Name: "help", Aliases: []string{"?"}, Description: "Show this help"},
}

// Tokens returns every literal token the parser accepts, for tab completion
func Tokens() []string {
	tokens := []string{"q", "quit", "exit", "h", "c", "d", "s", "draw", "waste", "new", "help", "?"}
	for i := 1; i <= PileCount; i++ {
		tokens = append(tokens, strconv.Itoa(i))
	}
	return tokens
}

// Parse reads a command from a line of input. Input is trimmed and matched
// case-insensitively. Errors mean the line should be ignored and the player
// prompted again.
func Parse(input string) (Command, error) {
	token := strings.ToLower(strings.TrimSpace(input))

	switch token {
	case "":
		return Command{}, ErrEmpty
	case "q", "quit", "exit":
		return Command{Kind: Quit}, nil
	case "h":
		return Command{Kind: Foundation, Slot: int(deck.Hearts)}, nil
	case "c":
		return Command{Kind: Foundation, Slot: int(deck.Clubs)}, nil
	case "d":
		return Command{Kind: Foundation, Slot: int(deck.Diamonds)}, nil
	case "s":
		return Command{Kind: Foundation, Slot: int(deck.Spades)}, nil
	case "draw":
		return Command{Kind: Draw}, nil
	case "waste":
		return Command{Kind: Waste}, nil
	case "new":
		return Command{Kind: NewGame}, nil
	case "help", "?":
		return Command{Kind: Help}, nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, token)
	}
	if n < 1 || n > PileCount {
		return Command{}, fmt.Errorf("%w: %d", ErrPileOutOfRange, n)
	}
	return Command{Kind: Tableau, Pile: n - 1}, nil
}

// HelpText returns the instructions shown to players, one line per command
func HelpText() []string {
	lines := make([]string, 0, len(Vocabulary))
	for _, e := range Vocabulary {
		name := e.Name
		if len(e.Aliases) > 0 {
			name += ", " + strings.Join(e.Aliases, ", ")
		}
		lines = append(lines, fmt.Sprintf("  %-14s %s", name, e.Description))
	}
	return lines
}

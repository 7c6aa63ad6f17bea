package solitaire

import (
	"fmt"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/pile"
	"github.com/lox/klondike/internal/rules"
)

// DrawResult reports what DrawThree did
type DrawResult struct {
	Drawn    int  // cards moved from stock to waste
	Recycled bool // the waste was turned over to form a new stock
}

// DrawThree moves up to three cards from the stock to the waste, one at a
// time. When the stock runs out and the waste is not empty, the waste is
// turned over as a whole to become the new stock, one card is drawn from it,
// and the draw ends there. The selection is left alone.
func (g *Game) DrawThree() (DrawResult, error) {
	var res DrawResult
	if g.IsOver() {
		return res, ErrGameOver
	}

	for range DrawCount {
		if g.stock.IsEmpty() {
			if g.waste.IsEmpty() {
				break
			}
			g.waste.TurnOver()
			g.stock.AppendAll(&g.waste)
			res.Recycled = true
			g.drawOne()
			res.Drawn++
			break
		}
		g.drawOne()
		res.Drawn++
	}
	return res, nil
}

func (g *Game) drawOne() {
	c, ok := g.stock.Pop()
	if !ok {
		return
	}
	c.FaceUp = true
	g.waste.Push(c)
}

// SelectWaste toggles the cursor between the waste and nothing. A tableau
// selection is replaced by the waste.
func (g *Game) SelectWaste() error {
	if g.IsOver() {
		return ErrGameOver
	}
	if g.selection.IsWaste() {
		g.selection = NoSelection()
	} else {
		g.selection = WasteSelection()
	}
	return nil
}

// SelectTableau is the tableau column gesture for column i (0-based):
//
//   - with nothing selected, column i becomes selected;
//   - with column i already selected, the selection is cleared;
//   - with another column j selected, j's face-up run is moved onto i when
//     legal. Either way j's new top card is turned face-up and the selection
//     is cleared;
//   - with the waste selected, the waste's top card is moved onto i when
//     legal and the selection cleared. An illegal move keeps the waste selected.
func (g *Game) SelectTableau(i int) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if i < 0 || i >= TableauCount {
		return fmt.Errorf("%w: %d", ErrInvalidPile, i+1)
	}

	switch g.selection.Kind {
	case Unselected:
		g.selection = TableauSelection(i)
		return nil

	case WasteSelected:
		return g.moveWasteToTableau(i)

	case TableauSelected:
		src := g.selection.Index
		if src == i {
			g.selection = NoSelection()
			return nil
		}
		return g.moveTableauToTableau(src, i)
	}
	return nil
}

func (g *Game) moveWasteToTableau(i int) error {
	card, ok := g.waste.Top()
	if !ok {
		return fmt.Errorf("%w: waste", ErrEmptyPile)
	}

	target := &g.tableau[i]
	if !rules.CanPlaceOnTableau(card, target) {
		return fmt.Errorf("%w: %s cannot go on column %d", ErrIllegalMove, card, i+1)
	}

	card, _ = g.waste.Pop()
	card.FaceUp = true
	target.Push(card)
	target.FlipTop()
	g.selection = NoSelection()
	return nil
}

func (g *Game) moveTableauToTableau(from, to int) error {
	source := &g.tableau[from]
	target := &g.tableau[to]

	defer func() {
		source.FlipTop()
		g.selection = NoSelection()
	}()

	run := source.FaceUpRun()
	if len(run) == 0 {
		return fmt.Errorf("%w: column %d", ErrEmptyPile, from+1)
	}
	if !rules.CanPlaceOnTableau(run[0], target) {
		return fmt.Errorf("%w: %s cannot go on column %d", ErrIllegalMove, run[0], to+1)
	}

	target.PushAll(source.RemoveFaceUpRun())
	return nil
}

// SendToFoundation moves the selected card to foundation slot (0=H, 1=C,
// 2=D, 3=S). From the waste the top card moves; from a tableau column its top
// card moves and the column's new top is turned face-up. On success the
// selection is cleared; on failure nothing changes.
func (g *Game) SendToFoundation(slot int) error {
	if g.IsOver() {
		return ErrGameOver
	}
	if slot < 0 || slot >= FoundationCount {
		return fmt.Errorf("%w: %d", ErrInvalidFoundation, slot)
	}

	var source *pile.Pile
	switch g.selection.Kind {
	case Unselected:
		return ErrNoSelection
	case WasteSelected:
		source = &g.waste
	case TableauSelected:
		source = &g.tableau[g.selection.Index]
	}

	card, ok := source.Top()
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmptyPile, g.selection)
	}
	if !card.FaceUp || !g.canPlaceOnFoundation(card, slot) {
		return fmt.Errorf("%w: %s cannot go on the %s foundation", ErrIllegalMove, card, deck.Suits[slot].Letter())
	}

	card, _ = source.Pop()
	g.foundations[slot].Push(card)
	source.FlipTop()
	g.selection = NoSelection()
	return nil
}

func (g *Game) canPlaceOnFoundation(card deck.Card, slot int) bool {
	if g.config.StrictFoundations {
		return rules.CanPlaceOnFoundationSlot(card, &g.foundations[slot], deck.Suits[slot])
	}
	return rules.CanPlaceOnFoundation(card, &g.foundations[slot])
}

// Package solitaire implements the Klondike game-state engine.
//
// The main type is Game, which owns the stock, the waste, seven tableau
// columns, four foundations and the selection cursor. Every mutation goes
// through one of its command methods:
//
//	g := solitaire.New(randutil.New(42), solitaire.Config{StrictFoundations: true})
//	_ = g.SelectTableau(6) // pick up column 7
//	_ = g.SelectTableau(2) // and drop it on column 3
//	_, _ = g.DrawThree()
//	if g.IsWon() {
//	    // ...
//	}
//
// Moves use a two-step gesture: the first command selects a source (the waste
// or a tableau column) and the second names the target (a tableau column or a
// foundation). Placement legality is delegated to package rules.
//
// Illegal moves are not fatal. Commands return an error wrapping ErrIllegalMove
// so callers can give feedback, and the selection transitions documented on
// each method still apply.
//
// # Deterministic Testing
//
// New takes an explicit *rand.Rand; NewFromDeck and NewFromLayout accept a
// pre-arranged deck or board so tests can build exact positions.
package solitaire

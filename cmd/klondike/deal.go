package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/klondike/internal/gameid"
	"github.com/lox/klondike/internal/render"
	"github.com/lox/klondike/internal/session"
	"github.com/lox/klondike/internal/solitaire"
)

// DealCmd prints the opening board of a deal without playing it
type DealCmd struct {
	Reveal bool `help:"Also list the face-down cards of each column and the stock"`
}

func (c *DealCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	sess, err := session.New(session.Options{
		Seed:              cfg.Game.Seed,
		StrictFoundations: cfg.Strict(),
	}, logger, quartz.NewReal())
	if err != nil {
		return err
	}

	return c.print(os.Stdout, render.New(os.Stdout, cfg.UI.Color), sess)
}

func (c *DealCmd) print(w io.Writer, r *render.Renderer, sess *session.Session) error {
	snap := sess.Snapshot()
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n%s\n", r.Heading(), r.Board(snap), r.Counts(snap)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Deal %s, seed %d\n", gameid.Short(sess.DealID()), sess.Seed()); err != nil {
		return err
	}
	if !c.Reveal {
		return nil
	}

	game := sess.Game()
	for i := range solitaire.TableauCount {
		if _, err := fmt.Fprintf(w, "Pile %d: %v\n", i+1, game.Tableau(i)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Stock: %v\n", game.Stock())
	return err
}

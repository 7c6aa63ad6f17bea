package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/lox/klondike/internal/config"
	"github.com/lox/klondike/internal/render"
	"github.com/lox/klondike/internal/repl"
	"github.com/lox/klondike/internal/tui"
)

// PlayCmd plays in the interface chosen by the config file (full screen
// unless ui.mode is "plain")
type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.UI.Mode == config.ModePlain {
		return run(a, playPlain)
	}
	return run(a, playTUI)
}

// PlainCmd always plays at a line prompt
type PlainCmd struct{}

func (c *PlainCmd) Run(g *Globals) error {
	a, err := newApp(g)
	if err != nil {
		return err
	}
	defer a.Close()
	return run(a, playPlain)
}

// run plays until the player quits or wins, or a signal arrives. Quitting,
// winning and being interrupted all count as a clean exit.
func run(a *app, play func(context.Context, *app) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return play(ctx, a)
	})
	g.Go(func() error {
		<-ctx.Done()
		a.logger.Debug("Shutting down", "cause", context.Cause(ctx))
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
		a.logger.Info("Interrupted")
		return nil
	}
	return err
}

func playTUI(ctx context.Context, a *app) error {
	renderer := render.New(os.Stdout, a.cfg.UI.Color)
	return tui.Run(ctx, tui.NewModel(a.sess, renderer, a.logger))
}

func playPlain(ctx context.Context, a *app) error {
	renderer := render.New(os.Stdout, a.cfg.UI.Color)
	r, err := repl.New(a.sess, renderer, a.logger, repl.Options{
		HistoryFile: a.cfg.UI.HistoryFile,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Close()
	}()
	return r.Run(ctx)
}

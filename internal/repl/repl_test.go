package repl

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/render"
	"github.com/lox/klondike/internal/session"
	"github.com/lox/klondike/internal/solitaire"
	"github.com/lox/klondike/internal/statistics"
)

type step struct {
	line string
	err  error
}

// scriptReader replays a fixed list of lines, then reports end of input
type scriptReader struct {
	steps   []step
	prompts []string
	closed  bool
}

func lines(ls ...string) *scriptReader {
	r := &scriptReader{}
	for _, l := range ls {
		r.steps = append(r.steps, step{line: l})
	}
	return r
}

func (r *scriptReader) Readline() (string, error) {
	if r.closed || len(r.steps) == 0 {
		return "", io.EOF
	}
	s := r.steps[0]
	r.steps = r.steps[1:]
	return s.line, s.err
}

func (r *scriptReader) SetPrompt(p string) { r.prompts = append(r.prompts, p) }

func (r *scriptReader) Close() error {
	r.closed = true
	return nil
}

// blockingReader never returns a line until closed
type blockingReader struct {
	done chan struct{}
}

func (r *blockingReader) Readline() (string, error) {
	<-r.done
	return "", io.EOF
}

func (r *blockingReader) SetPrompt(string) {}

func (r *blockingReader) Close() error {
	close(r.done)
	return nil
}

func newTestREPL(t *testing.T, reader LineReader) (*REPL, *session.Session, *bytes.Buffer) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	sess, err := session.New(session.Options{Seed: 7, StrictFoundations: true}, logger, quartz.NewMock(t))
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewWithReader(sess, render.New(io.Discard, "never"), logger, reader, &out)
	return r, sess, &out
}

func TestQuit(t *testing.T) {
	r, sess, out := newTestREPL(t, lines("q"))

	require.NoError(t, r.Run(context.Background()))
	assert.True(t, sess.Game().HasQuit())
	assert.Contains(t, out.String(), render.Title)
	assert.Contains(t, out.String(), "Selected pile: None")
	assert.Contains(t, out.String(), "Thanks for playing!")
}

func TestEndOfInputQuits(t *testing.T) {
	r, sess, _ := newTestREPL(t, lines())

	require.NoError(t, r.Run(context.Background()))
	assert.True(t, sess.IsOver())
}

func TestSelectionUpdatesPrompt(t *testing.T) {
	reader := lines("3", "3", "q")
	r, _, out := newTestREPL(t, reader)

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, []string{"klondike> ", "[3] klondike> ", "klondike> "}, reader.prompts)
	assert.Contains(t, out.String(), "Selected pile 3")
	assert.Contains(t, out.String(), "Selected pile: 3")
	assert.Contains(t, out.String(), "Deselected pile 3")
}

func TestIgnoredInputDoesNotRedraw(t *testing.T) {
	r, _, out := newTestREPL(t, lines("xyzzy", "", "42", "q"))

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 1, strings.Count(out.String(), "Selected pile:"))
}

func TestHelpRepeatsInstructions(t *testing.T) {
	r, _, out := newTestREPL(t, lines("help", "?", "q"))

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 3, strings.Count(out.String(), "Draw three cards from the stock"))
}

func TestInterruptKeepsPlaying(t *testing.T) {
	reader := &scriptReader{steps: []step{{err: readline.ErrInterrupt}, {line: "draw"}, {line: "q"}}}
	r, sess, out := newTestREPL(t, reader)

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Use 'q' to quit")
	assert.Contains(t, out.String(), "Drew 3 cards")
	assert.Equal(t, 3, sess.Snapshot().WasteCount)
}

func TestWinEndsLoop(t *testing.T) {
	reader := lines("waste", "h", "draw")
	r, sess, out := newTestREPL(t, reader)

	var layout solitaire.Layout
	for _, c := range deck.NewDeck() {
		if c.Suit == deck.Hearts && c.Rank == deck.King {
			layout.Waste = append(layout.Waste, c)
			continue
		}
		layout.Foundations[c.Suit] = append(layout.Foundations[c.Suit], c)
	}
	g, err := solitaire.NewFromLayout(layout, solitaire.Config{StrictFoundations: true})
	require.NoError(t, err)
	sess.Load(g)

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), session.WinMessage)
	assert.True(t, sess.Snapshot().Won)
	assert.Len(t, reader.steps, 1, "input after the win is not read")
}

func TestCancelledContextStops(t *testing.T) {
	r, _, _ := newTestREPL(t, &blockingReader{done: make(chan struct{})})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestQuitPrintsRecord(t *testing.T) {
	store, err := statistics.Open(filepath.Join(t.TempDir(), "stats.hcl"))
	require.NoError(t, err)

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	sess, err := session.New(session.Options{Seed: 7, Stats: store}, logger, quartz.NewMock(t))
	require.NoError(t, err)

	var out bytes.Buffer
	r := NewWithReader(sess, render.New(io.Discard, "never"), logger, lines("draw", "q"), &out)

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Won 0 of 1 (0%)")
	assert.Equal(t, 1, store.Record().Played)
}

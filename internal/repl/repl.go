// Package repl is the line-mode front end: it prints the board, reads one
// command per line with readline, and hands it to the session.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/lox/klondike/internal/command"
	"github.com/lox/klondike/internal/render"
	"github.com/lox/klondike/internal/session"
	"github.com/lox/klondike/internal/solitaire"
)

const prompt = "klondike> "

// LineReader is the part of *readline.Instance the loop needs
type LineReader interface {
	Readline() (string, error)
	SetPrompt(string)
	Close() error
}

// REPL reads commands from a LineReader and prints results to out
type REPL struct {
	sess     *session.Session
	reader   LineReader
	out      io.Writer
	renderer *render.Renderer
	logger   *log.Logger
}

// Options configures the readline instance
type Options struct {
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// New creates a REPL backed by readline with tab completion over the
// command vocabulary.
func New(sess *session.Session, renderer *render.Renderer, logger *log.Logger, opts Options) (*REPL, error) {
	completer := readline.NewPrefixCompleter()
	for _, token := range command.Tokens() {
		completer.Children = append(completer.Children, readline.PcItem(token))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          renderer.Styles.Prompt.Render(prompt),
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",
		Stdin:           opts.Stdin,
		Stdout:          opts.Stdout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start readline: %w", err)
	}

	out := opts.Stdout
	if out == nil {
		out = rl.Stdout()
	}
	return NewWithReader(sess, renderer, logger, rl, out), nil
}

// NewWithReader creates a REPL around any LineReader
func NewWithReader(sess *session.Session, renderer *render.Renderer, logger *log.Logger, reader LineReader, out io.Writer) *REPL {
	return &REPL{
		sess:     sess,
		reader:   reader,
		out:      out,
		renderer: renderer,
		logger:   logger.WithPrefix("repl"),
	}
}

// Close releases the line reader
func (r *REPL) Close() error {
	return r.reader.Close()
}

// Run plays until the player quits, wins, or ctx is cancelled. Reaching
// the end of input counts as quitting.
func (r *REPL) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = r.reader.Close()
	})
	defer stop()

	r.println(r.renderer.Heading())
	r.printTurn()

	for {
		line, err := r.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			r.println(r.renderer.Styles.Info.Render("Use 'q' to quit"))
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, io.EOF) {
				r.sess.Execute(command.Command{Kind: command.Quit})
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		out := r.sess.ExecuteLine(line)
		switch {
		case out.Ignored:
			r.logger.Debug("Unrecognised input", "line", line)
			continue
		case out.Help:
			r.println(r.renderer.Instructions())
			continue
		case out.Quit:
			r.println(r.renderer.Styles.Info.Render("Thanks for playing!"))
			r.printRecord()
			return nil
		case out.Won:
			r.println(r.renderer.Board(r.sess.Snapshot()))
			r.println(r.renderer.Win(out.Message))
			r.printRecord()
			return nil
		}

		r.println(r.renderer.Message(out.Message, out.Err != nil))
		r.printTurn()
	}
}

// printTurn shows the board and instructions, then refreshes the prompt
// with the selection.
func (r *REPL) printTurn() {
	snap := r.sess.Snapshot()
	r.println("")
	r.print(r.renderer.Board(snap))
	r.println(r.renderer.Status(snap))
	r.println(r.renderer.Counts(snap))
	r.println("")
	r.println(r.renderer.Instructions())
	r.reader.SetPrompt(r.renderer.Styles.Prompt.Render(promptFor(snap.Selection)))
}

func (r *REPL) printRecord() {
	if rec, ok := r.sess.Stats(); ok {
		r.println(r.renderer.Styles.Info.Render(rec.Summary()))
	}
}

func promptFor(sel solitaire.Selection) string {
	if sel.IsNone() {
		return prompt
	}
	return fmt.Sprintf("[%s] %s", sel, prompt)
}

func (r *REPL) print(s string) {
	_, _ = io.WriteString(r.out, s)
}

func (r *REPL) println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

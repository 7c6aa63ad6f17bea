// Package session runs one player's sequence of deals. It owns the current
// Game, turns parsed commands into Game calls, and produces the one-line
// feedback messages shown by the terminal adapters.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/klondike/internal/command"
	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/gameid"
	"github.com/lox/klondike/internal/randutil"
	"github.com/lox/klondike/internal/solitaire"
	"github.com/lox/klondike/internal/statistics"
)

// WinMessage is shown when the last card reaches the foundations
const WinMessage = "YOU'VE WON!"

// Options configures a session
type Options struct {
	// Seed for the first deal; 0 picks one from the clock. Later deals
	// started with "new" always pick a fresh seed.
	Seed int64

	// StrictFoundations is passed through to solitaire.Config
	StrictFoundations bool

	// Stats receives the result of every finished deal; nil disables it
	Stats *statistics.Store
}

// Outcome is the result of one line of input
type Outcome struct {
	Command command.Command
	Message string // feedback for the player; empty when there is nothing to say
	Err     error  // why the command was ignored or rejected
	Ignored bool   // the line did not parse; nothing changed
	Help    bool   // the player asked for instructions
	Quit    bool   // the session is over
	Won     bool   // the current deal has been won
}

// Session binds a Game to a clock, a logger and a deal id
type Session struct {
	opts    Options
	logger  *log.Logger
	clock   quartz.Clock
	ids     *gameid.Generator
	game    *solitaire.Game
	dealID  string
	seed    int64
	started time.Time
	ended   time.Time
	deals   int
	moves   int

	// finished is set once the current deal's result has been recorded
	finished bool
}

// New creates a session and deals the first game
func New(opts Options, logger *log.Logger, clock quartz.Clock) (*Session, error) {
	s := &Session{
		opts:   opts,
		logger: logger.WithPrefix("session"),
		clock:  clock,
		ids:    gameid.NewGenerator(nil),
	}
	if err := s.deal(opts.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// deal starts a new game from seed (0 derives one from the clock)
func (s *Session) deal(seed int64) error {
	if s.game != nil && !s.finished {
		s.finish(false)
	}

	id, err := s.ids.Generate()
	if err != nil {
		return err
	}

	now := s.clock.Now()
	s.seed = randutil.Seed(seed, now)
	s.game = solitaire.New(randutil.New(s.seed), solitaire.Config{
		StrictFoundations: s.opts.StrictFoundations,
	})
	s.dealID = id
	s.started = now
	s.ended = time.Time{}
	s.deals++
	s.moves = 0
	s.finished = false

	s.logger.Info("Dealt new game", "deal", id, "seed", s.seed, "strict", s.opts.StrictFoundations)
	return nil
}

// Load replaces the current deal with g, for replaying a saved or
// constructed position. The clock restarts.
func (s *Session) Load(g *solitaire.Game) {
	s.game = g
	s.started = s.clock.Now()
	s.ended = time.Time{}
	s.moves = 0
	s.finished = false
	s.logger.Info("Loaded position", "deal", s.dealID)
}

// Game returns the current game
func (s *Session) Game() *solitaire.Game { return s.game }

// Snapshot returns the current board
func (s *Session) Snapshot() solitaire.Snapshot { return s.game.Snapshot() }

// DealID returns the id of the current deal
func (s *Session) DealID() string { return s.dealID }

// Seed returns the seed of the current deal; replaying it gives the same deal
func (s *Session) Seed() int64 { return s.seed }

// Deals returns how many games have been dealt in this session
func (s *Session) Deals() int { return s.deals }

// Moves returns how many commands changed the current deal
func (s *Session) Moves() int { return s.moves }

// Stats returns the player's record, if statistics are being kept
func (s *Session) Stats() (statistics.Record, bool) {
	if s.opts.Stats == nil {
		return statistics.Record{}, false
	}
	return s.opts.Stats.Record(), true
}

// Elapsed returns how long the current deal has been played. The clock
// stops when the deal is won or quit.
func (s *Session) Elapsed() time.Duration {
	if !s.ended.IsZero() {
		return s.ended.Sub(s.started)
	}
	return s.clock.Since(s.started)
}

// IsOver reports whether the current deal has been won or quit
func (s *Session) IsOver() bool { return s.game.IsOver() }

// ExecuteLine parses and executes one line of input
func (s *Session) ExecuteLine(line string) Outcome {
	cmd, err := command.Parse(line)
	if err != nil {
		s.logger.Debug("Ignoring input", "input", line, "error", err)
		return Outcome{Err: err, Ignored: true, Won: s.game.IsWon(), Quit: s.game.HasQuit()}
	}
	return s.Execute(cmd)
}

// Execute runs a parsed command against the current game
func (s *Session) Execute(cmd command.Command) Outcome {
	s.logger.Debug("Executing command", "cmd", cmd.String(), "selection", s.game.Selection())

	out := Outcome{Command: cmd}
	switch cmd.Kind {
	case command.Quit:
		s.game.Quit()
		s.stopClock()
		s.logger.Info("Player quit", "deal", s.dealID, "elapsed", s.Elapsed())
		if !s.finished {
			s.finish(false)
		}
		out.Message = "Goodbye"

	case command.Help:
		out.Help = true

	case command.NewGame:
		if err := s.deal(0); err != nil {
			out.Err = err
			break
		}
		out.Message = fmt.Sprintf("New deal %s (seed %d)", gameid.Short(s.dealID), s.seed)

	case command.Draw:
		res, err := s.game.DrawThree()
		out.Err = err
		out.Message = describeDraw(res, err)

	case command.Waste:
		out.Err = s.game.SelectWaste()
		if out.Err == nil {
			if s.game.Selection().IsWaste() {
				out.Message = "Selected the waste"
			} else {
				out.Message = "Deselected the waste"
			}
		}

	case command.Tableau:
		out.Message, out.Err = s.selectTableau(cmd.Pile)

	case command.Foundation:
		out.Message, out.Err = s.sendToFoundation(cmd.Slot)
	}

	if out.Err == nil && changesBoard(cmd.Kind) {
		s.moves++
	}

	if out.Err != nil {
		s.logger.Debug("Command rejected", "cmd", cmd.String(), "error", out.Err)
		if out.Message == "" {
			out.Message = describeError(out.Err)
		}
	}

	if s.logger.GetLevel() <= log.DebugLevel {
		if err := s.game.Validate(); err != nil {
			s.logger.Error("Board invariant broken", "deal", s.dealID, "error", err)
		}
	}

	out.Quit = s.game.HasQuit()
	out.Won = s.game.IsWon()
	if out.Won && s.ended.IsZero() {
		s.stopClock()
		s.logger.Info("Game won", "deal", s.dealID, "seed", s.seed, "elapsed", s.Elapsed(), "moves", s.moves)
		out.Message = WinMessage
		s.finish(true)
	}
	return out
}

func changesBoard(k command.Kind) bool {
	switch k {
	case command.Draw, command.Waste, command.Tableau, command.Foundation:
		return true
	}
	return false
}

// finish records the current deal's result once
func (s *Session) finish(won bool) {
	s.finished = true
	if s.opts.Stats == nil {
		return
	}
	err := s.opts.Stats.Add(statistics.Result{
		DealID:  s.dealID,
		Seed:    s.seed,
		Won:     won,
		Moves:   s.moves,
		Elapsed: s.Elapsed(),
	})
	if err != nil {
		s.logger.Error("Failed to record result", "deal", s.dealID, "error", err)
	}
}

func (s *Session) stopClock() {
	if s.ended.IsZero() {
		s.ended = s.clock.Now()
	}
}

func (s *Session) selectTableau(pile int) (string, error) {
	before := s.game.Selection()
	err := s.game.SelectTableau(pile)
	if err != nil {
		return "", err
	}

	switch before.Kind {
	case solitaire.Unselected:
		return fmt.Sprintf("Selected pile %d", pile+1), nil
	case solitaire.WasteSelected:
		return fmt.Sprintf("Moved the waste card to pile %d", pile+1), nil
	}
	if before.Index == pile {
		return fmt.Sprintf("Deselected pile %d", pile+1), nil
	}
	return fmt.Sprintf("Moved pile %d to pile %d", before.Index+1, pile+1), nil
}

func (s *Session) sendToFoundation(slot int) (string, error) {
	if err := s.game.SendToFoundation(slot); err != nil {
		return "", err
	}
	f := s.game.Foundation(slot)
	card := f[len(f)-1]
	return fmt.Sprintf("Moved %s to the %s foundation", card, deck.Suits[slot].Letter()), nil
}

func describeDraw(res solitaire.DrawResult, err error) string {
	if err != nil {
		return ""
	}
	switch {
	case res.Drawn == 0:
		return "Nothing left to draw"
	case res.Recycled:
		return fmt.Sprintf("Recycled the waste, drew %d", res.Drawn)
	case res.Drawn == 1:
		return "Drew 1 card"
	default:
		return fmt.Sprintf("Drew %d cards", res.Drawn)
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, solitaire.ErrGameOver):
		return "The game is over; type 'new' to deal again or 'q' to quit"
	case errors.Is(err, solitaire.ErrNoSelection):
		return "Select the waste or a pile first"
	case errors.Is(err, solitaire.ErrEmptyPile):
		return "There is no card there to move"
	case errors.Is(err, solitaire.ErrIllegalMove):
		return "Can't move there: " + err.Error()
	default:
		return err.Error()
	}
}

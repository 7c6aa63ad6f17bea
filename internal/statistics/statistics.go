// Package statistics keeps a player's running record across deals and
// stores it as a small HCL file next to the config.
package statistics

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/klondike/internal/fileutil"
)

// Result is the outcome of a single deal
type Result struct {
	DealID  string
	Seed    int64
	Won     bool
	Moves   int
	Elapsed time.Duration
}

// Record is the running tally. Times are whole seconds; zero means no
// win has been recorded yet.
type Record struct {
	Played      int    `hcl:"played,optional"`
	Won         int    `hcl:"won,optional"`
	Streak      int    `hcl:"streak,optional"`
	BestStreak  int    `hcl:"best_streak,optional"`
	BestSeconds int64  `hcl:"best_seconds,optional"`
	FewestMoves int    `hcl:"fewest_moves,optional"`
	LastDeal    string `hcl:"last_deal,optional"`
	LastSeed    int64  `hcl:"last_seed,optional"`
}

// Add folds a deal result into the record
func (r *Record) Add(res Result) {
	r.Played++
	r.LastDeal = res.DealID
	r.LastSeed = res.Seed

	if !res.Won {
		r.Streak = 0
		return
	}

	r.Won++
	r.Streak++
	r.BestStreak = max(r.BestStreak, r.Streak)

	secs := int64(res.Elapsed / time.Second)
	if r.BestSeconds == 0 || secs < r.BestSeconds {
		r.BestSeconds = secs
	}
	if r.FewestMoves == 0 || res.Moves < r.FewestMoves {
		r.FewestMoves = res.Moves
	}
}

// WinRate returns the share of deals won, 0 when nothing was played
func (r Record) WinRate() float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.Won) / float64(r.Played)
}

// BestTime returns the fastest win
func (r Record) BestTime() time.Duration {
	return time.Duration(r.BestSeconds) * time.Second
}

// Summary is a one-line description for display
func (r Record) Summary() string {
	s := fmt.Sprintf("Won %d of %d (%.0f%%), streak %d, best streak %d",
		r.Won, r.Played, r.WinRate()*100, r.Streak, r.BestStreak)
	if r.BestSeconds > 0 {
		s += fmt.Sprintf(", fastest %s in %d moves", r.BestTime(), r.FewestMoves)
	}
	return s
}

// Parse decodes a record from HCL source
func Parse(src []byte, filename string) (Record, error) {
	var rec Record
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return rec, fmt.Errorf("failed to parse stats file: %s", diags.Error())
	}
	if diags := gohcl.DecodeBody(f.Body, nil, &rec); diags.HasErrors() {
		return rec, fmt.Errorf("failed to decode stats file: %s", diags.Error())
	}
	return rec, nil
}

// Encode renders a record as HCL
func (r Record) Encode() []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(&r, f.Body())
	return f.Bytes()
}

// Store is a Record persisted to a file. It is safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
	rec  Record
}

// Open loads the record at path; a missing file starts an empty record
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	src, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}
	if s.rec, err = Parse(src, path); err != nil {
		return nil, err
	}
	return s, nil
}

// Record returns a copy of the current tally
func (s *Store) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec
}

// Add records a finished deal and writes the file
func (s *Store) Add(res Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rec.Add(res)
	if err := fileutil.WriteFileAtomic(s.path, s.rec.Encode(), 0644); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

package solitaire

import (
	"testing"

	"github.com/lox/klondike/internal/randutil"
	"github.com/stretchr/testify/require"
)

// TestRandomPlayKeepsInvariants drives games with random commands and checks
// card conservation, tableau face state and foundation order after each one.
func TestRandomPlayKeepsInvariants(t *testing.T) {
	for _, config := range []Config{{StrictFoundations: true}, {StrictFoundations: false}} {
		for seed := int64(1); seed <= 20; seed++ {
			g := New(randutil.New(seed), config)
			rng := randutil.New(seed * 7919)

			for step := range 2000 {
				switch rng.IntN(4) {
				case 0:
					_, _ = g.DrawThree()
				case 1:
					_ = g.SelectWaste()
				case 2:
					_ = g.SelectTableau(rng.IntN(TableauCount))
				case 3:
					_ = g.SendToFoundation(rng.IntN(FoundationCount))
				}
				if err := g.Validate(); err != nil {
					require.NoError(t, err, "seed %d step %d strict=%v", seed, step, config.StrictFoundations)
				}
				if g.IsOver() {
					break
				}
			}
		}
	}
}

// TestGreedyPlayMakesProgress plays every legal foundation move it can find
// and checks that cards reach the foundations without breaking anything.
func TestGreedyPlayMakesProgress(t *testing.T) {
	g := New(randutil.New(2024), strict)

	moved := 0
	for range 200 {
		progress := false
		for i := range TableauCount {
			for slot := range FoundationCount {
				g.Deselect()
				_ = g.SelectTableau(i)
				if g.SendToFoundation(slot) == nil {
					moved++
					progress = true
				}
			}
		}
		g.Deselect()
		_ = g.SelectWaste()
		for slot := range FoundationCount {
			if g.SendToFoundation(slot) == nil {
				moved++
				progress = true
				break
			}
		}
		g.Deselect()
		if !progress {
			_, _ = g.DrawThree()
		}
		requireInvariants(t, g)
	}

	total := 0
	for slot := range FoundationCount {
		total += len(g.Foundation(slot))
	}
	require.Equal(t, moved, total)
}

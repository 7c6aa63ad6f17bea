package solitaire

import (
	"testing"

	"github.com/lox/klondike/internal/deck"
	"github.com/lox/klondike/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTableauToggles(t *testing.T) {
	g := New(randutil.New(42), strict)
	before := g.Snapshot()

	require.NoError(t, g.SelectTableau(2))
	assert.Equal(t, TableauSelection(2), g.Selection())

	require.NoError(t, g.SelectTableau(2))
	assert.True(t, g.Selection().IsNone())
	assert.Equal(t, before, g.Snapshot(), "toggling changes no pile")
}

func TestSelectWasteToggles(t *testing.T) {
	g := New(randutil.New(42), strict)

	require.NoError(t, g.SelectWaste())
	assert.True(t, g.Selection().IsWaste())
	require.NoError(t, g.SelectWaste())
	assert.True(t, g.Selection().IsNone())

	require.NoError(t, g.SelectTableau(0))
	require.NoError(t, g.SelectWaste())
	assert.True(t, g.Selection().IsWaste(), "waste replaces a tableau selection")
}

func TestSelectTableauOutOfRange(t *testing.T) {
	g := New(randutil.New(42), strict)
	for _, i := range []int{-1, 7, 44, 99} {
		err := g.SelectTableau(i)
		assert.ErrorIs(t, err, ErrInvalidPile)
		assert.True(t, g.Selection().IsNone())
	}
}

func TestKingToEmptyColumn(t *testing.T) {
	g := newLayout(t).
		column(0, "4C 9D", "KS").
		column(1, "", "").
		build(strict, restToStock)

	require.NoError(t, g.SelectTableau(0))
	require.NoError(t, g.SelectTableau(1))

	col0 := g.Tableau(0)
	require.Len(t, col0, 2)
	same(t, "9D", topOf(t, col0))
	assert.True(t, topOf(t, col0).FaceUp, "source's new top is turned face-up")
	assert.False(t, col0[0].FaceUp)

	col1 := g.Tableau(1)
	require.Len(t, col1, 1)
	same(t, "KS", col1[0])
	assert.True(t, g.Selection().IsNone())
	requireInvariants(t, g)
}

func TestMoveFaceUpRun(t *testing.T) {
	g := newLayout(t).
		column(2, "AD", "8S 7H 6C").
		column(5, "2D", "9H").
		build(strict, restToStock)

	require.NoError(t, g.SelectTableau(2))
	require.NoError(t, g.SelectTableau(5))

	col5 := g.Tableau(5)
	require.Len(t, col5, 5)
	same(t, "9H", col5[1])
	same(t, "8S", col5[2])
	same(t, "7H", col5[3])
	same(t, "6C", col5[4])

	col2 := g.Tableau(2)
	require.Len(t, col2, 1)
	same(t, "AD", col2[0])
	assert.True(t, col2[0].FaceUp)
	requireInvariants(t, g)
}

func TestIllegalTableauMove(t *testing.T) {
	g := newLayout(t).
		column(0, "KC", "5H").
		column(1, "QC", "6D").
		build(strict, restToStock)
	before := g.Snapshot()

	require.NoError(t, g.SelectTableau(0))
	err := g.SelectTableau(1)
	assert.ErrorIs(t, err, ErrIllegalMove, "red 5 cannot go on red 6")

	assert.True(t, g.Selection().IsNone(), "tableau selection is cleared even when the move fails")
	assert.Equal(t, before.Tableau, g.Snapshot().Tableau)
	requireInvariants(t, g)
}

func TestIllegalMoveToEmptyColumn(t *testing.T) {
	g := newLayout(t).
		column(0, "", "QS").
		column(1, "", "").
		build(strict, restToStock)

	require.NoError(t, g.SelectTableau(0))
	assert.ErrorIs(t, g.SelectTableau(1), ErrIllegalMove)
	assert.Len(t, g.Tableau(0), 1)
	assert.Empty(t, g.Tableau(1))
}

func TestMoveFromEmptyColumn(t *testing.T) {
	g := newLayout(t).
		column(0, "", "").
		column(1, "", "QS").
		build(strict, restToStock)

	require.NoError(t, g.SelectTableau(0), "an empty column may be selected")
	assert.ErrorIs(t, g.SelectTableau(1), ErrEmptyPile)
	assert.True(t, g.Selection().IsNone())
}

func TestWasteToTableau(t *testing.T) {
	g := newLayout(t).
		column(3, "AC", "6S").
		waste("KH 5D").
		build(strict, restToStock)

	require.NoError(t, g.SelectWaste())
	require.NoError(t, g.SelectTableau(3))

	col := g.Tableau(3)
	require.Len(t, col, 3)
	same(t, "5D", topOf(t, col))
	assert.True(t, topOf(t, col).FaceUp)

	waste := g.Waste()
	require.Len(t, waste, 1)
	same(t, "KH", waste[0])
	assert.True(t, g.Selection().IsNone())
	requireInvariants(t, g)
}

func TestIllegalWasteToTableauKeepsSelection(t *testing.T) {
	g := newLayout(t).
		column(3, "AC", "6H").
		waste("5D").
		build(strict, restToStock)

	require.NoError(t, g.SelectWaste())
	assert.ErrorIs(t, g.SelectTableau(3), ErrIllegalMove)

	assert.True(t, g.Selection().IsWaste())
	assert.Len(t, g.Waste(), 1)
	assert.Len(t, g.Tableau(3), 2)
}

func TestEmptyWasteToTableau(t *testing.T) {
	g := newLayout(t).column(0, "", "").build(strict, restToStock)

	require.NoError(t, g.SelectWaste())
	assert.ErrorIs(t, g.SelectTableau(0), ErrEmptyPile)
	assert.True(t, g.Selection().IsWaste())
}

func TestWasteAceToFoundation(t *testing.T) {
	g := newLayout(t).waste("9C AH").build(strict, restToStock)

	require.NoError(t, g.SelectWaste())
	require.NoError(t, g.SendToFoundation(int(deck.Hearts)))

	f := g.Foundation(int(deck.Hearts))
	require.Len(t, f, 1)
	same(t, "AH", f[0])
	assert.Len(t, g.Waste(), 1)
	assert.True(t, g.Selection().IsNone())
	requireInvariants(t, g)
}

func TestTableauToFoundationFlipsSource(t *testing.T) {
	g := newLayout(t).
		column(6, "8D 3S", "2C").
		foundation(int(deck.Clubs), "AC").
		build(strict, restToStock)

	require.NoError(t, g.SelectTableau(6))
	require.NoError(t, g.SendToFoundation(int(deck.Clubs)))

	col := g.Tableau(6)
	require.Len(t, col, 2)
	same(t, "3S", topOf(t, col))
	assert.True(t, topOf(t, col).FaceUp)
	assert.Len(t, g.Foundation(int(deck.Clubs)), 2)
	assert.True(t, g.Selection().IsNone())
	requireInvariants(t, g)
}

func TestSendToFoundationFailures(t *testing.T) {
	t.Run("nothing selected", func(t *testing.T) {
		g := newLayout(t).waste("AH").build(strict, restToStock)
		assert.ErrorIs(t, g.SendToFoundation(0), ErrNoSelection)
		assert.Len(t, g.Waste(), 1)
	})

	t.Run("slot out of range", func(t *testing.T) {
		g := newLayout(t).waste("AH").build(strict, restToStock)
		require.NoError(t, g.SelectWaste())
		assert.ErrorIs(t, g.SendToFoundation(4), ErrInvalidFoundation)
		assert.ErrorIs(t, g.SendToFoundation(-1), ErrInvalidFoundation)
		assert.True(t, g.Selection().IsWaste())
	})

	t.Run("out of sequence", func(t *testing.T) {
		g := newLayout(t).waste("3H").foundation(0, "AH").build(strict, restToStock)
		require.NoError(t, g.SelectWaste())
		assert.ErrorIs(t, g.SendToFoundation(0), ErrIllegalMove)
		assert.True(t, g.Selection().IsWaste(), "failure leaves the cursor alone")
		assert.Len(t, g.Waste(), 1)
		assert.Len(t, g.Foundation(0), 1)
	})

	t.Run("empty waste", func(t *testing.T) {
		g := newLayout(t).build(strict, restToStock)
		require.NoError(t, g.SelectWaste())
		assert.ErrorIs(t, g.SendToFoundation(0), ErrEmptyPile)
	})

	t.Run("tableau selection stays on failure", func(t *testing.T) {
		g := newLayout(t).column(1, "", "5S").build(strict, restToStock)
		require.NoError(t, g.SelectTableau(1))
		assert.ErrorIs(t, g.SendToFoundation(3), ErrIllegalMove)
		assert.Equal(t, TableauSelection(1), g.Selection())
	})
}

func TestFoundationSuitEnforcement(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		slot    deck.Suit
		wantErr error
	}{
		{"strict, matching slot", Config{StrictFoundations: true}, deck.Hearts, nil},
		{"strict, wrong slot", Config{StrictFoundations: true}, deck.Spades, ErrIllegalMove},
		{"lenient, matching slot", Config{StrictFoundations: false}, deck.Hearts, nil},
		{"lenient, wrong slot", Config{StrictFoundations: false}, deck.Spades, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newLayout(t).waste("AH").build(tt.config, restToStock)
			require.NoError(t, g.SelectWaste())

			err := g.SendToFoundation(int(tt.slot))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, g.Foundation(int(tt.slot)))
				return
			}
			require.NoError(t, err)
			assert.Len(t, g.Foundation(int(tt.slot)), 1)
			requireInvariants(t, g)
		})
	}
}

func TestLenientFoundationMixesSuits(t *testing.T) {
	lenient := Config{StrictFoundations: false}
	g := newLayout(t).
		waste("2C").
		foundation(0, "AH").
		build(lenient, restToStock)

	require.NoError(t, g.SelectWaste())
	require.NoError(t, g.SendToFoundation(0))
	assert.Len(t, g.Foundation(0), 2)
	requireInvariants(t, g)
}

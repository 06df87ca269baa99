package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"splendor/game"
)

// newEvalState builds an empty board with a full bank. Tests add the
// material they need on top.
func newEvalState() *game.GameState {
	g := &game.GameState{
		Bank: game.TokenSet{Black: 4, Blue: 4, White: 4, Green: 4, Red: 4, Joker: 5},
	}
	for i := range g.Players {
		g.Players[i] = game.Player{
			Purchased: []game.Card{},
			Reserved:  []game.Card{},
			Nobles:    []game.Noble{},
		}
	}
	return g
}

func TestScoreEmptyStateIsZero(t *testing.T) {
	g := newEvalState()
	w := DefaultWeights()
	require.Zero(t, w.Score(g, 0))
	require.Zero(t, w.Score(g, 1))
}

func TestScoreIsAntisymmetric(t *testing.T) {
	g := newEvalState()
	g.Players[0].Points = 4
	g.Players[0].Tokens = game.TokenSet{Red: 2, Joker: 1}
	g.Players[1].Bonuses = game.TokenSet{Green: 3}
	g.Players[1].Reserved = []game.Card{
		{ID: 72, Tier: 3, Color: game.Red, Points: 4, Cost: game.TokenSet{Green: 7}},
	}
	w := DefaultWeights()
	require.InDelta(t, -w.Score(g, 1), w.Score(g, 0), 1e-12,
		"with no turn penalty both perspectives must mirror")
}

func TestScorePointAndGemTerms(t *testing.T) {
	w := DefaultWeights()

	t.Run("should weigh points per player", func(t *testing.T) {
		g := newEvalState()
		g.Players[0].Points = 3
		require.InDelta(t, 60.0, w.Score(g, 0), 1e-12)
		require.InDelta(t, -60.0, w.Score(g, 1), 1e-12)
	})

	t.Run("should count jokers double in the gem term", func(t *testing.T) {
		g := newEvalState()
		g.Players[0].Tokens = game.TokenSet{Red: 1, Joker: 2}
		require.InDelta(t, 0.25*5, w.Score(g, 0), 1e-12)
	})
}

func TestScoreTurnPenalty(t *testing.T) {
	g := newEvalState()
	g.MoveNumber = 7
	w := DefaultWeights()
	require.InDelta(t, -0.07, w.Score(g, 0), 1e-12)
	require.InDelta(t, -0.07, w.Score(g, 1), 1e-12, "the clock runs against both perspectives")
}

func TestScoreTerminal(t *testing.T) {
	w := DefaultWeights()

	t.Run("should add the win bonus and loss penalty once over", func(t *testing.T) {
		g := newEvalState()
		g.Players[0].Points = game.WinningPoints
		require.True(t, g.IsOver())
		require.InDelta(t, 15*20.0+1000.0, w.Score(g, 0), 1e-12)
		require.InDelta(t, -(15*20.0 + 1000.0), w.Score(g, 1), 1e-12)
	})

	t.Run("should leave a pass stall without bonus either way", func(t *testing.T) {
		g := newEvalState()
		g.Passes = game.PassesToEnd
		require.True(t, g.IsOver())
		require.Zero(t, w.Score(g, 0))
		require.Zero(t, w.Score(g, 1))
	})
}

func TestCanAfford(t *testing.T) {
	card := game.Card{ID: 42, Tier: 2, Color: game.Black, Points: 2, Cost: game.TokenSet{Red: 3}}

	t.Run("should cover colored shortfall with jokers", func(t *testing.T) {
		p := game.Player{Tokens: game.TokenSet{Red: 1, Joker: 2}}
		require.True(t, canAfford(&p, card))
	})

	t.Run("should fail when jokers cannot close the gap", func(t *testing.T) {
		p := game.Player{Tokens: game.TokenSet{Red: 1, Joker: 1}}
		require.False(t, canAfford(&p, card))
	})

	t.Run("should apply bonuses before tokens", func(t *testing.T) {
		p := game.Player{Bonuses: game.TokenSet{Red: 3}}
		require.True(t, canAfford(&p, card))
	})

	t.Run("should never afford a placeholder", func(t *testing.T) {
		p := game.Player{Tokens: game.TokenSet{Red: 4, Joker: 5}}
		require.False(t, canAfford(&p, game.Card{}))
	})

	t.Run("should treat a masked zero-cost reserve as affordable", func(t *testing.T) {
		p := game.Player{}
		require.True(t, canAfford(&p, game.Card{ID: game.BlindBaseID + 2, Tier: 2}))
	})
}

func TestCountAffordable(t *testing.T) {
	g := newEvalState()
	g.FaceUp[0] = []game.Card{
		{ID: 1, Tier: 1, Color: game.Black, Cost: game.TokenSet{Blue: 1}},
		{ID: 2, Tier: 1, Color: game.Blue, Cost: game.TokenSet{White: 5}},
		{},
	}
	g.Players[0].Tokens = game.TokenSet{Blue: 1}
	g.Players[0].Reserved = []game.Card{
		{ID: 5, Tier: 1, Color: game.Red, Cost: game.TokenSet{Black: 3}},
	}
	g.Players[0].Bonuses = game.TokenSet{Black: 3}

	require.Equal(t, 2, countAffordable(g, 0), "one face-up card and the reserved card")
	require.Equal(t, 0, countAffordable(g, 1), "opponent cannot pay for anything")
}

func TestNobleGap(t *testing.T) {
	g := newEvalState()
	g.Nobles = []game.Noble{
		{ID: 4, Points: 3, Requirement: game.TokenSet{Green: 4, Red: 4}},
		{ID: 9, Points: 3, Requirement: game.TokenSet{Black: 3, Blue: 3, White: 3}},
	}
	g.Players[0].Bonuses = game.TokenSet{Green: 2, Black: 3}

	require.Equal(t, -(2+4)-(3+3), nobleGap(g, 0), "lacking bonuses count against every noble")
	require.Equal(t, -17, nobleGap(g, 1))

	g.Players[0].Bonuses = game.TokenSet{Green: 9}
	require.Equal(t, -4-9, nobleGap(g, 0), "surplus in one color does not pay another")
}

func TestCardEfficiency(t *testing.T) {
	t.Run("should score points per required gem at the threshold or above", func(t *testing.T) {
		c := game.Card{ID: 3, Points: 1, Cost: game.TokenSet{Green: 4}}
		require.InDelta(t, 0.25, cardEfficiency(c), 1e-12)
	})

	t.Run("should go negative below the threshold", func(t *testing.T) {
		c := game.Card{ID: 2, Points: 1, Cost: game.TokenSet{Green: 5}}
		require.InDelta(t, 0.2-efficiencyThreshold, cardEfficiency(c), 1e-12)
	})

	t.Run("should ignore free and placeholder cards", func(t *testing.T) {
		require.Zero(t, cardEfficiency(game.Card{ID: 91, Tier: 1}))
		require.Zero(t, cardEfficiency(game.Card{}))
	})
}

func TestCommitmentScore(t *testing.T) {
	t.Run("should be zero without an efficient reserve", func(t *testing.T) {
		p := game.Player{Reserved: []game.Card{
			{ID: 1, Points: 0, Cost: game.TokenSet{Blue: 4}},
		}}
		require.Zero(t, commitmentScore(&p))
	})

	t.Run("should reward a single-axis reserve backed by the hand", func(t *testing.T) {
		p := game.Player{
			Tokens:  game.TokenSet{Green: 2, Joker: 2},
			Bonuses: game.TokenSet{Green: 1},
			Reserved: []game.Card{
				{ID: 72, Tier: 3, Points: 4, Cost: game.TokenSet{Green: 7}},
			},
		}
		// focus 1, progress (2+1+1)/7, no spread, no slot penalty.
		require.InDelta(t, 1.0+0.5*(4.0/7.0), commitmentScore(&p), 1e-12)
	})

	t.Run("should penalize demand spread across colors", func(t *testing.T) {
		focused := game.Player{Reserved: []game.Card{
			{ID: 72, Points: 4, Cost: game.TokenSet{Green: 7}},
		}}
		scattered := game.Player{Reserved: []game.Card{
			{ID: 71, Points: 3, Cost: game.TokenSet{Black: 4, Blue: 4, White: 4}},
		}}
		require.InDelta(t, 1.0, commitmentScore(&focused), 1e-12)
		require.Less(t, commitmentScore(&scattered), 0.0,
			"even demand across three colors costs more than its focus earns")
	})

	t.Run("should penalize a third efficient reserve slot", func(t *testing.T) {
		two := game.Player{Reserved: []game.Card{
			{ID: 72, Points: 4, Cost: game.TokenSet{Green: 7}},
			{ID: 75, Points: 3, Cost: game.TokenSet{Green: 6}},
		}}
		three := game.Player{Reserved: []game.Card{
			{ID: 72, Points: 4, Cost: game.TokenSet{Green: 7}},
			{ID: 75, Points: 3, Cost: game.TokenSet{Green: 6}},
			{ID: 76, Points: 2, Cost: game.TokenSet{Green: 5}},
		}}
		require.InDelta(t, 0.25, commitmentScore(&two)-commitmentScore(&three), 1e-9,
			"identical axis and progress, one extra slot")
	})
}

func TestApplyOrdered(t *testing.T) {
	t.Run("should fill fields in declaration order", func(t *testing.T) {
		var w Weights
		vals := make([]float64, 17)
		for i := range vals {
			vals[i] = float64(i + 1)
		}
		w.ApplyOrdered(vals)
		require.Equal(t, 1.0, w.PointSelf)
		require.Equal(t, 2.0, w.PointOpp)
		require.Equal(t, 9.0, w.NobleProgressSelf)
		require.Equal(t, 13.0, w.WinBonus)
		require.Equal(t, 17.0, w.Commitment)
	})

	t.Run("should leave trailing fields at their prior values", func(t *testing.T) {
		w := DefaultWeights()
		w.ApplyOrdered([]float64{5, 5})
		require.Equal(t, 5.0, w.PointOpp)
		require.Equal(t, 0.25, w.GemSelf)
		require.Equal(t, 1.0, w.Commitment)
	})

	t.Run("should ignore surplus values", func(t *testing.T) {
		w := DefaultWeights()
		vals := make([]float64, 20)
		w.ApplyOrdered(vals)
		require.Zero(t, w.Commitment)
	})
}

func TestScoreBindsAsEvaluate(t *testing.T) {
	var fn game.Evaluate = DefaultWeights().Score
	g := newEvalState()
	g.Players[1].Points = 2
	require.Equal(t, DefaultWeights().Score(g, 1), fn(g, 1))
}

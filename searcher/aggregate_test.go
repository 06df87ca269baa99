package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"splendor/game"
)

func buyMove(cardID int) game.Move {
	return game.Move{Player: 0, Type: game.MoveBuy, CardID: cardID, AutoPay: true}
}

func TestAggregateAdd(t *testing.T) {
	ag := &aggregate{move: buyMove(3)}
	ag.add(rootResult{move: buyMove(3), visits: 10, mean: 0.5})
	ag.add(rootResult{move: buyMove(3), visits: 0, mean: -1.0})

	require.Equal(t, 10, ag.totalVisits, "fallback results carry no real visits")
	require.Equal(t, 11, ag.weightedN, "zero-visit results still weigh in at one")
	require.InDelta(t, (0.5*10-1.0)/11.0, ag.score(0), 1e-12)
	require.Len(t, ag.means, 2)
}

func TestAggregateScoreRiskTerm(t *testing.T) {
	steady := &aggregate{}
	steady.add(rootResult{visits: 1, mean: 0.4})
	steady.add(rootResult{visits: 1, mean: 0.4})

	volatile := &aggregate{}
	volatile.add(rootResult{visits: 1, mean: 0.9})
	volatile.add(rootResult{visits: 1, mean: -0.1})

	require.InDelta(t, volatile.score(0), steady.score(0), 1e-12,
		"identical means with no risk penalty")
	require.Greater(t, steady.score(0.3), volatile.score(0.3),
		"worlds that disagree cost the move its edge")
}

func TestChooseMove(t *testing.T) {
	t.Run("should pick the most visited move first", func(t *testing.T) {
		heavy := &aggregate{move: buyMove(3)}
		heavy.add(rootResult{visits: 50, mean: 0.1})
		light := &aggregate{move: buyMove(4)}
		light.add(rootResult{visits: 10, mean: 0.9})

		move, ok := chooseMove(map[string]*aggregate{
			heavy.move.String(): heavy,
			light.move.String(): light,
		}, 0.3)
		require.True(t, ok)
		require.Equal(t, heavy.move, move, "visits outrank value")
	})

	t.Run("should break visit ties by risk-adjusted score", func(t *testing.T) {
		steady := &aggregate{move: buyMove(3)}
		steady.add(rootResult{visits: 10, mean: 0.4})
		steady.add(rootResult{visits: 10, mean: 0.4})
		volatile := &aggregate{move: buyMove(4)}
		volatile.add(rootResult{visits: 10, mean: 0.9})
		volatile.add(rootResult{visits: 10, mean: -0.1})

		move, ok := chooseMove(map[string]*aggregate{
			steady.move.String():   steady,
			volatile.move.String(): volatile,
		}, 0.3)
		require.True(t, ok)
		require.Equal(t, steady.move, move)
	})

	t.Run("should break exact ties by move text", func(t *testing.T) {
		pass := &aggregate{move: game.Move{Player: 0, Type: game.MovePass}}
		pass.add(rootResult{visits: 10, mean: 0.4})
		buy := &aggregate{move: buyMove(3)}
		buy.add(rootResult{visits: 10, mean: 0.4})

		move, ok := chooseMove(map[string]*aggregate{
			pass.move.String(): pass,
			buy.move.String():  buy,
		}, 0.3)
		require.True(t, ok)
		require.Equal(t, buy.move, move, `"BUY 3" sorts before "PASS"`)
	})

	t.Run("should report nothing to choose from", func(t *testing.T) {
		_, ok := chooseMove(map[string]*aggregate{}, 0.3)
		require.False(t, ok)
	})
}

func TestStddev(t *testing.T) {
	require.Zero(t, stddev(nil))
	require.Zero(t, stddev([]float64{0.7}), "a single sample has no spread")
	require.InDelta(t, 1.0, stddev([]float64{1, 3}), 1e-12)
	require.Zero(t, stddev([]float64{0.4, 0.4, 0.4}))
}

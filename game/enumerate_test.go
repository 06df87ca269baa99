package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func moveStrings(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func TestLegalMoves(t *testing.T) {
	t.Run("should list reserves and takes for an opening hand", func(t *testing.T) {
		g := newTestState()
		moves := g.LegalMoves()

		// 12 face-up reserves, 2 blind reserves (tier 3 deck is out),
		// 5 doubles and C(5,3)=10 spreads. Nothing is affordable yet.
		require.Len(t, moves, 29)

		require.Equal(t, "RESERVE 1", moves[0].String())
		require.Equal(t, "RESERVE 91", moves[12].String())
		require.Equal(t, "RESERVE 92", moves[13].String())
		require.Equal(t, "TAKE black black", moves[14].String())
		require.Equal(t, "TAKE black blue white", moves[19].String())

		for _, m := range moves {
			require.NotEqual(t, MovePass, m.Type, "PASS only appears alone")
			require.NotEqual(t, 93, m.CardID, "No blind reserve against an empty deck")
			require.NoError(t, g.ValidateMove(m))
		}
	})

	t.Run("should put affordable purchases first", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Blue: 1, White: 1, Green: 1, Red: 1}

		moves := g.LegalMoves()
		require.Equal(t, MoveBuy, moves[0].Type)
		require.Equal(t, 1, moves[0].CardID)
		require.True(t, moves[0].AutoPay)

		buys := 0
		for _, m := range moves {
			if m.Type == MoveBuy {
				buys++
			}
		}
		require.Equal(t, 1, buys, "Only card 1 is affordable")
	})

	t.Run("should expand a purchase once per qualifying noble", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Bonuses = TokenSet{Green: 3, Red: 4}
		g.Players[0].Tokens = TokenSet{Black: 1, Red: 2}

		var nobleChoices []int
		for _, m := range g.LegalMoves() {
			if m.Type == MoveBuy && m.CardID == 4 {
				nobleChoices = append(nobleChoices, m.NobleID)
			}
		}
		require.Equal(t, []int{4, 7}, nobleChoices)
	})

	t.Run("should withhold reserves at the three-card cap", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Reserved = []Card{
			{ID: 11, Tier: 1, Cost: TokenSet{Black: 9}},
			{ID: 12, Tier: 1, Cost: TokenSet{Black: 9}},
			{ID: 13, Tier: 1, Cost: TokenSet{Black: 9}},
		}
		for _, m := range g.LegalMoves() {
			require.NotEqual(t, MoveReserve, m.Type)
		}
	})

	t.Run("should skip doubles from short stacks", func(t *testing.T) {
		g := newTestState()
		g.Bank.Red = 3
		require.NotContains(t, moveStrings(g.LegalMoves()), "TAKE red red")
	})

	t.Run("should expand overflowing takes into explicit returns", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Blue: 3, White: 3, Green: 3}
		g.Bank = g.Bank.Minus(g.Players[0].Tokens)

		moves := g.LegalMoves()
		for _, m := range moves {
			require.NoError(t, g.ValidateMove(m))
			if m.Type == MoveTake {
				require.Equal(t, 10, g.Players[0].Tokens.Total()+m.Taken.Total()-m.Returned.Total(),
					"Every take lands exactly on the hand cap")
			}
		}
		require.Contains(t, moveStrings(moves), "TAKE black black RETURN black",
			"Gems taken this move can bounce straight back")
	})

	t.Run("should fall back to PASS when nothing else is legal", func(t *testing.T) {
		g := newTestState()
		g.Bank = TokenSet{}
		g.Players[0].Reserved = []Card{
			{ID: 11, Tier: 1, Cost: TokenSet{Black: 9}},
			{ID: 12, Tier: 1, Cost: TokenSet{Black: 9}},
			{ID: 13, Tier: 1, Cost: TokenSet{Black: 9}},
		}

		moves := g.LegalMoves()
		require.Len(t, moves, 1)
		require.Equal(t, MovePass, moves[0].Type)
		require.Equal(t, "PASS", moves[0].String())
	})
}

func TestReturnCombinations(t *testing.T) {
	t.Run("should walk colors in canonical order", func(t *testing.T) {
		combos := returnCombinations(TokenSet{Black: 2, Blue: 1}, 2)
		require.Equal(t, []TokenSet{{Black: 1, Blue: 1}, {Black: 2}}, combos)
	})

	t.Run("should branch on the joker after the colors", func(t *testing.T) {
		combos := returnCombinations(TokenSet{Red: 1, Joker: 1}, 1)
		require.Equal(t, []TokenSet{{Joker: 1}, {Red: 1}}, combos)
	})

	t.Run("should stop at the enumeration cap", func(t *testing.T) {
		pool := TokenSet{Black: 4, Blue: 4, White: 4, Green: 4, Red: 4}
		combos := returnCombinations(pool, 4)
		require.Len(t, combos, maxReturnCombos)
	})

	t.Run("should return nothing when the pool cannot cover the need", func(t *testing.T) {
		require.Empty(t, returnCombinations(TokenSet{Black: 1}, 3))
	})
}

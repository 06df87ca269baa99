package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func takeMove(player int, taken, returned TokenSet) Move {
	return Move{Player: player, Type: MoveTake, Taken: taken, Returned: returned}
}

func TestValidateTurnOrder(t *testing.T) {
	g := newTestState()
	err := g.ValidateMove(takeMove(1, TokenSet{Black: 1, Blue: 1, White: 1}, TokenSet{}))
	require.EqualError(t, err, "Not your turn")

	require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MovePass}), "PASS is always valid in turn")
}

func TestValidateTake(t *testing.T) {
	t.Run("should accept three different colors from a full bank", func(t *testing.T) {
		g := newTestState()
		require.NoError(t, g.ValidateMove(takeMove(0, TokenSet{White: 1, Blue: 1, Green: 1}, TokenSet{})))
	})

	t.Run("should reject taking jokers directly", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(takeMove(0, TokenSet{Joker: 1}, TokenSet{}))
		require.EqualError(t, err, "Cannot take joker gems directly")
	})

	t.Run("should reject an empty take", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(takeMove(0, TokenSet{}, TokenSet{}))
		require.EqualError(t, err, "Must take at least 1 gem")
	})

	t.Run("should reject colors the bank cannot supply", func(t *testing.T) {
		g := newTestState()
		g.Bank.Black = 0
		err := g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1, White: 1}, TokenSet{}))
		require.EqualError(t, err, "Not enough black gems in bank")
	})

	t.Run("should allow two of a kind only from a stack of four or more", func(t *testing.T) {
		g := newTestState()
		require.NoError(t, g.ValidateMove(takeMove(0, TokenSet{Red: 2}, TokenSet{})))

		g.Bank.Red = 3
		err := g.ValidateMove(takeMove(0, TokenSet{Red: 2}, TokenSet{}))
		require.EqualError(t, err, "Need 4+ gems in bank to take 2 of same color")
	})

	t.Run("should force the spread size down to the colors available", func(t *testing.T) {
		g := newTestState()
		g.Bank = TokenSet{Black: 1, Blue: 1, Joker: 5}

		require.NoError(t, g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1}, TokenSet{})))

		err := g.ValidateMove(takeMove(0, TokenSet{Black: 1}, TokenSet{}))
		require.EqualError(t, err, "Must take 2 gems when taking different colors (found 2 colors available)")
	})

	t.Run("should require three when three colors are available", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1}, TokenSet{}))
		require.EqualError(t, err, "Must take 3 gems when taking different colors (found 5 colors available)")
	})

	t.Run("should allow a single gem when only one color remains", func(t *testing.T) {
		g := newTestState()
		g.Bank = TokenSet{Green: 2, Joker: 5}
		require.NoError(t, g.ValidateMove(takeMove(0, TokenSet{Green: 1}, TokenSet{})))
	})

	t.Run("should reject mixed piles that fit no pattern", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(takeMove(0, TokenSet{Black: 2, Blue: 1}, TokenSet{}))
		require.EqualError(t, err, "Invalid gem taking pattern")
	})

	t.Run("should enforce returning down to exactly ten", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 9}

		err := g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1, Green: 1}, TokenSet{}))
		require.EqualError(t, err, "Must return gems to have exactly 10 gems")

		err = g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1, Green: 1}, TokenSet{White: 1}))
		require.EqualError(t, err, "Must return gems to have exactly 10 gems", "Returning one of two surplus gems is not enough")

		require.NoError(t, g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1, Green: 1}, TokenSet{White: 2})))
	})

	t.Run("should reject returns while at or under ten", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 5}
		err := g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1, Green: 1}, TokenSet{White: 1}))
		require.EqualError(t, err, "Cannot return gems when you have 10 or fewer gems")
	})

	t.Run("should allow returning gems taken this move", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 8}
		require.NoError(t, g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1, Green: 1}, TokenSet{Green: 1})))
	})

	t.Run("should reject returning gems the player does not hold", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 8}
		err := g.ValidateMove(takeMove(0, TokenSet{Black: 1, Blue: 1, Green: 1}, TokenSet{Red: 1}))
		require.EqualError(t, err, "Cannot return more red gems than you have")
	})

	t.Run("should reject a noble rider on a take", func(t *testing.T) {
		g := newTestState()
		m := takeMove(0, TokenSet{Black: 1, Blue: 1, White: 1}, TokenSet{})
		m.NobleID = 4
		err := g.ValidateMove(m)
		require.EqualError(t, err, "Cannot specify a noble in a TAKE_GEMS move")
	})
}

func TestValidateReserve(t *testing.T) {
	t.Run("should accept a face-up card and blind deck tops", func(t *testing.T) {
		g := newTestState()
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 41}))
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 91}))
	})

	t.Run("should tolerate a blind reserve from an exhausted deck", func(t *testing.T) {
		g := newTestState()
		require.Empty(t, g.Decks[2])
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 93}))
	})

	t.Run("should cap the reserve pile at three", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Reserved = []Card{{ID: 11, Tier: 1}, {ID: 12, Tier: 1}, {ID: 13, Tier: 1}}
		err := g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 41})
		require.EqualError(t, err, "Player already has 3 reserved cards")
	})

	t.Run("should only reserve cards that are face up", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 5})
		require.EqualError(t, err, "Card 5 not found on board", "Card 5 is buried in the deck")
	})

	t.Run("should reject ids outside the card and handle ranges", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 94})
		require.EqualError(t, err, "Invalid card_id: 94")
		err = g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 0})
		require.EqualError(t, err, "Invalid card_id: 0")
	})

	t.Run("should demand a return when the joker overflows the hand", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 10}

		err := g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 41})
		require.EqualError(t, err, "Must return gems to have exactly 10 gems")

		require.NoError(t, g.ValidateMove(Move{
			Player: 0, Type: MoveReserve, CardID: 41, Returned: TokenSet{White: 1},
		}))
	})

	t.Run("should allow returning the incoming joker itself", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 10}
		require.NoError(t, g.ValidateMove(Move{
			Player: 0, Type: MoveReserve, CardID: 41, Returned: TokenSet{Joker: 1},
		}))
	})

	t.Run("should not demand returns when the joker stack is empty", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 10}
		g.Bank.Joker = 0
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 41}))
	})

	t.Run("should reject returning colors the player does not hold", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{White: 10}
		err := g.ValidateMove(Move{
			Player: 0, Type: MoveReserve, CardID: 41, Returned: TokenSet{Red: 1},
		})
		require.EqualError(t, err, "Cannot return more red gems than you have")
	})

	t.Run("should reject a noble rider on a reserve", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(Move{Player: 0, Type: MoveReserve, CardID: 41, NobleID: 4})
		require.EqualError(t, err, "Cannot specify a noble in a RESERVE_CARD move")
	})
}

func TestValidateBuy(t *testing.T) {
	t.Run("should accept an exact-cost auto payment", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Blue: 1, White: 1, Green: 1, Red: 1}
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 1, AutoPay: true}))
	})

	t.Run("should honor bonus discounts", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Bonuses = TokenSet{White: 2, Green: 1}
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 2, AutoPay: true}),
			"Fully discounted card should cost nothing")
	})

	t.Run("should cover shortfalls with jokers", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Green: 2, Joker: 2}
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 3, AutoPay: true}))
	})

	t.Run("should report missing jokers for an unaffordable auto buy", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Green: 2}
		err := g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 3, AutoPay: true})
		require.EqualError(t, err, "Not enough jokers to cover cost")
	})

	t.Run("should reject explicit payments the hand cannot supply", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Green: 2}
		err := g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 3, Payment: TokenSet{Green: 4}})
		require.EqualError(t, err, "Not enough green gems")
	})

	t.Run("should reject overpayment in a color", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Blue: 2, White: 1, Green: 1, Red: 1}
		err := g.ValidateMove(Move{
			Player: 0, Type: MoveBuy, CardID: 1,
			Payment: TokenSet{Blue: 2, White: 1, Green: 1, Red: 1},
		})
		require.EqualError(t, err, "Overpaying blue gems")
	})

	t.Run("should reject stray jokers in an explicit payment", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Blue: 1, White: 1, Green: 1, Red: 1, Joker: 1}
		err := g.ValidateMove(Move{
			Player: 0, Type: MoveBuy, CardID: 1,
			Payment: TokenSet{Blue: 1, White: 1, Green: 1, Red: 1, Joker: 1},
		})
		require.EqualError(t, err, "Using too many jokers")
	})

	t.Run("should only see face-up cards and own reservations", func(t *testing.T) {
		g := newTestState()
		err := g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 5, AutoPay: true})
		require.EqualError(t, err, "Card 5 not found", "Deck cards are not purchasable")

		g.Players[1].Reserved = []Card{{ID: 5, Tier: 1, Color: Red, Cost: TokenSet{Black: 3}}}
		err = g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 5, AutoPay: true})
		require.EqualError(t, err, "Card 5 not found", "Opponent reservations are not purchasable")
	})

	t.Run("should buy from the player's own reserve", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Reserved = []Card{{ID: 5, Tier: 1, Color: Red, Cost: TokenSet{Black: 3}}}
		g.Players[0].Tokens = TokenSet{Black: 3}
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 5, AutoPay: true}))
	})

	t.Run("should police the noble clause", func(t *testing.T) {
		g := newTestState()
		g.Players[0].Tokens = TokenSet{Blue: 1, White: 1, Green: 1, Red: 1}

		err := g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 1, AutoPay: true, NobleID: 4})
		require.EqualError(t, err, "No nobles qualify, but noble_id specified")

		// Buying green card 4 lifts the bonuses to green 4 / red 4,
		// which both noble 4 and noble 7 accept.
		g.Players[0].Bonuses = TokenSet{Green: 3, Red: 4}
		g.Players[0].Tokens = TokenSet{Red: 2, Black: 1}
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 4, AutoPay: true}))
		require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 4, AutoPay: true, NobleID: 7}))

		err = g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 4, AutoPay: true, NobleID: 9})
		require.EqualError(t, err, "Specified noble does not qualify")

		// With only noble 7 left, naming any other id is an error.
		g.Nobles = g.Nobles[1:2]
		err = g.ValidateMove(Move{Player: 0, Type: MoveBuy, CardID: 4, AutoPay: true, NobleID: 9})
		require.EqualError(t, err, "Noble_id doesn't match the qualifying noble")
	})
}

func TestValidateReveal(t *testing.T) {
	g := newTestState()
	err := g.ValidateMove(Move{Player: 0, Type: MoveReveal, CardID: 6})
	require.EqualError(t, err, "REVEAL command only valid in replay mode")

	g.ReplayMode = true
	require.NoError(t, g.ValidateMove(Move{Player: 0, Type: MoveReveal, CardID: 6}))
}

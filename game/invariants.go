package game

import (
	"fmt"
	"slices"
	"strings"
)

// CheckInvariants audits conservation laws the rules can never break:
// token totals, hand and reserve caps, card and noble uniqueness, and
// derived per-player bookkeeping. The referee runs it after every
// applied move; a failure is a bug in the engine room, not in a player.
func (g *GameState) CheckInvariants() error {
	total := g.Bank.Plus(g.Players[0].Tokens).Plus(g.Players[1].Tokens)
	for _, c := range AllColors {
		want := BankPerColor
		if c == Joker {
			want = BankJokers
		}
		if total.Get(c) != want {
			return fmt.Errorf("%s gem count incorrect", capitalize(c))
		}
	}

	for i := range g.Players {
		if n := g.Players[i].Tokens.Total(); n > MaxHandTokens {
			return fmt.Errorf("Player %d has %d gems (max %d)", i+1, n, MaxHandTokens)
		}
	}
	for i := range g.Players {
		if n := len(g.Players[i].Reserved); n > MaxReserved {
			return fmt.Errorf("Player %d has %d reserved cards (max %d)", i+1, n, MaxReserved)
		}
	}

	cardCount := map[int]int{}
	for tier := 0; tier < NumTiers; tier++ {
		for _, c := range g.FaceUp[tier] {
			cardCount[c.ID]++
		}
		for _, c := range g.Decks[tier] {
			cardCount[c.ID]++
		}
	}
	for i := range g.Players {
		for _, c := range g.Players[i].Purchased {
			cardCount[c.ID]++
		}
		for _, c := range g.Players[i].Reserved {
			cardCount[c.ID]++
		}
	}
	for _, id := range sortedKeys(cardCount) {
		if id != PlaceholderID && cardCount[id] > 1 {
			return fmt.Errorf("Card ID %d appears %d times", id, cardCount[id])
		}
	}

	for i := range g.Players {
		var expected TokenSet
		for _, c := range g.Players[i].Purchased {
			expected.Add(c.Color, 1)
		}
		if g.Players[i].Bonuses != expected {
			return fmt.Errorf("Player %d bonuses don't match purchased cards", i+1)
		}
	}

	for i := range g.Players {
		expected := 0
		for _, c := range g.Players[i].Purchased {
			expected += c.Points
		}
		for _, n := range g.Players[i].Nobles {
			expected += n.Points
		}
		if g.Players[i].Points != expected {
			return fmt.Errorf("Player %d has %d points, expected %d", i+1, g.Players[i].Points, expected)
		}
	}

	for tier := 1; tier <= NumTiers; tier++ {
		if n := len(g.FaceUp[tier-1]); n > FaceUpPerTier {
			return fmt.Errorf("Too many face-up level %d cards: %d", tier, n)
		}
	}

	nobleCount := map[int]int{}
	for _, n := range g.Nobles {
		nobleCount[n.ID]++
	}
	for i := range g.Players {
		for _, n := range g.Players[i].Nobles {
			nobleCount[n.ID]++
		}
	}
	for _, id := range sortedKeys(nobleCount) {
		if nobleCount[id] > 1 {
			return fmt.Errorf("Noble ID %d appears %d times", id, nobleCount[id])
		}
	}
	if n := len(g.Nobles); n > NoblesInPlay {
		return fmt.Errorf("Too many available nobles: %d", n)
	}

	return nil
}

func capitalize(c Color) string {
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

package game

import (
	"errors"
	"fmt"
	"slices"
)

// Apply mutates the state with a move that already passed ValidateMove.
// It returns an error only for failures validation cannot see, such as a
// BUY target that vanished; the referee treats those as faults too.
//
// Replay transcripts defer deck identities: a move that consumes a
// hidden deck card arms the pending-reveal record and leaves the turn
// with the mover until the matching REVEAL lands.
func (g *GameState) Apply(m Move) error {
	player := &g.Players[m.Player]

	switch m.Type {
	case MoveTake:
		player.Tokens = player.Tokens.Plus(m.Taken).Minus(m.Returned)
		g.Bank = g.Bank.Minus(m.Taken).Plus(m.Returned)

	case MoveReserve:
		g.applyReserve(m, player)

	case MoveBuy:
		if err := g.applyBuy(m, player); err != nil {
			return err
		}

	case MovePass:
		// Nothing to do beyond the turn switch.

	case MoveReveal:
		return g.applyReveal(m)

	default:
		return errors.New("Attempted to apply an invalid move")
	}

	if !g.Reveal.Expected {
		g.advanceTurn(m.Type == MovePass)
	}
	return nil
}

func (g *GameState) advanceTurn(passed bool) {
	if passed {
		g.Passes++
	} else {
		g.Passes = 0
	}
	g.CurrentPlayer = 1 - g.CurrentPlayer
	g.MoveNumber++
}

func (g *GameState) applyReserve(m Move, player *Player) {
	switch {
	case m.CardID >= 1 && m.CardID <= BlindBaseID:
		if tier, idx := g.locateFaceUp(m.CardID); tier > 0 {
			card := g.FaceUp[tier-1][idx]
			g.removeFaceUp(tier, idx)
			player.Reserved = append(player.Reserved, card)
		}

	case IsBlindReserveID(m.CardID):
		tier := BlindReserveTier(m.CardID)
		deck := g.Decks[tier-1]
		if len(deck) == 0 {
			break // tolerated: the joker and returns still go through
		}
		if g.ReplayMode {
			player.Reserved = append(player.Reserved, Card{ID: m.CardID, Tier: tier})
			g.Reveal.BlindPlayer = m.Player
			g.Reveal.BlindTier = tier
			g.Reveal.Expected = true
		} else {
			player.Reserved = append(player.Reserved, deck[len(deck)-1])
			g.Decks[tier-1] = deck[:len(deck)-1]
		}
	}

	if g.Bank.Joker > 0 {
		player.Tokens.Joker++
		g.Bank.Joker--
	}

	player.Tokens = player.Tokens.Minus(m.Returned)
	g.Bank = g.Bank.Plus(m.Returned)
}

func (g *GameState) applyBuy(m Move, player *Player) error {
	var card Card
	reservedIdx := -1
	faceTier, faceIdx := 0, -1

	if m.CardID <= PlaceholderID || m.CardID > BlindBaseID {
		return fmt.Errorf("Card ID %d not found in board or reserved", m.CardID)
	}
	for i := range player.Reserved {
		if player.Reserved[i].ID == m.CardID {
			card = player.Reserved[i]
			reservedIdx = i
			break
		}
	}
	if reservedIdx < 0 {
		faceTier, faceIdx = g.locateFaceUp(m.CardID)
		if faceTier == 0 {
			return fmt.Errorf("Card ID %d not found in board or reserved", m.CardID)
		}
		card = g.FaceUp[faceTier-1][faceIdx]
	}

	payment := m.Payment
	if m.AutoPay {
		payment = autoPayment(effectiveCost(card.Cost, player.Bonuses), player.Tokens)
	}
	player.Tokens = player.Tokens.Minus(payment)
	g.Bank = g.Bank.Plus(payment)

	player.Purchased = append(player.Purchased, card)
	player.Bonuses.Add(card.Color, 1)
	player.Points += card.Points

	if reservedIdx >= 0 {
		player.Reserved = slices.Delete(player.Reserved, reservedIdx, reservedIdx+1)
	} else {
		g.removeFaceUp(faceTier, faceIdx)
	}

	g.assignNoble(m.Player, m.NobleID)
	return nil
}

// applyReveal resolves a deferred deck identity in a replay transcript:
// either the pending blind reserve or the empty face-up slot the deck
// owes a card. Consuming a pending reveal performs the turn switch the
// triggering move deferred.
func (g *GameState) applyReveal(m Move) error {
	if !g.ReplayMode {
		return errors.New("REVEAL command only valid in replay mode")
	}

	tier, card := g.findInDecks(m.CardID)
	if tier == 0 {
		return fmt.Errorf("Card %d not found for reveal", m.CardID)
	}
	hadPending := g.Reveal.Expected

	if g.Reveal.BlindPlayer >= 0 && g.Reveal.BlindTier == tier {
		g.removeFromDeck(tier, m.CardID)
		reserved := g.Players[g.Reveal.BlindPlayer].Reserved
		if len(reserved) > 0 {
			reserved[len(reserved)-1] = card
		}
		g.Reveal.BlindPlayer = -1
		g.Reveal.BlindTier = 0
	} else {
		g.removeFromDeck(tier, m.CardID)
		row := g.FaceUp[tier-1]
		pos := -1
		if last := g.Reveal.LastRemoved[tier-1]; last >= 0 {
			pos = min(last, len(row))
			g.Reveal.LastRemoved[tier-1] = -1
		}
		switch {
		case pos >= 0 && pos < len(row) && row[pos].IsPlaceholder():
			row[pos] = card
		case pos >= 0:
			g.FaceUp[tier-1] = slices.Insert(row, pos, card)
		default:
			g.FaceUp[tier-1] = append(row, card)
		}
	}

	g.Reveal.Expected = false
	if hadPending {
		g.advanceTurn(false)
	}
	return nil
}

// assignNoble awards a noble after a purchase. With several qualifiers
// and no explicit choice the lowest id wins.
func (g *GameState) assignNoble(playerIdx, nobleID int) {
	player := &g.Players[playerIdx]
	var qualifying []int
	for i, n := range g.Nobles {
		if n.Qualifies(player.Bonuses) {
			qualifying = append(qualifying, i)
		}
	}
	if len(qualifying) == 0 {
		return
	}

	idx := qualifying[0]
	if len(qualifying) > 1 {
		if nobleID > 0 {
			idx = -1
			for _, i := range qualifying {
				if g.Nobles[i].ID == nobleID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return
			}
		} else {
			for _, i := range qualifying[1:] {
				if g.Nobles[i].ID < g.Nobles[idx].ID {
					idx = i
				}
			}
		}
	}

	noble := g.Nobles[idx]
	player.Nobles = append(player.Nobles, noble)
	player.Points += noble.Points
	g.Nobles = slices.Delete(g.Nobles, idx, idx+1)
}

// locateFaceUp returns the row tier and slot of the face-up card with
// the given id, or (0, -1).
func (g *GameState) locateFaceUp(id int) (tier, idx int) {
	if id <= PlaceholderID || id > BlindBaseID {
		return 0, -1
	}
	for t := 1; t <= NumTiers; t++ {
		for i, c := range g.FaceUp[t-1] {
			if c.ID == id {
				return t, i
			}
		}
	}
	return 0, -1
}

// removeFaceUp empties a face-up slot and refills it: play mode draws
// the deck top; replay mode leaves a placeholder and defers the draw to
// REVEAL; an exhausted deck leaves the placeholder for good.
func (g *GameState) removeFaceUp(tier, idx int) {
	g.Reveal.LastRemoved[tier-1] = idx
	deck := g.Decks[tier-1]
	switch {
	case len(deck) == 0:
		g.FaceUp[tier-1][idx] = Card{ID: PlaceholderID, Tier: tier}
	case g.ReplayMode:
		g.FaceUp[tier-1][idx] = Card{ID: PlaceholderID, Tier: tier}
		g.Reveal.Expected = true
	default:
		g.FaceUp[tier-1][idx] = deck[len(deck)-1]
		g.Decks[tier-1] = deck[:len(deck)-1]
	}
}

func (g *GameState) findInDecks(id int) (int, Card) {
	for t := 1; t <= NumTiers; t++ {
		for _, c := range g.Decks[t-1] {
			if c.ID == id {
				return t, c
			}
		}
	}
	return 0, Card{}
}

func (g *GameState) removeFromDeck(tier, id int) {
	deck := g.Decks[tier-1]
	for i, c := range deck {
		if c.ID == id {
			g.Decks[tier-1] = slices.Delete(deck, i, i+1)
			return
		}
	}
}

package game

import (
	"errors"
	"fmt"
	"slices"
)

// ValidateMove checks a parsed move against the current state. It never
// mutates state; a nil return means the move can be applied. The error
// text is the reason surfaced to the offending player.
func (g *GameState) ValidateMove(m Move) error {
	if m.Player != g.CurrentPlayer {
		return errors.New("Not your turn")
	}
	switch m.Type {
	case MoveTake:
		return g.validateTake(m)
	case MoveReserve:
		return g.validateReserve(m)
	case MoveBuy:
		return g.validateBuy(m)
	case MovePass:
		return nil
	case MoveReveal:
		if !g.ReplayMode {
			return errors.New("REVEAL command only valid in replay mode")
		}
		return nil
	}
	return errors.New("Invalid move type")
}

func (g *GameState) validateTake(m Move) error {
	player := &g.Players[m.Player]
	taken := m.Taken
	returned := m.Returned

	if taken.Joker > 0 {
		return errors.New("Cannot take joker gems directly")
	}
	totalTaken := taken.Total()
	if totalTaken == 0 {
		return errors.New("Must take at least 1 gem")
	}

	differentColors := 0
	maxColor := Color("")
	maxCount := 0
	availableColors := 0
	for _, c := range Colors {
		if n := taken.Get(c); n > 0 {
			differentColors++
			if n > maxCount {
				maxCount = n
				maxColor = c
			}
		}
		if g.Bank.Get(c) > 0 {
			availableColors++
		}
	}

	for _, c := range Colors {
		if taken.Get(c) > g.Bank.Get(c) {
			return fmt.Errorf("Not enough %s gems in bank", c)
		}
	}

	switch {
	case totalTaken == 2 && differentColors == 1:
		if g.Bank.Get(maxColor) < 4 {
			return errors.New("Need 4+ gems in bank to take 2 of same color")
		}
	case totalTaken == differentColors:
		expected := min(3, availableColors)
		if totalTaken != expected {
			return fmt.Errorf("Must take %d gems when taking different colors (found %d colors available)",
				expected, availableColors)
		}
		for _, c := range Colors {
			if taken.Get(c) > 1 {
				return errors.New("Can only take 1 of each color when taking different colors")
			}
		}
	default:
		return errors.New("Invalid gem taking pattern")
	}

	if err := validateReturnCap(player.Tokens.Total(), totalTaken, returned.Total()); err != nil {
		return err
	}

	// Returns may spend gems taken this very move.
	for _, c := range Colors {
		if returned.Get(c) > player.Tokens.Get(c)+taken.Get(c) {
			return fmt.Errorf("Cannot return more %s gems than you have", c)
		}
	}
	if returned.Joker > player.Tokens.Joker {
		return errors.New("Cannot return more joker gems than you have")
	}

	if m.NobleID > 0 {
		return errors.New("Cannot specify a noble in a TAKE_GEMS move")
	}
	return nil
}

func (g *GameState) validateReserve(m Move) error {
	player := &g.Players[m.Player]
	returned := m.Returned

	if len(player.Reserved) >= MaxReserved {
		return errors.New("Player already has 3 reserved cards")
	}

	switch {
	case m.CardID >= 1 && m.CardID <= BlindBaseID:
		if g.findFaceUp(m.CardID) == nil {
			return fmt.Errorf("Card %d not found on board", m.CardID)
		}
	case IsBlindReserveID(m.CardID):
		// Deck emptiness is tolerated; the apply step simply places no card.
	default:
		return fmt.Errorf("Invalid card_id: %d", m.CardID)
	}

	jokerGained := 0
	if g.Bank.Joker > 0 {
		jokerGained = 1
	}
	if err := validateReturnCap(player.Tokens.Total(), jokerGained, returned.Total()); err != nil {
		return err
	}

	for _, c := range Colors {
		if returned.Get(c) > player.Tokens.Get(c) {
			return fmt.Errorf("Cannot return more %s gems than you have", c)
		}
	}
	if returned.Joker > player.Tokens.Joker+jokerGained {
		return errors.New("Cannot return more joker gems than you have")
	}

	if m.NobleID > 0 {
		return errors.New("Cannot specify a noble in a RESERVE_CARD move")
	}
	return nil
}

// validateReturnCap enforces the 10-token hand limit: overflowing hands
// must return down to exactly the cap, everyone else returns nothing.
func validateReturnCap(held, gained, returnedTotal int) error {
	if held+gained > MaxHandTokens {
		if held+gained-returnedTotal != MaxHandTokens {
			return errors.New("Must return gems to have exactly 10 gems")
		}
	} else if returnedTotal > 0 {
		return errors.New("Cannot return gems when you have 10 or fewer gems")
	}
	return nil
}

func (g *GameState) validateBuy(m Move) error {
	player := &g.Players[m.Player]

	card := g.findPurchasable(m.Player, m.CardID)
	if card == nil {
		return fmt.Errorf("Card %d not found", m.CardID)
	}

	effective := effectiveCost(card.Cost, player.Bonuses)
	payment := m.Payment
	if m.AutoPay {
		payment = autoPayment(effective, player.Tokens)
	}

	for _, c := range AllColors {
		if payment.Get(c) > player.Tokens.Get(c) {
			return fmt.Errorf("Not enough %s gems", c)
		}
	}

	jokersUsed := 0
	for _, c := range Colors {
		switch {
		case payment.Get(c) < effective.Get(c):
			jokersUsed += effective.Get(c) - payment.Get(c)
		case payment.Get(c) > effective.Get(c):
			return fmt.Errorf("Overpaying %s gems", c)
		}
	}
	if jokersUsed > payment.Joker {
		return errors.New("Not enough jokers to cover cost")
	}
	if payment.Joker > jokersUsed {
		return errors.New("Using too many jokers")
	}

	after := player.Bonuses
	after.Add(card.Color, 1)
	return g.validateNobleChoice(after, m.NobleID)
}

// validateNobleChoice checks the NOBLE clause against the nobles the
// bonus vector will qualify for once the purchase lands.
func (g *GameState) validateNobleChoice(bonusesAfter TokenSet, nobleID int) error {
	var qualifying []int
	for _, n := range g.Nobles {
		if n.Qualifies(bonusesAfter) {
			qualifying = append(qualifying, n.ID)
		}
	}
	switch len(qualifying) {
	case 0:
		if nobleID > 0 {
			return errors.New("No nobles qualify, but noble_id specified")
		}
	case 1:
		if nobleID > 0 && nobleID != qualifying[0] {
			return errors.New("Noble_id doesn't match the qualifying noble")
		}
	default:
		if nobleID > 0 && !slices.Contains(qualifying, nobleID) {
			return errors.New("Specified noble does not qualify")
		}
	}
	return nil
}

// effectiveCost discounts a card cost by the player's bonuses, floored
// at zero per color. Jokers never appear in costs.
func effectiveCost(cost, bonuses TokenSet) TokenSet {
	var eff TokenSet
	for _, c := range Colors {
		eff.Add(c, max(0, cost.Get(c)-bonuses.Get(c)))
	}
	return eff
}

// autoPayment pays each color with matching gems first and covers any
// remaining deficit with jokers, as far as the hand allows.
func autoPayment(effective, held TokenSet) TokenSet {
	var payment TokenSet
	deficit := 0
	for _, c := range Colors {
		pay := min(effective.Get(c), held.Get(c))
		payment.Add(c, pay)
		deficit += effective.Get(c) - pay
	}
	payment.Joker = min(deficit, held.Joker)
	return payment
}

// findFaceUp returns the face-up card with the given real id, or nil.
func (g *GameState) findFaceUp(id int) *Card {
	if id <= PlaceholderID || id > BlindBaseID {
		return nil
	}
	for tier := range g.FaceUp {
		for i := range g.FaceUp[tier] {
			if g.FaceUp[tier][i].ID == id {
				return &g.FaceUp[tier][i]
			}
		}
	}
	return nil
}

// findPurchasable searches the player's reserved pile first, then the
// face-up rows. Placeholders and blind handles never match.
func (g *GameState) findPurchasable(player, id int) *Card {
	if id <= PlaceholderID || id > BlindBaseID {
		return nil
	}
	reserved := g.Players[player].Reserved
	for i := range reserved {
		if reserved[i].ID == id {
			return &reserved[i]
		}
	}
	return g.findFaceUp(id)
}

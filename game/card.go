package game

// Card is a development card. A zero ID marks a placeholder: an empty
// face-up slot, or a reserved card whose identity the viewer may not see.
type Card struct {
	ID     int      `json:"id"`
	Tier   int      `json:"level"` // 1..3
	Color  Color    `json:"color"` // bonus color granted when purchased
	Points int      `json:"points"`
	Cost   TokenSet `json:"cost"`
}

// IsPlaceholder reports whether the card is an empty-slot marker.
func (c Card) IsPlaceholder() bool {
	return c.ID == PlaceholderID
}

// EffectiveCost returns the card's cost after the holder's per-color
// bonus discounts, floored at zero.
func (c Card) EffectiveCost(bonuses TokenSet) TokenSet {
	return effectiveCost(c.Cost, bonuses)
}

// Noble is a patron tile awarded automatically once a player's bonuses
// meet its requirement.
type Noble struct {
	ID          int      `json:"id"`
	Points      int      `json:"points"`
	Requirement TokenSet `json:"requirement"`
}

// Qualifies reports whether the given bonuses satisfy the noble's
// requirement in every color.
func (n Noble) Qualifies(bonuses TokenSet) bool {
	for _, c := range Colors {
		if bonuses.Get(c) < n.Requirement.Get(c) {
			return false
		}
	}
	return true
}

// IsBlindReserveID reports whether id is one of the deck-top handles
// 91, 92, 93 used to reserve sight-unseen from a tier's deck.
func IsBlindReserveID(id int) bool {
	return id > BlindBaseID && id <= BlindBaseID+NumTiers
}

// BlindReserveTier returns the tier a blind reserve handle addresses.
func BlindReserveTier(id int) int {
	return id - BlindBaseID
}

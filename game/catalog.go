package game

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog holds the full card and noble sets a game is dealt from.
// Catalog order is authoritative: replay setup refills decks in it.
type Catalog struct {
	Cards  []Card
	Nobles []Noble

	cardByID  map[int]Card
	nobleByID map[int]Noble
}

// LoadCatalog reads the card and noble sets from two JSON files.
func LoadCatalog(cardsPath, noblesPath string) (*Catalog, error) {
	var cards []Card
	if err := readJSONFile(cardsPath, &cards); err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	var nobles []Noble
	if err := readJSONFile(noblesPath, &nobles); err != nil {
		return nil, fmt.Errorf("load nobles: %w", err)
	}
	return NewCatalog(cards, nobles)
}

// NewCatalog builds a catalog from in-memory sets and checks them for
// internal consistency.
func NewCatalog(cards []Card, nobles []Noble) (*Catalog, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("catalog has no cards")
	}
	if len(nobles) == 0 {
		return nil, fmt.Errorf("catalog has no nobles")
	}
	c := &Catalog{
		Cards:     cards,
		Nobles:    nobles,
		cardByID:  make(map[int]Card, len(cards)),
		nobleByID: make(map[int]Noble, len(nobles)),
	}
	for _, card := range cards {
		if card.ID <= 0 || card.ID > BlindBaseID {
			return nil, fmt.Errorf("card id %d out of range 1..%d", card.ID, BlindBaseID)
		}
		if card.Tier < 1 || card.Tier > NumTiers {
			return nil, fmt.Errorf("card %d has level %d", card.ID, card.Tier)
		}
		if card.Color == Joker || card.Cost.Joker != 0 {
			return nil, fmt.Errorf("card %d uses the joker color", card.ID)
		}
		if _, dup := c.cardByID[card.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %d", card.ID)
		}
		c.cardByID[card.ID] = card
	}
	for _, n := range nobles {
		if n.ID <= 0 {
			return nil, fmt.Errorf("noble id %d out of range", n.ID)
		}
		if _, dup := c.nobleByID[n.ID]; dup {
			return nil, fmt.Errorf("duplicate noble id %d", n.ID)
		}
		c.nobleByID[n.ID] = n
	}
	return c, nil
}

// Card looks a card up by id.
func (c *Catalog) Card(id int) (Card, bool) {
	card, ok := c.cardByID[id]
	return card, ok
}

// Noble looks a noble up by id.
func (c *Catalog) Noble(id int) (Noble, bool) {
	n, ok := c.nobleByID[id]
	return n, ok
}

// CardsOfTier returns the catalog's cards of one tier in catalog order.
func (c *Catalog) CardsOfTier(tier int) []Card {
	var out []Card
	for _, card := range c.Cards {
		if card.Tier == tier {
			out = append(out, card)
		}
	}
	return out
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

package game

import (
	"encoding/json"
	"fmt"
)

// DecodeView reconstructs a state from one line of view JSON, resolving
// card and noble ids against the catalog. Opponent reserved handles
// 91/92/93 become tier-tagged placeholders; deck contents are not on
// the wire and stay empty for the belief layer to fill in. The second
// return value is the view's "you" field, zero for an omniscient view.
func DecodeView(line string, cat *Catalog) (*GameState, int, error) {
	var ws wireState
	if err := json.Unmarshal([]byte(line), &ws); err != nil {
		return nil, 0, fmt.Errorf("decode state: %w", err)
	}
	if ws.ActivePlayerID < 1 || ws.ActivePlayerID > NumPlayers {
		return nil, 0, fmt.Errorf("decode state: active_player_id %d out of range", ws.ActivePlayerID)
	}

	g := newEmptyState()
	g.CurrentPlayer = ws.ActivePlayerID - 1
	g.MoveNumber = ws.Move - 1
	g.Bank = fromWireTokens(ws.Board.Gems)

	rows := [NumTiers][]int{ws.Board.FaceUp.Level1, ws.Board.FaceUp.Level2, ws.Board.FaceUp.Level3}
	for tier := 1; tier <= NumTiers; tier++ {
		row := make([]Card, 0, len(rows[tier-1]))
		for _, id := range rows[tier-1] {
			if id == PlaceholderID {
				row = append(row, Card{ID: PlaceholderID, Tier: tier})
				continue
			}
			card, ok := cat.Card(id)
			if !ok {
				return nil, 0, fmt.Errorf("decode state: unknown card id %d in level%d row", id, tier)
			}
			row = append(row, card)
		}
		g.FaceUp[tier-1] = row
	}

	g.Nobles = make([]Noble, 0, len(ws.Board.Nobles))
	for _, id := range ws.Board.Nobles {
		n, ok := cat.Noble(id)
		if !ok {
			return nil, 0, fmt.Errorf("decode state: unknown noble id %d", id)
		}
		g.Nobles = append(g.Nobles, n)
	}

	for i := range g.Players {
		wp := ws.Players[i]
		p := &g.Players[i]
		p.Tokens = fromWireTokens(wp.Gems)
		p.Bonuses = fromWireDiscounts(wp.Discounts)
		p.Points = wp.Points
		p.TimeBank = wp.TimeBank

		p.Reserved = make([]Card, 0, len(wp.Reserved))
		for _, id := range wp.Reserved {
			switch {
			case IsBlindReserveID(id):
				p.Reserved = append(p.Reserved, Card{ID: id, Tier: BlindReserveTier(id)})
			default:
				card, ok := cat.Card(id)
				if !ok {
					return nil, 0, fmt.Errorf("decode state: unknown reserved card id %d", id)
				}
				p.Reserved = append(p.Reserved, card)
			}
		}

		p.Purchased = make([]Card, 0, len(wp.Purchased))
		for _, id := range wp.Purchased {
			card, ok := cat.Card(id)
			if !ok {
				return nil, 0, fmt.Errorf("decode state: unknown purchased card id %d", id)
			}
			p.Purchased = append(p.Purchased, card)
		}

		p.Nobles = make([]Noble, 0, len(wp.Nobles))
		for _, id := range wp.Nobles {
			n, ok := cat.Noble(id)
			if !ok {
				return nil, 0, fmt.Errorf("decode state: unknown owned noble id %d", id)
			}
			p.Nobles = append(p.Nobles, n)
		}
	}

	return g, ws.You, nil
}

// PeekTurn extracts the seat and active player from a view line without
// resolving the full state, so an engine can drop lines that are not
// its turn before paying for a decode. ok is false when the line is not
// a seated view.
func PeekTurn(line string) (you, active int, ok bool) {
	var peek struct {
		You    int `json:"you"`
		Active int `json:"active_player_id"`
	}
	if err := json.Unmarshal([]byte(line), &peek); err != nil {
		return 0, 0, false
	}
	if peek.You < 1 || peek.Active < 1 {
		return 0, 0, false
	}
	return peek.You, peek.Active, true
}

func fromWireTokens(w wireTokens) TokenSet {
	return TokenSet{
		Black: w.Black,
		Blue:  w.Blue,
		White: w.White,
		Green: w.Green,
		Red:   w.Red,
		Joker: w.Joker,
	}
}

func fromWireDiscounts(w wireDiscounts) TokenSet {
	return TokenSet{
		Black: w.Black,
		Blue:  w.Blue,
		White: w.White,
		Green: w.Green,
		Red:   w.Red,
	}
}

package game

import "encoding/json"

// Wire mirror types. Struct field order pins the JSON key order engines
// depend on; keep it frozen.

type wireTokens struct {
	Black int `json:"black"`
	Blue  int `json:"blue"`
	Green int `json:"green"`
	Red   int `json:"red"`
	White int `json:"white"`
	Joker int `json:"joker"`
}

type wireDiscounts struct {
	Black int `json:"black"`
	Blue  int `json:"blue"`
	Green int `json:"green"`
	Red   int `json:"red"`
	White int `json:"white"`
}

type wirePlayer struct {
	ID        int           `json:"id"`
	Points    int           `json:"points"`
	Gems      wireTokens    `json:"gems"`
	Discounts wireDiscounts `json:"discounts"`
	Reserved  []int         `json:"reserved_card_ids"`
	Purchased []int         `json:"purchased_card_ids"`
	Nobles    []int         `json:"owned_noble_ids"`
	TimeBank  float64       `json:"time_bank"`
}

type wireFaceUp struct {
	Level1 []int `json:"level1"`
	Level2 []int `json:"level2"`
	Level3 []int `json:"level3"`
}

type wireBoard struct {
	Gems   wireTokens `json:"gems"`
	FaceUp wireFaceUp `json:"face_up_cards"`
	Nobles []int      `json:"nobles"`
}

type wireState struct {
	ActivePlayerID int           `json:"active_player_id"`
	You            int           `json:"you,omitempty"`
	Move           int           `json:"move"`
	Players        [2]wirePlayer `json:"players"`
	Board          wireBoard     `json:"board"`
}

// EncodeView serializes the state as one line of JSON for the given
// viewer. Viewer 0 is the omniscient referee view: no "you" field and
// nothing masked. Viewers 1 and 2 see the opponent's reserved cards
// replaced by the synthetic handle 90+tier.
func (g *GameState) EncodeView(viewer int) string {
	ws := wireState{
		ActivePlayerID: g.CurrentPlayer + 1,
		You:            viewer,
		Move:           g.MoveNumber + 1,
		Board: wireBoard{
			Gems: toWireTokens(g.Bank),
			FaceUp: wireFaceUp{
				Level1: cardIDs(g.FaceUp[0]),
				Level2: cardIDs(g.FaceUp[1]),
				Level3: cardIDs(g.FaceUp[2]),
			},
			Nobles: nobleIDs(g.Nobles),
		},
	}
	for i := range g.Players {
		p := &g.Players[i]
		wp := wirePlayer{
			ID:        i + 1,
			Points:    p.Points,
			Gems:      toWireTokens(p.Tokens),
			Discounts: toWireDiscounts(p.Bonuses),
			Reserved:  make([]int, 0, len(p.Reserved)),
			Purchased: cardIDs(p.Purchased),
			Nobles:    nobleIDs(p.Nobles),
			TimeBank:  p.TimeBank,
		}
		for _, c := range p.Reserved {
			if viewer != 0 && i+1 != viewer {
				wp.Reserved = append(wp.Reserved, BlindBaseID+c.Tier)
			} else {
				wp.Reserved = append(wp.Reserved, c.ID)
			}
		}
		ws.Players[i] = wp
	}

	out, _ := json.Marshal(ws)
	return string(out)
}

func toWireTokens(t TokenSet) wireTokens {
	return wireTokens{
		Black: t.Black,
		Blue:  t.Blue,
		Green: t.Green,
		Red:   t.Red,
		White: t.White,
		Joker: t.Joker,
	}
}

func toWireDiscounts(t TokenSet) wireDiscounts {
	return wireDiscounts{
		Black: t.Black,
		Blue:  t.Blue,
		Green: t.Green,
		Red:   t.Red,
		White: t.White,
	}
}

func cardIDs(cards []Card) []int {
	ids := make([]int, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func nobleIDs(nobles []Noble) []int {
	ids := make([]int, len(nobles))
	for i, n := range nobles {
		ids[i] = n.ID
	}
	return ids
}

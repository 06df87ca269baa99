package game

// maxReturnCombos caps the overflow-return expansion per base move so
// degenerate hands cannot blow up the move list.
const maxReturnCombos = 50

// LegalMoves enumerates every valid move for the current player, in a
// fixed order: purchases (face-up rows low tier first, then reserved),
// reservations (rows, then blind deck tops), gem takes (doubles, then
// spreads), and PASS only when nothing else is legal. Every candidate
// passes through ValidateMove, so the list is sound by construction.
func (g *GameState) LegalMoves() []Move {
	p := g.CurrentPlayer
	player := &g.Players[p]
	var moves []Move

	addIfValid := func(m Move) {
		if g.ValidateMove(m) == nil {
			moves = append(moves, m)
		}
	}

	// expand appends the move as-is while the hand stays within the cap,
	// otherwise one variant per way of returning down to exactly the cap.
	expand := func(m Move, gained TokenSet) {
		if player.Tokens.Total()+gained.Total() > MaxHandTokens {
			pool := player.Tokens.Plus(gained)
			for _, r := range returnCombinations(pool, pool.Total()-MaxHandTokens) {
				rm := m
				rm.Returned = r
				addIfValid(rm)
			}
		} else {
			addIfValid(m)
		}
	}

	handleBuy := func(card Card) {
		if card.ID == PlaceholderID {
			return
		}
		after := player.Bonuses
		after.Add(card.Color, 1)
		var qualifying []int
		for _, n := range g.Nobles {
			if n.Qualifies(after) {
				qualifying = append(qualifying, n.ID)
			}
		}
		m := Move{Player: p, Type: MoveBuy, CardID: card.ID, AutoPay: true}
		if len(qualifying) > 1 {
			for _, nid := range qualifying {
				nm := m
				nm.NobleID = nid
				addIfValid(nm)
			}
		} else {
			addIfValid(m)
		}
	}
	for tier := 0; tier < NumTiers; tier++ {
		for _, c := range g.FaceUp[tier] {
			handleBuy(c)
		}
	}
	for _, c := range player.Reserved {
		handleBuy(c)
	}

	if len(player.Reserved) < MaxReserved {
		jokerGain := TokenSet{}
		if g.Bank.Joker > 0 {
			jokerGain.Joker = 1
		}
		handleReserve := func(cardID int) {
			expand(Move{Player: p, Type: MoveReserve, CardID: cardID}, jokerGain)
		}
		for tier := 0; tier < NumTiers; tier++ {
			for _, c := range g.FaceUp[tier] {
				if c.ID > PlaceholderID {
					handleReserve(c.ID)
				}
			}
		}
		// Blind reserves are pointless against an exhausted deck and are
		// never offered for one.
		for tier := 1; tier <= NumTiers; tier++ {
			if len(g.Decks[tier-1]) > 0 {
				handleReserve(BlindBaseID + tier)
			}
		}
	}

	for _, c := range Colors {
		var taken TokenSet
		taken.Add(c, 2)
		expand(Move{Player: p, Type: MoveTake, Taken: taken}, taken)
	}

	availableColors := 0
	for _, c := range Colors {
		if g.Bank.Get(c) > 0 {
			availableColors++
		}
	}
	spread := func(picked ...Color) {
		var taken TokenSet
		for _, c := range picked {
			taken.Add(c, 1)
		}
		expand(Move{Player: p, Type: MoveTake, Taken: taken}, taken)
	}
	switch min(3, availableColors) {
	case 3:
		for i := 0; i < len(Colors); i++ {
			for j := i + 1; j < len(Colors); j++ {
				for k := j + 1; k < len(Colors); k++ {
					spread(Colors[i], Colors[j], Colors[k])
				}
			}
		}
	case 2:
		for i := 0; i < len(Colors); i++ {
			for j := i + 1; j < len(Colors); j++ {
				spread(Colors[i], Colors[j])
			}
		}
	case 1:
		for i := 0; i < len(Colors); i++ {
			spread(Colors[i])
		}
	}

	if len(moves) == 0 {
		moves = append(moves, Move{Player: p, Type: MovePass})
	}
	return moves
}

// returnCombinations lists every way to give back exactly need tokens
// out of pool, walking colors in canonical order with the joker last.
// The list is capped at maxReturnCombos.
func returnCombinations(pool TokenSet, need int) []TokenSet {
	var out []TokenSet
	var rec func(cur TokenSet, need, idx int)
	rec = func(cur TokenSet, need, idx int) {
		if len(out) >= maxReturnCombos {
			return
		}
		if need <= 0 {
			out = append(out, cur)
			return
		}
		if idx >= len(AllColors) {
			return
		}
		c := AllColors[idx]
		for i := 0; i <= min(need, pool.Get(c)); i++ {
			next := cur
			next.Add(c, i)
			rec(next, need-i, idx+1)
			if len(out) >= maxReturnCombos {
				return
			}
		}
	}
	rec(TokenSet{}, need, 0)
	return out
}

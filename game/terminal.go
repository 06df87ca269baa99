package game

// IsOver reports whether the game has ended: both players passed back
// to back, or someone reached the point threshold and the round is
// complete. Player 1 moves second, so their crossing ends the game at
// once while player 0's crossing waits for the reply move.
func (g *GameState) IsOver() bool {
	if g.Passes >= PassesToEnd {
		return true
	}
	p0 := g.Players[0].Points >= WinningPoints
	p1 := g.Players[1].Points >= WinningPoints
	switch {
	case !p0 && !p1:
		return false
	case p0 && p1:
		return true
	case p1:
		return true
	default:
		return g.CurrentPlayer == 0
	}
}

// Winner returns the winning player index, or -1 for a tie. A game
// stalled out by consecutive passes is always a tie. Otherwise points
// decide, then fewest purchased cards.
func (g *GameState) Winner() int {
	if g.Passes >= PassesToEnd {
		return -1
	}
	if g.Players[0].Points != g.Players[1].Points {
		if g.Players[0].Points > g.Players[1].Points {
			return 0
		}
		return 1
	}
	if len(g.Players[0].Purchased) != len(g.Players[1].Purchased) {
		if len(g.Players[0].Purchased) < len(g.Players[1].Purchased) {
			return 0
		}
		return 1
	}
	return -1
}

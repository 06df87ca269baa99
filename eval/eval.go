// Package eval provides the linear position evaluator searchers score
// leaf states with. A Weights value pairs every self term with an
// opponent term, plus shaping terms for card efficiency and directional
// commitment; its Score method satisfies game.Evaluate.
package eval

import (
	"math"

	"splendor/game"
)

// efficiencyThreshold splits cards worth committing to from filler:
// points per required gem at or above it score positively.
const efficiencyThreshold = 0.24

// Weights parameterizes the linear evaluator. Field order is
// load-bearing: ApplyOrdered maps positional engine arguments onto it.
type Weights struct {
	PointSelf         float64 `mapstructure:"point_self"`
	PointOpp          float64 `mapstructure:"point_opp"`
	GemSelf           float64 `mapstructure:"gem_self"`
	GemOpp            float64 `mapstructure:"gem_opp"`
	BonusSelf         float64 `mapstructure:"bonus_self"`
	BonusOpp          float64 `mapstructure:"bonus_opp"`
	ReservedSelf      float64 `mapstructure:"reserved_self"`
	ReservedOpp       float64 `mapstructure:"reserved_opp"`
	NobleProgressSelf float64 `mapstructure:"noble_progress_self"`
	NobleProgressOpp  float64 `mapstructure:"noble_progress_opp"`
	AffordableSelf    float64 `mapstructure:"affordable_self"`
	AffordableOpp     float64 `mapstructure:"affordable_opp"`
	WinBonus          float64 `mapstructure:"win_bonus"`
	LossPenalty       float64 `mapstructure:"loss_penalty"`
	TurnPenalty       float64 `mapstructure:"turn_penalty"`
	Efficiency        float64 `mapstructure:"efficiency"`
	Commitment        float64 `mapstructure:"commitment"`
}

// DefaultWeights returns the tuned baseline every profile and weight
// file starts from.
func DefaultWeights() Weights {
	return Weights{
		PointSelf:         20.0,
		PointOpp:          20.0,
		GemSelf:           0.25,
		GemOpp:            0.25,
		BonusSelf:         1.2,
		BonusOpp:          1.2,
		ReservedSelf:      0.6,
		ReservedOpp:       0.6,
		NobleProgressSelf: 0.9,
		NobleProgressOpp:  0.9,
		AffordableSelf:    0.8,
		AffordableOpp:     0.8,
		WinBonus:          1000.0,
		LossPenalty:       1000.0,
		TurnPenalty:       0.01,
		Efficiency:        1.0,
		Commitment:        1.0,
	}
}

// ApplyOrdered overwrites weights from values in struct field order, the
// convention engine command lines use. Values beyond the last field are
// ignored.
func (w *Weights) ApplyOrdered(values []float64) {
	slots := []*float64{
		&w.PointSelf, &w.PointOpp,
		&w.GemSelf, &w.GemOpp,
		&w.BonusSelf, &w.BonusOpp,
		&w.ReservedSelf, &w.ReservedOpp,
		&w.NobleProgressSelf, &w.NobleProgressOpp,
		&w.AffordableSelf, &w.AffordableOpp,
		&w.WinBonus, &w.LossPenalty,
		&w.TurnPenalty, &w.Efficiency, &w.Commitment,
	}
	for i, v := range values {
		if i >= len(slots) {
			return
		}
		*slots[i] = v
	}
}

// Score evaluates the state from player's perspective, higher is
// better. Terminal states additionally earn the win bonus or pay the
// loss penalty; ties earn neither.
func (w Weights) Score(g *game.GameState, player int) float64 {
	opp := 1 - player
	self := &g.Players[player]
	enemy := &g.Players[opp]

	score := 0.0

	score += w.PointSelf * float64(self.Points)
	score -= w.PointOpp * float64(enemy.Points)

	score += w.GemSelf * float64(weightedGems(self.Tokens))
	score -= w.GemOpp * float64(weightedGems(enemy.Tokens))

	score += w.BonusSelf * float64(bonusTotal(self.Bonuses))
	score -= w.BonusOpp * float64(bonusTotal(enemy.Bonuses))

	score += w.ReservedSelf * float64(len(self.Reserved))
	score -= w.ReservedOpp * float64(len(enemy.Reserved))

	score += w.NobleProgressSelf * float64(nobleGap(g, player))
	score -= w.NobleProgressOpp * float64(nobleGap(g, opp))

	score += w.AffordableSelf * float64(countAffordable(g, player))
	score -= w.AffordableOpp * float64(countAffordable(g, opp))

	score += w.Efficiency * (efficiencyScore(self) - efficiencyScore(enemy))
	score += w.Commitment * (commitmentScore(self) - commitmentScore(enemy))

	score -= w.TurnPenalty * float64(g.MoveNumber)

	if g.IsOver() {
		switch g.Winner() {
		case player:
			score += w.WinBonus
		case opp:
			score -= w.LossPenalty
		}
	}
	return score
}

// weightedGems counts a hand with jokers double.
func weightedGems(t game.TokenSet) int {
	return t.Black + t.Blue + t.White + t.Green + t.Red + 2*t.Joker
}

func bonusTotal(t game.TokenSet) int {
	return t.Black + t.Blue + t.White + t.Green + t.Red
}

// canAfford reports whether the player could buy the card this turn,
// covering any colored shortfall with jokers.
func canAfford(p *game.Player, c game.Card) bool {
	if c.IsPlaceholder() {
		return false
	}
	eff := c.EffectiveCost(p.Bonuses)
	deficit := 0
	for _, col := range game.Colors {
		if short := eff.Get(col) - p.Tokens.Get(col); short > 0 {
			deficit += short
		}
	}
	return deficit <= p.Tokens.Joker
}

// countAffordable counts purchasable cards among the face-up rows and
// the player's own reserve.
func countAffordable(g *game.GameState, player int) int {
	p := &g.Players[player]
	n := 0
	for tier := range g.FaceUp {
		for _, c := range g.FaceUp[tier] {
			if canAfford(p, c) {
				n++
			}
		}
	}
	for _, c := range p.Reserved {
		if canAfford(p, c) {
			n++
		}
	}
	return n
}

// nobleGap sums the bonuses the player still lacks across every
// available noble, negated so that closer reads higher.
func nobleGap(g *game.GameState, player int) int {
	p := &g.Players[player]
	total := 0
	for _, nob := range g.Nobles {
		for _, col := range game.Colors {
			if short := nob.Requirement.Get(col) - p.Bonuses.Get(col); short > 0 {
				total += short
			}
		}
	}
	return -total
}

// cardEfficiency is points per required gem. Cards under the threshold
// score the (negative) shortfall below it instead.
func cardEfficiency(c game.Card) float64 {
	if c.IsPlaceholder() {
		return 0
	}
	required := bonusTotal(c.Cost)
	if required <= 0 {
		return 0
	}
	eff := float64(c.Points) / float64(required)
	if eff >= efficiencyThreshold {
		return eff
	}
	return eff - efficiencyThreshold
}

func efficiencyScore(p *game.Player) float64 {
	s := 0.0
	for _, c := range p.Purchased {
		s += cardEfficiency(c)
	}
	for _, c := range p.Reserved {
		s += cardEfficiency(c)
	}
	return s
}

// commitmentScore rewards a reserve whose efficient cards pull toward a
// single color axis: focus on the axis plus progress toward paying for
// it, less the entropy of demand across colors and a penalty for tying
// up more than two reserve slots.
func commitmentScore(p *game.Player) float64 {
	var picked []game.Card
	for _, c := range p.Reserved {
		if c.IsPlaceholder() {
			continue
		}
		required := bonusTotal(c.Cost)
		if required <= 0 {
			continue
		}
		if float64(c.Points)/float64(required) >= efficiencyThreshold {
			picked = append(picked, c)
		}
	}
	if len(picked) == 0 {
		return 0
	}

	var demand, support [len(game.Colors)]float64
	for _, c := range picked {
		for i, col := range game.Colors {
			demand[i] += float64(c.Cost.Get(col))
		}
	}
	for i, col := range game.Colors {
		support[i] = float64(p.Tokens.Get(col)+p.Bonuses.Get(col)) + 0.5*float64(p.Tokens.Joker)
	}

	// The axis is the color whose demand is best backed by what the
	// player already holds.
	axis, axisScore := 0, -1.0
	for i := range demand {
		if v := demand[i] * (support[i] + 1); v > axisScore {
			axisScore = v
			axis = i
		}
	}

	focus := 0.0
	for _, c := range picked {
		total := float64(bonusTotal(c.Cost))
		if total <= 0 {
			continue
		}
		focus += float64(c.Cost.Get(game.Colors[axis])) / total
	}
	focus /= float64(len(picked))

	progress := support[axis] / math.Max(1, demand[axis])

	totalDemand := 0.0
	for _, d := range demand {
		totalDemand += d
	}
	entropy := 0.0
	if totalDemand > 0 {
		for _, d := range demand {
			if d <= 0 {
				continue
			}
			share := d / totalDemand
			entropy -= share * math.Log(share)
		}
	}
	spread := entropy / math.Log(float64(len(game.Colors)))

	slotPenalty := math.Max(0, float64(len(picked))-2)

	return focus + 0.5*progress - 0.7*spread - 0.25*slotPenalty
}

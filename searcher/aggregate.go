package searcher

import (
	"math"
	"sort"

	"splendor/game"
)

// aggregate pools one root move's statistics across determinized
// worlds, keyed by the move's canonical text.
type aggregate struct {
	move        game.Move
	totalVisits int
	weightedSum float64 // per-world means weighted by visits
	weightedN   int
	means       []float64 // raw per-world means, for the risk term
}

func (a *aggregate) add(r rootResult) {
	w := max(1, r.visits)
	a.totalVisits += r.visits
	a.weightedSum += r.mean * float64(w)
	a.weightedN += w
	a.means = append(a.means, r.mean)
}

// score is the risk-adjusted value: the visit-weighted mean minus
// lambda times the spread of per-world means. A move that looks good in
// only some worlds pays for the disagreement.
func (a *aggregate) score(riskLambda float64) float64 {
	mean := 0.0
	if a.weightedN > 0 {
		mean = a.weightedSum / float64(a.weightedN)
	}
	return mean - riskLambda*stddev(a.means)
}

// chooseMove picks the aggregated move by total visits, then by
// risk-adjusted score, then by the lexicographically smallest move
// text. Walking keys in sorted order makes the last tie-break implicit:
// a later key never displaces an equal earlier one.
func chooseMove(byMove map[string]*aggregate, riskLambda float64) (game.Move, bool) {
	if len(byMove) == 0 {
		return game.Move{}, false
	}

	keys := make([]string, 0, len(byMove))
	for k := range byMove {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bestKey := ""
	bestVisits := -1
	bestScore := math.Inf(-1)
	for _, key := range keys {
		ag := byMove[key]
		score := ag.score(riskLambda)
		if bestVisits < 0 ||
			ag.totalVisits > bestVisits ||
			(ag.totalVisits == bestVisits && score > bestScore+tieEpsilon) {
			bestKey = key
			bestVisits = ag.totalVisits
			bestScore = score
		}
	}
	return byMove[bestKey].move, true
}

// stddev is the population standard deviation; fewer than two samples
// read as no spread.
func stddev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))

	variance := 0.0
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(vals))
	return math.Sqrt(variance)
}

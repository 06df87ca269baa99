package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// tieEpsilon bounds how close two scores must be to count as a tie,
// both in child selection and in the final move choice.
const tieEpsilon = 1e-12

// squash maps a raw evaluation into [-1, 1] for backup.
func squash(raw float64) float64 {
	v := math.Tanh(raw / 120.0)
	return math.Max(-1.0, math.Min(1.0, v))
}

// selectChild scores idx's children by PUCT and returns the best one,
// breaking exact ties uniformly at random. Values are stored from the
// root player's perspective, so the exploitation term flips sign when
// the opponent is on the move. Returns -1 when there is nothing to
// select.
func (s *Searcher) selectChild(tree []node, idx, rootPlayer int, rng *rand.Rand) int {
	nd := &tree[idx]
	parentScale := math.Sqrt(float64(nd.visits) + 1.0)

	best := math.Inf(-1)
	var ties []int
	for _, ci := range nd.children {
		c := &tree[ci]

		q := 0.0
		if c.visits > 0 {
			q = c.valueSum / float64(c.visits)
		}
		if nd.toMove != rootPlayer {
			q = -q
		}
		u := s.cPUCT * c.prior * parentScale / (1.0 + float64(c.visits))
		score := q + u

		switch {
		case score > best+tieEpsilon:
			best = score
			ties = append(ties[:0], ci)
		case math.Abs(score-best) <= tieEpsilon:
			ties = append(ties, ci)
		}
	}

	switch len(ties) {
	case 0:
		return -1
	case 1:
		return ties[0]
	}
	return ties[rng.Intn(len(ties))]
}

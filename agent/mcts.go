package agent

import (
	"github.com/rs/zerolog/log"

	"splendor/belief"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/searcher"
)

// MCTS plays with an information-set searcher. A broken view still gets
// a PASS reply once the turn check has passed: going silent on our own
// turn would stall the whole game.
type MCTS struct {
	cat      *game.Catalog
	searcher *searcher.Searcher
	sampler  *belief.Sampler
	last     metrics.SearchMetric
}

func NewMCTS(cat *game.Catalog, s *searcher.Searcher, sampler *belief.Sampler) *MCTS {
	return &MCTS{cat: cat, searcher: s, sampler: sampler}
}

func (a *MCTS) Act(view string) (reply string, ok bool) {
	you, active, seated := game.PeekTurn(view)
	if !seated || you != active {
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("search failed: %v, replying PASS", r)
			reply, ok = "PASS", true
		}
	}()

	observed, seat, err := game.DecodeView(view, a.cat)
	if err != nil {
		log.Error().Msgf("view rejected: %v, replying PASS", err)
		return "PASS", true
	}

	move, metric := a.searcher.FindMove(observed, seat-1, a.sampler)
	a.last = metric
	return move.String(), true
}

// LastSearch returns the metrics of the most recent search, for
// self-play harnesses that record per-move statistics.
func (a *MCTS) LastSearch() metrics.SearchMetric {
	return a.last
}

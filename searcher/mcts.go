package searcher

import (
	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"

	"splendor/belief"
	"splendor/eval"
	"splendor/experiments/metrics"
	"splendor/game"
)

type Option func(s *Searcher)

// Searcher runs information-set MCTS over states observed from one
// player's seat. It is not safe for concurrent use: each FindMove call
// consumes one seed from the searcher's sequence.
type Searcher struct {
	simulations      int
	determinizations int
	cPUCT            float64
	maxDepth         int
	riskLambda       float64
	evaluate         game.Evaluate
	seed             uint64
	metrics          metrics.Collector
}

func WithSimulations(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.simulations = n
		}
	}
}

func WithDeterminizations(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.determinizations = n
		}
	}
}

func WithCPUCT(c float64) Option {
	return func(s *Searcher) {
		if c > 0 {
			s.cPUCT = c
		}
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// WithRiskLambda sets the determinization-disagreement penalty. Zero is
// a valid setting and disables the risk term.
func WithRiskLambda(lambda float64) Option {
	return func(s *Searcher) {
		if lambda >= 0 {
			s.riskLambda = lambda
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithSeed fixes the searcher's seed sequence. Each FindMove call uses
// the next seed, so two searchers built alike play out identically.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.seed = seed
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		simulations:      DefaultSimulations,
		determinizations: DefaultDeterminizations,
		cPUCT:            DefaultCPUCT,
		maxDepth:         DefaultMaxDepth,
		riskLambda:       DefaultRiskLambda,
		evaluate:         eval.DefaultWeights().Score,
		metrics:          metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// FindMove searches the observed state from rootPlayer's seat and
// returns the chosen move. The sampler provides the determinized
// worlds; the searcher divides its simulation budget evenly across
// them and pools the per-world root statistics.
func (s *Searcher) FindMove(observed *game.GameState, rootPlayer int, sampler *belief.Sampler) (game.Move, metrics.SearchMetric) {
	detCount := max(1, s.determinizations)
	s.metrics.Start(rootPlayer, detCount)

	rng := rand.New(rand.NewSource(s.seed))
	s.seed++

	simsPerWorld := max(1, s.simulations/detCount)

	byMove := make(map[string]*aggregate)
	for d := 0; d < detCount; d++ {
		world := sampler.Sample(observed, rootPlayer)
		for _, r := range s.runWorld(world, rootPlayer, simsPerWorld, rng) {
			key := r.move.String()
			ag := byMove[key]
			if ag == nil {
				ag = &aggregate{move: r.move}
				byMove[key] = ag
			}
			ag.add(r)
		}
	}

	metric := s.metrics.Complete()
	if move, ok := chooseMove(byMove, s.riskLambda); ok {
		return move, metric
	}

	log.Warn().Msgf("search for player %d produced no root statistics, falling back to first legal move", rootPlayer)
	return firstLegal(observed, rootPlayer), metric
}

// firstLegal is the degenerate policy for empty searches. Enumeration
// always offers PASS, so the pass fallback is for form's sake.
func firstLegal(g *game.GameState, player int) game.Move {
	if legal := g.LegalMoves(); len(legal) > 0 {
		return legal[0]
	}
	return game.Move{Player: player, Type: game.MovePass}
}

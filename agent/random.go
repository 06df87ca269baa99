package agent

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"splendor/belief"
	"splendor/game"
)

// Random plays a uniformly random legal move. Legality is read off a
// sampled world rather than the raw view: the view carries no decks, so
// blind reserves would otherwise never come up.
type Random struct {
	cat     *game.Catalog
	sampler *belief.Sampler
	rng     *rand.Rand
}

func NewRandom(cat *game.Catalog, seed uint64) *Random {
	return &Random{
		cat:     cat,
		sampler: belief.NewSampler(cat, seed),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (a *Random) Act(view string) (string, bool) {
	you, active, seated := game.PeekTurn(view)
	if !seated || you != active {
		return "", false
	}

	observed, seat, err := game.DecodeView(view, a.cat)
	if err != nil {
		log.Error().Msgf("view rejected: %v", err)
		return "", false
	}

	world := a.sampler.Sample(observed, seat-1)
	moves := world.LegalMoves()
	if len(moves) == 0 {
		return "PASS", true
	}
	return moves[a.rng.Intn(len(moves))].String(), true
}

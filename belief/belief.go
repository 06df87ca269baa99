// Package belief fills in what an observed view hides: the opponent's
// blind reserves and the order of the decks. A Sampler draws
// determinized worlds consistent with everything the viewer has seen,
// for searchers that need complete states to simulate on.
package belief

import (
	"slices"

	"golang.org/x/exp/rand"

	"splendor/game"
)

// Sampler draws determinized states from observed views. One stream
// persists across calls, so consecutive samples explore different
// worlds; engines construct a sampler once per game.
type Sampler struct {
	cat *game.Catalog
	rng *rand.Rand
}

// NewSampler returns a sampler over the given catalog. The caller
// resolves the seed; zero is not special here.
func NewSampler(cat *game.Catalog, seed uint64) *Sampler {
	return &Sampler{cat: cat, rng: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the sample stream.
func (s *Sampler) Reseed(seed uint64) {
	s.rng.Seed(seed)
}

// Sample returns a determinized clone of observed from rootPlayer's
// perspective: each of the opponent's blind reserves becomes a concrete
// unseen card of its tier, and the decks are rebuilt as a shuffle of
// every card the viewer has not seen. The input state is not modified.
func (s *Sampler) Sample(observed *game.GameState, rootPlayer int) *game.GameState {
	world := observed.Clone()

	known := make(map[int]struct{})
	note := func(c game.Card) {
		if c.ID >= 1 && c.ID <= game.BlindBaseID {
			known[c.ID] = struct{}{}
		}
	}
	for tier := range world.FaceUp {
		for _, c := range world.FaceUp[tier] {
			note(c)
		}
	}
	opp := 1 - rootPlayer
	for p := range world.Players {
		for _, c := range world.Players[p].Purchased {
			note(c)
		}
		for _, c := range world.Players[p].Reserved {
			if p == opp && game.IsBlindReserveID(c.ID) {
				continue
			}
			note(c)
		}
	}

	var unseen [game.NumTiers][]game.Card
	for _, c := range s.cat.Cards {
		if _, seen := known[c.ID]; seen {
			continue
		}
		unseen[c.Tier-1] = append(unseen[c.Tier-1], c)
	}

	// Swap-remove keeps substituted cards out of the rebuilt decks.
	reserved := world.Players[opp].Reserved
	for i := range reserved {
		if !game.IsBlindReserveID(reserved[i].ID) {
			continue
		}
		tier := game.BlindReserveTier(reserved[i].ID) - 1
		pool := unseen[tier]
		if len(pool) == 0 {
			continue
		}
		j := s.rng.Intn(len(pool))
		reserved[i] = pool[j]
		pool[j] = pool[len(pool)-1]
		unseen[tier] = pool[:len(pool)-1]
	}

	for tier := range world.Decks {
		deck := slices.Clone(unseen[tier])
		s.rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		world.Decks[tier] = deck
	}
	return world
}

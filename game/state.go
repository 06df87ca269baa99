package game

import (
	"slices"

	"golang.org/x/exp/rand"
)

// Player holds one side's hand and tableau.
type Player struct {
	Tokens    TokenSet // gems in hand, jokers included
	Bonuses   TokenSet // per-color discounts from purchased cards, never joker
	Purchased []Card
	Reserved  []Card   // up to MaxReserved; placeholders when masked or pending
	Nobles    []Noble
	Points    int
	TimeBank  float64 // seconds remaining, maintained by the referee
}

// PendingReveal carries replay-mode bookkeeping between a move that
// consumed a hidden deck card and the REVEAL directive that names it.
type PendingReveal struct {
	Expected    bool
	BlindPlayer int           // player owed a blind-reserve identity, -1 when none
	BlindTier   int           // deck tier of that pending blind reserve, 0 when none
	LastRemoved [NumTiers]int // face-up slot a card last left, per tier, -1 when none
}

// GameState is the complete game position. The referee owns the one true
// instance; searchers work on clones.
type GameState struct {
	Bank          TokenSet
	Players       [NumPlayers]Player
	Decks         [NumTiers][]Card // by tier-1; the slice's last element is the top card
	FaceUp        [NumTiers][]Card // by tier-1; placeholders mark exhausted slots
	Nobles        []Noble          // tiles still available
	CurrentPlayer int
	MoveNumber    int  // zero-based; the wire format carries MoveNumber+1
	Passes        int  // consecutive passes across both players
	ReplayMode    bool // replay transcripts defer deck identities to REVEAL
	Reveal        PendingReveal
}

// NewGame deals a fresh two-player game from the catalog. Per tier the
// cards are shuffled, the first four go face up and the rest form the
// deck with the last shuffled card on top. Three shuffled nobles enter
// play. The caller resolves the seed; zero is not special here.
func NewGame(cat *Catalog, seed uint64) *GameState {
	rng := rand.New(rand.NewSource(seed))
	g := newEmptyState()

	for tier := 1; tier <= NumTiers; tier++ {
		cards := cat.CardsOfTier(tier)
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
		n := min(FaceUpPerTier, len(cards))
		g.FaceUp[tier-1] = slices.Clone(cards[:n])
		g.Decks[tier-1] = slices.Clone(cards[n:])
	}

	nobles := slices.Clone(cat.Nobles)
	rng.Shuffle(len(nobles), func(i, j int) {
		nobles[i], nobles[j] = nobles[j], nobles[i]
	})
	g.Nobles = nobles[:min(NoblesInPlay, len(nobles))]
	return g
}

// NewReplayGame returns the empty shell replay setup directives fill in:
// full bank, no cards dealt, reveal bookkeeping armed.
func NewReplayGame() *GameState {
	g := newEmptyState()
	g.ReplayMode = true
	for i := range g.FaceUp {
		g.FaceUp[i] = []Card{}
	}
	return g
}

func newEmptyState() *GameState {
	g := &GameState{
		Bank: TokenSet{
			Black: BankPerColor,
			Blue:  BankPerColor,
			White: BankPerColor,
			Green: BankPerColor,
			Red:   BankPerColor,
			Joker: BankJokers,
		},
		Nobles: []Noble{},
	}
	for i := range g.Players {
		g.Players[i] = Player{
			Purchased: []Card{},
			Reserved:  []Card{},
			Nobles:    []Noble{},
			TimeBank:  InitialTimeBank,
		}
	}
	g.Reveal.BlindPlayer = -1
	for i := range g.Reveal.LastRemoved {
		g.Reveal.LastRemoved[i] = -1
	}
	return g
}

// Clone deep-copies the state so simulations can mutate freely.
func (g *GameState) Clone() *GameState {
	c := *g
	for i := range g.Players {
		c.Players[i].Purchased = slices.Clone(g.Players[i].Purchased)
		c.Players[i].Reserved = slices.Clone(g.Players[i].Reserved)
		c.Players[i].Nobles = slices.Clone(g.Players[i].Nobles)
	}
	for i := range g.Decks {
		c.Decks[i] = slices.Clone(g.Decks[i])
		c.FaceUp[i] = slices.Clone(g.FaceUp[i])
	}
	c.Nobles = slices.Clone(g.Nobles)
	return &c
}

// NextPlayer returns the player who is not on the move.
func (g *GameState) NextPlayer() int {
	return 1 - g.CurrentPlayer
}

package game

import (
	"errors"
	"strconv"
	"strings"
)

// Replay transcripts open with setup directives that deal the board
// explicitly instead of shuffling:
//
//	SETUP_FACEUP level<N> id...
//	SETUP_NOBLES id...
//	SETUP_DECK level<N> id...   (first id listed is the deck top)
//	BEGIN
//
// Directives accumulate; unknown ids and unrecognized lines are
// silently skipped so transcripts may carry commentary.

// ApplySetup processes one setup directive against the catalog.
func (g *GameState) ApplySetup(line string, cat *Catalog) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}
	switch words[0] {
	case "SETUP_FACEUP":
		if len(words) < 2 {
			return
		}
		tier, ok := parseLevelWord(words[1])
		if !ok {
			return
		}
		for _, id := range parseIDs(words[2:]) {
			if card, ok := cat.Card(id); ok {
				g.FaceUp[tier-1] = append(g.FaceUp[tier-1], card)
			}
		}

	case "SETUP_NOBLES":
		for _, id := range parseIDs(words[1:]) {
			if n, ok := cat.Noble(id); ok {
				g.Nobles = append(g.Nobles, n)
			}
		}

	case "SETUP_DECK":
		if len(words) < 2 {
			return
		}
		tier, ok := parseLevelWord(words[1])
		if !ok {
			return
		}
		ids := parseIDs(words[2:])
		// Listed top first; the deck top lives at the slice end.
		for i := len(ids) - 1; i >= 0; i-- {
			if card, ok := cat.Card(ids[i]); ok {
				g.Decks[tier-1] = append(g.Decks[tier-1], card)
			}
		}
	}
}

// BeginSetup closes the setup phase: every face-up row and the noble
// line must be dealt, and any deck left unspecified is filled with the
// tier's remaining catalog cards in catalog order.
func (g *GameState) BeginSetup(cat *Catalog) error {
	for tier := 1; tier <= NumTiers; tier++ {
		if len(g.FaceUp[tier-1]) == 0 {
			return errors.New("cannot BEGIN: incomplete setup")
		}
	}
	if len(g.Nobles) == 0 {
		return errors.New("cannot BEGIN: incomplete setup")
	}

	for tier := 1; tier <= NumTiers; tier++ {
		if len(g.Decks[tier-1]) > 0 {
			continue
		}
		onBoard := make(map[int]bool, len(g.FaceUp[tier-1]))
		for _, c := range g.FaceUp[tier-1] {
			onBoard[c.ID] = true
		}
		for _, card := range cat.CardsOfTier(tier) {
			if !onBoard[card.ID] {
				g.Decks[tier-1] = append(g.Decks[tier-1], card)
			}
		}
	}
	return nil
}

func parseLevelWord(w string) (int, bool) {
	switch w {
	case "level1":
		return 1, true
	case "level2":
		return 2, true
	case "level3":
		return 3, true
	}
	return 0, false
}

// parseIDs reads leading integers and stops at the first word that is
// not one.
func parseIDs(words []string) []int {
	var ids []int
	for _, w := range words {
		id, err := strconv.Atoi(w)
		if err != nil {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// Package game implements the two-player Splendor rules core: state,
// move parsing and validation, move application, legal-move enumeration,
// terminal detection, and the one-line JSON wire format exchanged with
// engines.
package game

// Evaluate scores a state from the given player's perspective. Searchers
// call it on leaf states; implementations live outside the rules core.
type Evaluate func(g *GameState, player int) float64

// Core rule constants for the two-player game.
const (
	NumPlayers    = 2
	WinningPoints = 15 // end-game trigger at end of round
	MaxHandTokens = 10 // hard cap after returns
	MaxReserved   = 3
	FaceUpPerTier = 4
	NumTiers      = 3
	NoblesInPlay  = 3
	BankPerColor  = 4 // two-player bank size per gem color
	BankJokers    = 5
	PassesToEnd   = 2 // consecutive passes that stall the game out
	BlindBaseID   = 90 // blind reserve handle for tier t is 90+t
	PlaceholderID = 0  // empty face-up slot / masked deck card

	InitialTimeBank = 300.0 // seconds per player at game start
	TimeIncrement   = 1.0   // seconds credited back after each move
)

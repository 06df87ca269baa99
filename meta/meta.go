// meta/meta.go
package meta

// MAX_MOVES caps one self-play game; a game that stalls past it is
// scored as it stands.
const MAX_MOVES = 400

// GAMES_PER_MATCHUP defines the games played per experiment pairing.
const GAMES_PER_MATCHUP = 30

// BASE_SEED seeds the first self-play game; later games count up from it.
const BASE_SEED = 1

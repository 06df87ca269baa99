// Package protocol owns the line traffic around the game itself:
// the referee's result announcements and the transcript written to
// game.log. View lines and move lines belong to the game package.
package protocol

import (
	"fmt"
	"strings"
)

// Prefixes of the referee's announcement lines. Everything else on the
// wire is a JSON view.
const (
	WinnerPrefix = "WINNER:"
	ResultPrefix = "RESULT:"
	ReasonPrefix = "REASON:"
	SeedPrefix   = "SEED:"
)

// TieLine is the whole announcement on a drawn game.
const TieLine = "RESULT: TIE"

// WinnerLine announces a decisive finish. player is 1-based.
func WinnerLine(player int) string {
	return fmt.Sprintf("WINNER: Player %d", player)
}

// TimeoutReason carries the overdrawn bank so the loser can see how far
// past zero they landed.
func TimeoutReason(player int, bank float64) string {
	return fmt.Sprintf("REASON: Player %d timed out (%.3fs)", player, bank)
}

// FaultReason names the rule or protocol violation that ended the game.
func FaultReason(player int, cause string) string {
	return fmt.Sprintf("REASON: Player %d made invalid move (%s)", player, cause)
}

// SeedLine reveals the shuffle seed so a finished game can be replayed.
func SeedLine(seed uint64) string {
	return fmt.Sprintf("SEED: %d", seed)
}

// IsResultLine reports whether the line is referee bookkeeping rather
// than a view. Engines skip these.
func IsResultLine(line string) bool {
	for _, prefix := range []string{WinnerPrefix, ResultPrefix, ReasonPrefix, SeedPrefix} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// ParseResult extracts the outcome from a WINNER or RESULT line.
// winner is 1-based, 0 on a tie. ok is false for any other line.
func ParseResult(line string) (winner int, ok bool) {
	if strings.TrimSpace(line) == TieLine {
		return 0, true
	}
	var p int
	if _, err := fmt.Sscanf(line, "WINNER: Player %d", &p); err == nil && p >= 1 && p <= 2 {
		return p, true
	}
	return 0, false
}

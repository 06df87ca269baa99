package protocol

import (
	"fmt"
	"os"
	"strings"
)

// Transcript buffers the game log in memory. Engines share the
// referee's stdout, so nothing may reach disk or any descriptor until
// the result is known; Flush writes the whole buffer at once.
type Transcript struct {
	buf strings.Builder
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) Seed(seed uint64) {
	fmt.Fprintf(&t.buf, "Seed: %d\n", seed)
}

// InitialState records the omniscient view of the freshly dealt board.
func (t *Transcript) InitialState(view string) {
	fmt.Fprintf(&t.buf, "Initial State: %s\n", view)
}

// Move records a received move line verbatim. player is 1-based.
func (t *Transcript) Move(player int, line string) {
	fmt.Fprintf(&t.buf, "Player %d: %s\n", player, line)
}

// PostState records the omniscient view after a move was applied, which
// is where cards revealed by the move first show up.
func (t *Transcript) PostState(view string) {
	fmt.Fprintf(&t.buf, "Post-Move State: %s\n", view)
}

// Timeout records a loss on time.
func (t *Transcript) Timeout(player, winner int) {
	fmt.Fprintf(&t.buf, "ERROR: Player %d timed out!\n", player)
	fmt.Fprintf(&t.buf, "Game Result: Player %d wins! (Opponent timeout)\n", winner)
}

// Fault records a game lost to a malformed or illegal move.
func (t *Transcript) Fault(player, winner int, cause string) {
	fmt.Fprintf(&t.buf, "ERROR: Invalid move from Player %d: %s\n", player, cause)
	fmt.Fprintf(&t.buf, "Game Result: Player %d wins! (Opponent invalid move)\n", winner)
}

// Result records the announcement of a game that ran to completion.
// winner is 1-based, 0 for a tie.
func (t *Transcript) Result(winner int) {
	if winner == 0 {
		fmt.Fprintf(&t.buf, "%s\n", TieLine)
		return
	}
	fmt.Fprintf(&t.buf, "%s\n", WinnerLine(winner))
}

func (t *Transcript) FinalScores(p1, p2 int) {
	fmt.Fprintf(&t.buf, "Final Scores - P1: %d, P2: %d\n", p1, p2)
}

// GameResult closes the transcript of a completed game.
func (t *Transcript) GameResult(winner int) {
	if winner == 0 {
		fmt.Fprintf(&t.buf, "Game Result: TIE\n")
		return
	}
	fmt.Fprintf(&t.buf, "Game Result: Player %d wins!\n", winner)
}

func (t *Transcript) String() string {
	return t.buf.String()
}

// Flush writes the buffered transcript to path in one shot.
func (t *Transcript) Flush(path string) error {
	return os.WriteFile(path, []byte(t.buf.String()), 0644)
}

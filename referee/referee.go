// Package referee runs the authoritative side of a match. It owns the
// game state, prompts both engines with per-viewer state lines, charges
// think time against each player's bank, and settles every fault in the
// opponent's favor.
package referee

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"splendor/game"
	"splendor/protocol"
)

// Outcome is the settled result of one match. Winner is 1-based, 0 on a
// tie. Reason is empty when the game ran to completion.
type Outcome struct {
	Winner int
	Reason string
	Points [2]int
	Moves  int
}

type Option func(*Referee)

// WithLogPath redirects the transcript. The empty path disables the
// write entirely.
func WithLogPath(path string) Option {
	return func(r *Referee) {
		r.logPath = path
	}
}

// WithClock substitutes the wall clock, which is how tests script
// timeouts.
func WithClock(now func() time.Time) Option {
	return func(r *Referee) {
		r.now = now
	}
}

// Referee drives one game between the two engines attached to in and
// out. It is single-use: Run consumes it.
type Referee struct {
	state   *game.GameState
	seed    uint64
	in      io.Reader
	out     io.Writer
	log     *protocol.Transcript
	logPath string
	now     func() time.Time
}

// New deals a fresh game. Seed 0 picks one off the wall clock; the
// chosen seed is announced at the end of the game either way.
func New(cat *game.Catalog, seed uint64, in io.Reader, out io.Writer, options ...Option) *Referee {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := &Referee{
		state:   game.NewGame(cat, seed),
		seed:    seed,
		in:      in,
		out:     out,
		log:     protocol.NewTranscript(),
		logPath: "game.log",
		now:     time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Run plays the game to its end and returns the settled outcome. A
// non-nil error means the referee itself failed (bad deal, broken
// invariant, unwritable pipe), not that a player lost.
func (r *Referee) Run() (Outcome, error) {
	g := r.state
	r.log.Seed(r.seed)

	if err := g.CheckInvariants(); err != nil {
		return Outcome{}, fmt.Errorf("initial state invalid: %s", err)
	}
	r.log.InitialState(g.EncodeView(0))
	if err := r.broadcast(); err != nil {
		return Outcome{}, err
	}

	scanner := bufio.NewScanner(r.in)
	for !g.IsOver() {
		current := g.CurrentPlayer
		bank := &g.Players[current].TimeBank
		log.Info().Msgf("waiting for player %d (bank %.3fs)", current+1, *bank)

		start := r.now()
		if !scanner.Scan() {
			log.Error().Msgf("no move from player %d: stream closed", current+1)
			return r.settleFault(current, "no move line received")
		}
		line := scanner.Text()
		elapsed := r.now().Sub(start).Seconds()

		*bank -= elapsed
		if *bank < 0 {
			log.Error().Msgf("player %d timed out (%.3fs)", current+1, *bank)
			return r.settleTimeout(current, *bank)
		}
		*bank += game.TimeIncrement

		log.Info().Msgf("player %d: %q (took %.3fs)", current+1, line, elapsed)
		r.log.Move(current+1, line)

		if strings.HasPrefix(line, "REVEAL") {
			return r.settleFault(current, "REVEAL command only valid in replay mode")
		}

		move, err := game.ParseMove(line, current)
		if err == nil {
			err = g.ValidateMove(move)
		}
		if err != nil {
			log.Error().Msgf("player %d loses by invalid move: %s", current+1, err)
			return r.settleFault(current, err.Error())
		}

		if err := g.Apply(move); err != nil {
			return Outcome{}, fmt.Errorf("apply failed: %s", err)
		}
		r.log.PostState(g.EncodeView(0))
		if err := g.CheckInvariants(); err != nil {
			return Outcome{}, fmt.Errorf("state invalid after move %d: %s", g.MoveNumber, err)
		}

		if !g.IsOver() {
			if err := r.broadcast(); err != nil {
				return Outcome{}, err
			}
		}
	}

	return r.settleFinished()
}

// broadcast writes the two seat views, always player 1 first.
func (r *Referee) broadcast() error {
	for viewer := 1; viewer <= game.NumPlayers; viewer++ {
		if _, err := fmt.Fprintln(r.out, r.state.EncodeView(viewer)); err != nil {
			return fmt.Errorf("write view for player %d: %s", viewer, err)
		}
	}
	return nil
}

func (r *Referee) settleTimeout(loser int, bank float64) (Outcome, error) {
	winner := opponentOf(loser) + 1
	fmt.Fprintln(r.out, protocol.WinnerLine(winner))
	fmt.Fprintln(r.out, protocol.TimeoutReason(loser+1, bank))
	fmt.Fprintln(r.out, protocol.SeedLine(r.seed))
	r.log.Timeout(loser+1, winner)
	return r.finish(Outcome{
		Winner: winner,
		Reason: protocol.TimeoutReason(loser+1, bank),
	})
}

func (r *Referee) settleFault(loser int, cause string) (Outcome, error) {
	winner := opponentOf(loser) + 1
	fmt.Fprintln(r.out, protocol.WinnerLine(winner))
	fmt.Fprintln(r.out, protocol.FaultReason(loser+1, cause))
	fmt.Fprintln(r.out, protocol.SeedLine(r.seed))
	r.log.Fault(loser+1, winner, cause)
	return r.finish(Outcome{
		Winner: winner,
		Reason: protocol.FaultReason(loser+1, cause),
	})
}

func (r *Referee) settleFinished() (Outcome, error) {
	g := r.state
	winner := g.Winner() + 1 // 0 now means tie
	if winner == 0 {
		fmt.Fprintln(r.out, protocol.TieLine)
	} else {
		fmt.Fprintln(r.out, protocol.WinnerLine(winner))
	}
	fmt.Fprintln(r.out, protocol.SeedLine(r.seed))

	log.Info().Msgf("final scores: p1 %d, p2 %d", g.Players[0].Points, g.Players[1].Points)
	r.log.Result(winner)
	r.log.FinalScores(g.Players[0].Points, g.Players[1].Points)
	r.log.GameResult(winner)
	return r.finish(Outcome{Winner: winner})
}

// finish stamps the shared outcome fields and flushes the transcript.
func (r *Referee) finish(outcome Outcome) (Outcome, error) {
	g := r.state
	outcome.Points = [2]int{g.Players[0].Points, g.Players[1].Points}
	outcome.Moves = g.MoveNumber
	if r.logPath == "" {
		return outcome, nil
	}
	if err := r.log.Flush(r.logPath); err != nil {
		return outcome, fmt.Errorf("write transcript: %s", err)
	}
	return outcome, nil
}

func opponentOf(player int) int {
	return 1 - player
}

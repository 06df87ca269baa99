// The replay binary re-runs a raw move transcript in replay mode:
// setup directives up to BEGIN deal the board explicitly, and every
// hidden draw waits for its REVEAL line. The spectator state after each
// resolved move is written to stdout as one JSON array.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"splendor/game"
	"splendor/meta"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cardsPath := flag.String("cards", meta.EnvString("CARDS", "data/cards.json"), "card catalog path")
	noblesPath := flag.String("nobles", meta.EnvString("NOBLES", "data/nobles.json"), "noble catalog path")
	flag.Parse()

	cat, err := game.LoadCatalog(*cardsPath, *noblesPath)
	if err != nil {
		log.Fatal().Msgf("failed to load game data: %v", err)
	}
	log.Info().Msgf("loaded %d cards and %d nobles, replay mode enabled", len(cat.Cards), len(cat.Nobles))

	g := game.NewReplayGame()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "BEGIN" {
			break
		}
		g.ApplySetup(line, cat)
	}
	if err := g.BeginSetup(cat); err != nil {
		log.Fatal().Msgf("%v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	fmt.Fprintln(out, "[")
	fmt.Fprint(out, g.EncodeView(0))

	for !g.IsOver() && scanner.Scan() {
		line := scanner.Text()
		current := g.CurrentPlayer

		move, err := game.ParseMove(line, current)
		if err == nil {
			if g.Reveal.Expected && move.Type != game.MoveReveal {
				log.Error().Msgf("expected REVEAL command but received: %q", line)
				break
			}
			err = g.ValidateMove(move)
		}
		if err != nil {
			log.Error().Msgf("invalid move: %s", err)
			log.Error().Msgf("player %d loses by invalid move", current+1)
			break
		}
		if err := g.Apply(move); err != nil {
			log.Error().Msgf("failed to apply move: %s", err)
			break
		}
		if err := g.CheckInvariants(); err != nil {
			log.Error().Msgf("game state became invalid: %s", err)
			break
		}

		// Snapshots show only resolved positions: a move that owes a
		// REVEAL waits for it.
		if !g.Reveal.Expected {
			fmt.Fprint(out, ",\n"+g.EncodeView(0))
		}
	}
	fmt.Fprintln(out, "\n]")

	log.Info().Msgf("final scores: p1 %d, p2 %d", g.Players[0].Points, g.Players[1].Points)
	if winner := g.Winner(); winner == -1 {
		log.Info().Msg("game ended in a tie")
	} else {
		log.Info().Msgf("player %d wins", winner+1)
	}
}

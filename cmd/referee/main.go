// The referee binary runs one match over stdio: engine moves arrive on
// stdin, views and the result leave on stdout, progress goes to stderr.
package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"splendor/game"
	"splendor/meta"
	"splendor/referee"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seed := flag.Uint64("seed", meta.EnvUint("SEED", 0), "shuffle seed; 0 picks one off the clock")
	logPath := flag.String("log", meta.EnvString("GAME_LOG", "game.log"), "transcript path; empty disables it")
	cardsPath := flag.String("cards", meta.EnvString("CARDS", "data/cards.json"), "card catalog path")
	noblesPath := flag.String("nobles", meta.EnvString("NOBLES", "data/nobles.json"), "noble catalog path")
	flag.Parse()

	// A bare numeric argument is accepted as the seed, the way the
	// tournament runner invokes it.
	if *seed == 0 && flag.NArg() > 0 {
		if s, err := strconv.ParseUint(flag.Arg(0), 10, 64); err == nil {
			*seed = s
		}
	}

	cat, err := game.LoadCatalog(*cardsPath, *noblesPath)
	if err != nil {
		log.Fatal().Msgf("failed to load game data: %v", err)
	}
	log.Info().Msgf("loaded %d cards and %d nobles", len(cat.Cards), len(cat.Nobles))

	r := referee.New(cat, *seed, os.Stdin, os.Stdout, referee.WithLogPath(*logPath))
	outcome, err := r.Run()
	if err != nil {
		log.Fatal().Msgf("referee failed: %v", err)
	}
	if outcome.Reason != "" {
		log.Info().Msgf("game settled by fault: winner %d (%s)", outcome.Winner, outcome.Reason)
		return
	}
	log.Info().Msgf("game over: winner %d, points %d-%d in %d moves",
		outcome.Winner, outcome.Points[0], outcome.Points[1], outcome.Moves)
}

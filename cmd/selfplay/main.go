// The selfplay binary runs the in-process experiment ladders and writes
// their CSV records under experiments/.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"splendor/experiments"
	"splendor/game"
	"splendor/meta"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	name := flag.String("experiment", meta.EnvString("EXPERIMENT", "budget"),
		fmt.Sprintf("experiment to run (%s)", strings.Join(experiments.Names(), ", ")))
	games := flag.Int("games", meta.EnvInt("GAMES", meta.GAMES_PER_MATCHUP), "games per matchup")
	seed := flag.Uint64("seed", meta.EnvUint("SEED", meta.BASE_SEED), "base seed, games offset from it")
	cardsPath := flag.String("cards", meta.EnvString("CARDS", "data/cards.json"), "card catalog path")
	noblesPath := flag.String("nobles", meta.EnvString("NOBLES", "data/nobles.json"), "noble catalog path")
	flag.Parse()

	cat, err := game.LoadCatalog(*cardsPath, *noblesPath)
	if err != nil {
		log.Fatal().Msgf("failed to load game data: %v", err)
	}
	log.Info().Msgf("loaded %d cards and %d nobles", len(cat.Cards), len(cat.Nobles))

	if err := experiments.Run(*name, cat, *games, *seed); err != nil {
		log.Fatal().Msgf("experiment failed: %v", err)
	}
	log.Info().Msgf("experiment %s finished", *name)
}

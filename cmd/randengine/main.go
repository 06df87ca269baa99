// The randengine binary plays uniformly random legal moves. It exists
// as a floor for strength comparisons and as a cheap protocol peer.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"splendor/agent"
	"splendor/engine"
	"splendor/game"
	"splendor/meta"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seed := flag.Uint64("seed", meta.EnvUint("SEED", 0), "move pick seed; 0 picks one off the clock")
	cardsPath := flag.String("cards", meta.EnvString("CARDS", "data/cards.json"), "card catalog path")
	noblesPath := flag.String("nobles", meta.EnvString("NOBLES", "data/nobles.json"), "noble catalog path")
	flag.Parse()

	cat, err := game.LoadCatalog(*cardsPath, *noblesPath)
	if err != nil {
		log.Fatal().Msgf("failed to load data files: %v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	log.Info().Msg("Random Engine started")

	a := agent.NewRandom(cat, *seed)
	if err := engine.New(os.Stdin, os.Stdout, a).Run(); err != nil {
		log.Fatal().Msgf("engine stopped: %v", err)
	}
}

// The engine binary plays one seat over stdio with the information-set
// searcher. Unflagged numeric arguments are ordered weight overrides,
// applied after --profile and --weights.
package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"splendor/agent"
	"splendor/belief"
	"splendor/engine"
	"splendor/eval"
	"splendor/game"
	"splendor/meta"
	"splendor/searcher"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	sims := flag.Int("sims", meta.EnvInt("SIMS", searcher.DefaultSimulations), "simulations per move")
	seed := flag.Uint64("seed", meta.EnvUint("SEED", 0), "base search seed; 0 picks one off the clock")
	maxDepth := flag.Int("max-depth", meta.EnvInt("MAX_DEPTH", searcher.DefaultMaxDepth), "simulation depth cap")
	riskLambda := flag.Float64("risk-lambda", meta.EnvFloat("RISK_LAMBDA", searcher.DefaultRiskLambda), "stdev penalty on root move values")
	det := flag.Int("det", meta.EnvInt("DET", searcher.DefaultDeterminizations), "determinization samples per move")
	cPUCT := flag.Float64("c-puct", meta.EnvFloat("C_PUCT", searcher.DefaultCPUCT), "exploration constant")
	profile := flag.String("profile", meta.EnvString("PROFILE", "balanced"), "evaluator preset")
	weightsPath := flag.String("weights", meta.EnvString("WEIGHTS", ""), "JSON weight file, replaces --profile")
	cardsPath := flag.String("cards", meta.EnvString("CARDS", "data/cards.json"), "card catalog path")
	noblesPath := flag.String("nobles", meta.EnvString("NOBLES", "data/nobles.json"), "noble catalog path")
	flag.Parse()

	cat, err := game.LoadCatalog(*cardsPath, *noblesPath)
	if err != nil {
		log.Fatal().Msgf("failed to load data files: %v", err)
	}

	weights, err := eval.Profile(*profile)
	if err != nil {
		log.Fatal().Msgf("%v", err)
	}
	if *weightsPath != "" {
		if weights, err = eval.LoadFile(*weightsPath); err != nil {
			log.Fatal().Msgf("%v", err)
		}
	}

	// Non-numeric extras are ignored for compatibility with old runner
	// arguments.
	overrides := make([]float64, 0, flag.NArg())
	for _, arg := range flag.Args() {
		if v, err := strconv.ParseFloat(arg, 64); err == nil {
			overrides = append(overrides, v)
		}
	}
	weights.ApplyOrdered(overrides)

	runtimeSeed := *seed
	if runtimeSeed == 0 {
		runtimeSeed = uint64(time.Now().UnixNano())
	}

	s := searcher.New(
		searcher.WithSimulations(max(1, *sims)),
		searcher.WithDeterminizations(max(1, *det)),
		searcher.WithMaxDepth(max(1, *maxDepth)),
		searcher.WithRiskLambda(*riskLambda),
		searcher.WithCPUCT(*cPUCT),
		searcher.WithEvaluationFn(weights.Score),
		searcher.WithSeed(runtimeSeed),
	)
	a := agent.NewMCTS(cat, s, belief.NewSampler(cat, *seed))

	log.Info().Msgf("engine started: sims=%d det=%d depth=%d c_puct=%.3f lambda=%.3f profile=%s",
		*sims, *det, *maxDepth, *cPUCT, *riskLambda, *profile)

	if err := engine.New(os.Stdin, os.Stdout, a).Run(); err != nil {
		log.Fatal().Msgf("engine stopped: %v", err)
	}
}

package experiments

import (
	"fmt"

	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/searcher"
	"splendor/utils"
)

// budgetLadder varies only the simulation count. Every rung plays the
// default configuration, so the records show what extra simulations buy.
var budgetLadder = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.KindMCTS, Simulations: 100},
	{ID: 2, Kind: metrics.KindMCTS, Simulations: 300},
	{ID: 3, Kind: metrics.KindMCTS, Simulations: 1000},
	{ID: 4, Kind: metrics.KindMCTS, Simulations: 10000},
}

// profileLadder pits the evaluator presets and a uniform-random agent
// against the balanced default.
var profileLadder = []metrics.AgentConfig{
	{ID: 1, Kind: metrics.KindMCTS, Profile: "aggressive"},
	{ID: 2, Kind: metrics.KindMCTS, Profile: "material"},
	{ID: 3, Kind: metrics.KindRandom},
}

// RunBudgetExperiment plays every simulation budget against the default
// budget.
func RunBudgetExperiment(cat *game.Catalog, games int, baseSeed uint64) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindMCTS, Simulations: searcher.DefaultSimulations}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range budgetLadder {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(cat, "budget", append(budgetLadder, baseline), matchUps, games, baseSeed)
}

// RunProfileExperiment plays every preset against the balanced default.
func RunProfileExperiment(cat *game.Catalog, games int, baseSeed uint64) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: metrics.KindMCTS, Profile: "balanced"}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range profileLadder {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return runExperiment(cat, "profiles", append(profileLadder, baseline), matchUps, games, baseSeed)
}

// Names lists the experiments Run accepts.
func Names() []string {
	return []string{"budget", "profiles"}
}

// Run starts the named experiment.
func Run(name string, cat *game.Catalog, games int, baseSeed uint64) error {
	if utils.FindIndex(Names(), name) == -1 {
		return fmt.Errorf("unknown experiment %q (have %v)", name, Names())
	}
	switch name {
	case "budget":
		return RunBudgetExperiment(cat, games, baseSeed)
	default:
		return RunProfileExperiment(cat, games, baseSeed)
	}
}

// Package experiments runs in-process self-play matchups between agent
// configurations and writes the results as CSV reports. Games go
// through the same redacted views and move lines the referee uses, so
// agents never see more here than they would across a pipe.
package experiments

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"splendor/agent"
	"splendor/belief"
	"splendor/eval"
	"splendor/experiments/metrics"
	"splendor/game"
	"splendor/meta"
	"splendor/searcher"
)

// searchReporter is what an agent exposes when it can describe the
// search behind its last reply.
type searchReporter interface {
	LastSearch() metrics.SearchMetric
}

// runExperiment plays every matchup for the given number of games and
// stores configs, game records, and move records under
// experiments/<name>/<timestamp>/.
func runExperiment(cat *game.Catalog, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, games int, baseSeed uint64) error {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent%d and agent%d...",
			mi+1, len(matchUps), matchup[0].ID, matchup[1].ID)

		for i := 0; i < games; i++ {
			first, second := matchup[0], matchup[1]
			// Alternate seats so neither config always moves first.
			if i%2 == 1 {
				first, second = second, first
			}

			seed := baseSeed + uint64(count)
			gameMetric, moveMetrics, err := runMatch(cat, first, second, seed)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d: winner %d in %d moves",
				mi+1, len(matchUps), i+1, games, gameMetric.Winner, gameMetric.TotalMoves)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %d game records and %d move records", len(gameRecords), len(moveRecords))

	return nil
}

// runMatch plays one game between two configs. Faults settle the game
// for the opponent exactly as the referee would; an error means the
// harness itself broke.
func runMatch(cat *game.Catalog, first, second metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	g := game.NewGame(cat, seed)

	var agents [game.NumPlayers]agent.Agent
	for i, config := range [2]metrics.AgentConfig{first, second} {
		a, err := buildAgent(cat, config, seed*2+uint64(i))
		if err != nil {
			return metrics.GameMetric{}, nil, err
		}
		agents[i] = a
	}

	matchID := uuid.NewString()
	start := time.Now()
	winner := -1
	fault := ""
	var moveMetrics []metrics.MoveMetric

	for !g.IsOver() {
		if g.MoveNumber >= meta.MAX_MOVES {
			log.Warn().Msgf("game %s stopped after %d moves", matchID, g.MoveNumber)
			break
		}
		seat := g.CurrentPlayer

		reply, ok := agents[seat].Act(g.EncodeView(seat + 1))
		if !ok {
			winner, fault = opponent(seat), fmt.Sprintf("player %d gave no reply", seat+1)
			break
		}
		move, err := game.ParseMove(reply, seat)
		if err == nil {
			err = g.ValidateMove(move)
		}
		if err != nil {
			winner, fault = opponent(seat), err.Error()
			break
		}
		if err := g.Apply(move); err != nil {
			return metrics.GameMetric{}, nil, fmt.Errorf("apply failed in game %s: %w", matchID, err)
		}

		sm := metrics.SearchMetric{}
		if reporter, ok := agents[seat].(searchReporter); ok {
			sm = reporter.LastSearch()
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         g.MoveNumber,
			Player:       seat,
			SearchMetric: sm,
		})
	}

	if fault == "" {
		winner = g.Winner()
	}

	return metrics.GameMetric{
		MatchID:    matchID,
		Seed:       seed,
		Winner:     winner,
		Fault:      fault,
		Points:     [2]int{g.Players[0].Points, g.Players[1].Points},
		TotalMoves: g.MoveNumber,
		StartTime:  start,
		Duration:   time.Since(start),
	}, moveMetrics, nil
}

func buildAgent(cat *game.Catalog, config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	if config.Kind == metrics.KindRandom {
		return agent.NewRandom(cat, seed), nil
	}

	options := []searcher.Option{
		searcher.WithMetrics(),
		searcher.WithSeed(seed),
	}
	if config.Simulations > 0 {
		options = append(options, searcher.WithSimulations(config.Simulations))
	}
	if config.Determinizations > 0 {
		options = append(options, searcher.WithDeterminizations(config.Determinizations))
	}
	if config.CPUCT > 0 {
		options = append(options, searcher.WithCPUCT(config.CPUCT))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	if config.RiskLambda > 0 {
		options = append(options, searcher.WithRiskLambda(config.RiskLambda))
	}
	if config.Profile != "" {
		weights, err := eval.Profile(config.Profile)
		if err != nil {
			return nil, err
		}
		options = append(options, searcher.WithEvaluationFn(weights.Score))
	}

	return agent.NewMCTS(cat, searcher.New(options...), belief.NewSampler(cat, seed)), nil
}

func opponent(player int) int {
	return 1 - player
}

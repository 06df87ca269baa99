package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Agent kinds an experiment can field.
const (
	KindMCTS   = "mcts"
	KindRandom = "random"
)

// AgentConfig names one agent build in an experiment. Zero values fall
// back to the searcher defaults, so a config only pins what it varies.
type AgentConfig struct {
	ID               int
	Kind             string
	Simulations      int
	Determinizations int
	CPUCT            float64
	MaxDepth         int
	RiskLambda       float64
	Profile          string // evaluator preset; empty means balanced
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID in seat 1
	Agent2 int // AgentConfig.ID in seat 2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates experiments/<name>/<timestamp>/ for one experiment
// run.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "kind", "simulations", "determinizations", "c_puct", "max_depth", "risk_lambda", "profile"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Simulations),
			strconv.Itoa(config.Determinizations),
			strconv.FormatFloat(config.CPUCT, 'g', -1, 64),
			strconv.Itoa(config.MaxDepth),
			strconv.FormatFloat(config.RiskLambda, 'g', -1, 64),
			config.Profile,
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "match_id", "seed", "winner", "points1", "points2", "total_moves", "fault", "start_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.MatchID,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Points[0]),
			strconv.Itoa(record.Points[1]),
			strconv.Itoa(record.TotalMoves),
			record.Fault,
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "determinizations", "simulations", "tree_nodes", "terminal_leaves", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Determinizations),
			strconv.Itoa(record.Simulations),
			strconv.Itoa(record.TreeNodes),
			strconv.Itoa(record.TerminalLeaves),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}

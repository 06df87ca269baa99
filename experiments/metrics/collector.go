// Package metrics collects search and game statistics for self-play
// experiments. Collectors are safe for concurrent use; the dummy
// collector makes instrumentation free when nobody is measuring.
package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one move search: its shape and what the
// simulations ran into.
type SearchMetric struct {
	Player           int
	Determinizations int
	Simulations      int // simulations actually run, summed over worlds
	TreeNodes        int // nodes allocated, summed over worlds
	TerminalLeaves   int // simulations that reached a finished game
	Duration         time.Duration
}

// MoveMetric ties a search to its place in a game.
type MoveMetric struct {
	Step   int
	Player int
	SearchMetric
}

// GameMetric summarizes one finished self-play game.
type GameMetric struct {
	MatchID    string
	Seed       uint64
	Winner     int    // player index, -1 for a tie
	Fault      string // settlement reason when a game ended on a fault
	Points     [2]int
	TotalMoves int
	StartTime  time.Time
	Duration   time.Duration
}

type Collector interface {
	Start(player, determinizations int)
	AddSimulation()
	AddTerminalLeaf()
	AddTreeNodes(n int)
	Complete() SearchMetric
}

type collector struct {
	player           int
	determinizations int
	startTime        time.Time
	simulations      atomic.Int32
	terminalLeaves   atomic.Int32
	treeNodes        atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(player, determinizations int) {
	m.startTime = time.Now()
	m.player = player
	m.determinizations = determinizations
	m.simulations.Store(0)
	m.terminalLeaves.Store(0)
	m.treeNodes.Store(0)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) AddTerminalLeaf() {
	m.terminalLeaves.Add(1)
}

func (m *collector) AddTreeNodes(n int) {
	m.treeNodes.Add(int32(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Player:           m.player,
		Determinizations: m.determinizations,
		Simulations:      int(m.simulations.Load()),
		TreeNodes:        int(m.treeNodes.Load()),
		TerminalLeaves:   int(m.terminalLeaves.Load()),
		Duration:         time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(player, determinizations int) {}
func (m *dummyCollector) AddSimulation()                     {}
func (m *dummyCollector) AddTerminalLeaf()                   {}
func (m *dummyCollector) AddTreeNodes(n int)                 {}
func (m *dummyCollector) Complete() SearchMetric             { return SearchMetric{} }

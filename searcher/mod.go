// Package searcher implements information-set MCTS: each search samples
// a batch of determinized worlds from a belief sampler, runs PUCT-guided
// simulations on every world, and aggregates the per-world root
// statistics into a single risk-adjusted move choice.
package searcher

// Search defaults. Engines override them per flag.
const (
	DefaultSimulations      = 3000
	DefaultDeterminizations = 8
	DefaultCPUCT            = 1.25
	DefaultMaxDepth         = 18
	DefaultRiskLambda       = 0.30
)

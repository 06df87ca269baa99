package searcher

import (
	"golang.org/x/exp/rand"

	"splendor/game"
)

// node is one arena entry. Trees are flat slices of these; indices
// replace pointers so a whole world's tree drops in one free.
type node struct {
	parent   int
	move     game.Move // move that led here from parent
	toMove   int       // player on the move in this node's state
	visits   int
	valueSum float64 // backed-up values, always from the root player's view
	prior    float64
	untried  []game.Move
	children []int
}

// rootResult is one root child's statistics after a world's simulations.
type rootResult struct {
	move   game.Move
	visits int
	mean   float64
}

// runWorld builds a fresh tree over one determinized world and runs the
// given number of simulations through it. Each simulation walks
// selection until it can expand one node, scores the reached state with
// the evaluator, and backs the squashed value up the path.
func (s *Searcher) runWorld(root *game.GameState, rootPlayer, sims int, rng *rand.Rand) []rootResult {
	tree := make([]node, 0, max(32, sims*2))
	tree = append(tree, node{
		parent:  -1,
		toMove:  root.CurrentPlayer,
		prior:   1.0,
		untried: root.LegalMoves(),
	})

	path := make([]int, 0, s.maxDepth+1)
	for sim := 0; sim < sims; sim++ {
		state := root.Clone()
		idx := 0
		depth := 0
		path = append(path[:0], idx)

		for !state.IsOver() && depth < s.maxDepth {
			nd := &tree[idx]

			if len(nd.untried) > 0 {
				pick := rng.Intn(len(nd.untried))
				m := nd.untried[pick]
				nd.untried[pick] = nd.untried[len(nd.untried)-1]
				nd.untried = nd.untried[:len(nd.untried)-1]

				if state.Apply(m) != nil {
					break
				}
				tree = append(tree, node{
					parent:  idx,
					move:    m,
					toMove:  state.CurrentPlayer,
					prior:   1.0,
					untried: state.LegalMoves(),
				})
				child := len(tree) - 1
				tree[idx].children = append(tree[idx].children, child)
				idx = child
				path = append(path, idx)
				break
			}

			if len(nd.children) == 0 {
				break
			}
			child := s.selectChild(tree, idx, rootPlayer, rng)
			if child < 0 {
				break
			}
			if state.Apply(tree[child].move) != nil {
				break
			}
			idx = child
			path = append(path, idx)
			depth++
		}

		value := squash(s.evaluate(state, rootPlayer))
		for _, i := range path {
			tree[i].visits++
			tree[i].valueSum += value
		}

		s.metrics.AddSimulation()
		if state.IsOver() {
			s.metrics.AddTerminalLeaf()
		}
	}
	s.metrics.AddTreeNodes(len(tree))

	out := make([]rootResult, 0, len(tree[0].children))
	for _, ci := range tree[0].children {
		c := &tree[ci]
		mean := 0.0
		if c.visits > 0 {
			mean = c.valueSum / float64(c.visits)
		}
		out = append(out, rootResult{move: c.move, visits: c.visits, mean: mean})
	}
	if len(out) == 0 {
		if legal := root.LegalMoves(); len(legal) > 0 {
			out = append(out, rootResult{move: legal[0], visits: 1})
		}
	}
	return out
}

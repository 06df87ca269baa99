// Package agent adapts move-finding policies to the line protocol:
// an agent receives one view line and answers with at most one move
// line. Engines own the stdio plumbing; agents only decide.
package agent

// Agent turns one observed view line into a move reply. ok is false
// when no reply is owed, which is how agents stay quiet on the
// opponent's turn and on lines that are not seated views.
type Agent interface {
	Act(view string) (reply string, ok bool)
}

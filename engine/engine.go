// Package engine runs one agent against a referee over line I/O: views
// and announcements arrive on in, move replies leave on out. The engine
// itself never interprets game state; that is the agent's job.
package engine

import (
	"bufio"
	"fmt"
	"io"

	"splendor/agent"
	"splendor/protocol"
)

// maxLineBytes bounds one incoming line. Views are small, but a
// truncated read would desynchronize the whole match, so the ceiling is
// generous.
const maxLineBytes = 1 << 20

type Engine struct {
	in    io.Reader
	out   io.Writer
	agent agent.Agent
}

func New(in io.Reader, out io.Writer, a agent.Agent) *Engine {
	return &Engine{in: in, out: out, agent: a}
}

// Run consumes lines until the referee closes the stream. Blank lines
// and result announcements are skipped; every other line is offered to
// the agent, and replies are written out one per line, flushed
// immediately so the referee never waits on a buffer.
func (e *Engine) Run() error {
	scanner := bufio.NewScanner(e.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || protocol.IsResultLine(line) {
			continue
		}
		reply, ok := e.agent.Act(line)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(e.out, reply); err != nil {
			return fmt.Errorf("write reply: %s", err)
		}
		if f, ok := e.out.(interface{ Flush() error }); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("flush reply: %s", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read views: %s", err)
	}
	return nil
}

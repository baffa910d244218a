package chat

import (
	"sync"
	"time"

	"github.com/hupe1980/careermentor/agent"
	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/mentor"
	"github.com/hupe1980/careermentor/runner"
)

// Session is the state of one conversation. It is created by Handler.Start
// and mutated only by Handler.HandleMessage, which serializes turns.
type Session struct {
	ID      string
	Created time.Time

	Agents      *mentor.Agents
	ActiveAgent *agent.Agent
	Config      runner.RunConfig
	Transcript  core.Transcript

	mu sync.Mutex
}

// Snapshot returns the active agent and a copy of the transcript.
func (s *Session) Snapshot() (*agent.Agent, core.Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ActiveAgent, s.Transcript.Append()
}

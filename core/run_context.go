package core

import (
	"context"

	"github.com/hupe1980/careermentor/logging"
)

// RunContext carries execution state for one model turn of a run. It is the
// opaque context handed to dynamic instructions and handoff callbacks:
//   - The ambient cancellation Context
//   - Identifiers (RunID, Agent info, Turn number)
//   - The logger scoped to the run
type RunContext struct {
	Context context.Context
	RunID   string
	Agent   AgentInfo
	Turn    int

	*loggerAdapter
}

// NewRunContext constructs a RunContext for agent at the given turn.
func NewRunContext(ctx context.Context, runID string, agent AgentInfo, turn int, logger logging.Logger) *RunContext {
	return &RunContext{
		Context:       ctx,
		RunID:         runID,
		Agent:         agent,
		Turn:          turn,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// GetAgentName returns the logical agent name for this turn.
func (rc *RunContext) GetAgentName() string { return rc.Agent.Name }

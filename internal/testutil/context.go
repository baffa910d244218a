package testutil

import (
	"context"
	"testing"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/logging"
)

// RunContext returns a RunContext for agentName bound to a context that is
// cancelled when the test ends.
func RunContext(t testing.TB, agentName string) *core.RunContext {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return core.NewRunContext(ctx, "run-test", core.AgentInfo{Name: agentName}, 1, logging.NoOpLogger{})
}

// ToolContext returns a ToolContext for a function call issued by agentName.
func ToolContext(t testing.TB, agentName, functionCallID string) *core.ToolContext {
	t.Helper()
	return core.NewToolContext(RunContext(t, agentName), functionCallID)
}

// Package flow executes a single agent turn: it assembles the model request
// through a chain of request processors, calls the model, and runs any tool
// calls the model asked for. The runner drives flows turn by turn and
// decides when to stop or hand off.
package flow

import (
	"github.com/hupe1980/careermentor/agent"
	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/model"
)

// State is the working input of one turn.
type State struct {
	// Agent is the agent whose turn it is.
	Agent *agent.Agent
	// History holds the conversation plus every model and tool round trip
	// produced so far in the run.
	History []core.Content
}

// RequestProcessor processes the request before sending it to the LLM.
type RequestProcessor interface {
	// Name returns the processor's identifier.
	Name() string
	// ProcessRequest modifies the request before model execution.
	ProcessRequest(rc *core.RunContext, req *model.Request, st *State) error
}

// TurnResult is the outcome of one turn.
type TurnResult struct {
	// Response is the raw model output.
	Response *model.Response
	// Events holds the model event followed by one function response event
	// per tool call, in call order.
	Events []core.Event
	// Transfer names the first agent a tool asked to hand off to, if any.
	Transfer string
}

// Final reports whether the model answered without requesting tools.
func (r *TurnResult) Final() bool {
	return len(r.Events) > 0 && r.Events[0].IsFinalResponse()
}

// Output returns the assistant text of the turn.
func (r *TurnResult) Output() string {
	if r.Response == nil {
		return ""
	}
	return r.Response.Content.Text()
}

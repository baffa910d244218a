package agent

import (
	"encoding/json"
	"fmt"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/model"
	"github.com/hupe1980/careermentor/tool"
)

// Options configures an Agent.
//
// Use functional options with New to override defaults.
type Options struct {
	Description string
	Instruction Instruction
	// Model is optional; the runner's RunConfig may supply one instead.
	Model    model.Model
	Tools    []tool.Tool
	Handoffs []Handoff
}

// Agent is an immutable descriptor of one conversational specialist.
type Agent struct {
	name        string
	description string
	instruction Instruction
	llm         model.Model
	tools       []tool.Tool
	handoffs    []Handoff
}

// New creates an agent named name. Without an explicit instruction the agent
// introduces itself as a helpful assistant.
func New(name string, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Description: fmt.Sprintf("Agent %s", name),
		Instruction: NewInstructionFromText(fmt.Sprintf("You are %s, a helpful AI assistant.", name)),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Agent{
		name:        name,
		description: opts.Description,
		instruction: opts.Instruction,
		llm:         opts.Model,
		tools:       append([]tool.Tool(nil), opts.Tools...),
		handoffs:    append([]Handoff(nil), opts.Handoffs...),
	}
}

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Description returns a short summary of the agent's purpose.
func (a *Agent) Description() string { return a.description }

// Model returns the agent's own model, or nil.
func (a *Agent) Model() model.Model { return a.llm }

// Info returns the identity carried on run contexts.
func (a *Agent) Info() core.AgentInfo {
	info := core.AgentInfo{Name: a.name}
	if a.llm != nil {
		info.Model = a.llm.Info().Name
	}
	return info
}

// ResolveInstructions produces the system prompt for the given run turn.
func (a *Agent) ResolveInstructions(rc *core.RunContext) (string, error) {
	return a.instruction.Resolve(rc)
}

// Tools returns the function tools followed by one transfer tool per handoff,
// in declaration order.
func (a *Agent) Tools() []tool.Tool {
	out := make([]tool.Tool, 0, len(a.tools)+len(a.handoffs))
	out = append(out, a.tools...)
	for _, h := range a.handoffs {
		out = append(out, h.Tool())
	}
	return out
}

// Tool looks up a tool (including handoff tools) by name.
func (a *Agent) Tool(name string) (tool.Tool, bool) {
	for _, t := range a.Tools() {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Handoffs returns a copy of the agent's handoff edges.
func (a *Agent) Handoffs() []Handoff {
	return append([]Handoff(nil), a.handoffs...)
}

// HandoffTo returns the edge whose target is named agentName.
func (a *Agent) HandoffTo(agentName string) (Handoff, bool) {
	for _, h := range a.handoffs {
		if h.Target != nil && h.Target.Name() == agentName {
			return h, true
		}
	}
	return Handoff{}, false
}

// ExecuteTool decodes JSON arguments and invokes the named tool returning its
// result or an error if the tool is unknown or the arguments are malformed.
func (a *Agent) ExecuteTool(toolCtx *core.ToolContext, toolName string, args string) (any, error) {
	t, exists := a.Tool(toolName)
	if !exists {
		return nil, fmt.Errorf("tool %s not found", toolName)
	}

	argsMap := make(map[string]any)
	if args != "" {
		if err := json.Unmarshal([]byte(args), &argsMap); err != nil {
			return nil, tool.NewToolError(toolName, fmt.Sprintf("failed to unmarshal args: %v", err), tool.CodeValidation)
		}
	}

	return t.Call(toolCtx, argsMap)
}

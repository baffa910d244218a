package tool

import (
	"github.com/hupe1980/careermentor/core"
)

// transferToAgentTool asks the runner to hand the conversation to a fixed
// target agent. It takes no arguments; the target is bound at construction.
type transferToAgentTool struct {
	name        string
	description string
	target      string
}

// NewTransferToAgentTool constructs a transfer tool that, when called, records
// a transfer to target on the ToolContext.
func NewTransferToAgentTool(name, description, target string) Tool {
	return &transferToAgentTool{name: name, description: description, target: target}
}

func (t *transferToAgentTool) Name() string { return t.name }

func (t *transferToAgentTool) Description() string { return t.description }

func (t *transferToAgentTool) Parameters() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

func (t *transferToAgentTool) Call(tc *core.ToolContext, _ map[string]any) (any, error) {
	if t.target == "" {
		return nil, NewToolError(t.name, "transfer target is empty", CodeExecution)
	}
	tc.TransferToAgent(t.target)
	return map[string]any{"assistant": t.target}, nil
}

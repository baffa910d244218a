package flow

import (
	"fmt"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/model"
)

// InstructionsProcessor resolves the agent's system prompt.
type InstructionsProcessor struct{}

// NewInstructionsProcessor creates a new instructions processor.
func NewInstructionsProcessor() *InstructionsProcessor { return &InstructionsProcessor{} }

// Name returns the processor's identifier.
func (p *InstructionsProcessor) Name() string { return "instructions" }

// ProcessRequest sets req.Instructions.
func (p *InstructionsProcessor) ProcessRequest(rc *core.RunContext, req *model.Request, st *State) error {
	instructions, err := st.Agent.ResolveInstructions(rc)
	if err != nil {
		return fmt.Errorf("failed to resolve instruction: %w", err)
	}

	rc.LogDebug("agent.instruction.resolved", "agent", st.Agent.Name(), "length", len(instructions))

	req.Instructions = instructions

	return nil
}

// ContentsProcessor copies the working history into the request.
type ContentsProcessor struct{}

// NewContentsProcessor creates a new contents processor.
func NewContentsProcessor() *ContentsProcessor { return &ContentsProcessor{} }

// Name returns the processor's identifier.
func (p *ContentsProcessor) Name() string { return "contents" }

// ProcessRequest sets req.Contents, skipping empty entries.
func (p *ContentsProcessor) ProcessRequest(_ *core.RunContext, req *model.Request, st *State) error {
	contents := make([]core.Content, 0, len(st.History))
	for _, c := range st.History {
		if len(c.Parts) > 0 {
			contents = append(contents, c)
		}
	}

	req.Contents = contents

	return nil
}

// ToolsProcessor advertises the agent's tools, handoffs included.
type ToolsProcessor struct{}

// NewToolsProcessor creates a new tools processor.
func NewToolsProcessor() *ToolsProcessor { return &ToolsProcessor{} }

// Name returns the processor's identifier.
func (p *ToolsProcessor) Name() string { return "tools" }

// ProcessRequest sets req.Tools.
func (p *ToolsProcessor) ProcessRequest(_ *core.RunContext, req *model.Request, st *State) error {
	tools := st.Agent.Tools()
	if len(tools) == 0 {
		return nil
	}

	defs := make([]model.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		params := t.Parameters()
		if params == nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  params,
			},
		})
	}

	req.Tools = defs

	return nil
}

package agent

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/tool"
)

// Handoff is a directed edge from one agent to another, exposed to the model
// as a tool.
type Handoff struct {
	Target *Agent

	// ToolNameOverride replaces the default transfer_to_<target> tool name.
	ToolNameOverride string
	// ToolDescriptionOverride replaces the generated tool description.
	ToolDescriptionOverride string

	// OnHandoff runs when the model takes this edge. A non-nil return value
	// becomes the next active agent; nil falls back to Target.
	OnHandoff func(rc *core.RunContext) *Agent
}

// NewHandoff creates an edge to target.
func NewHandoff(target *Agent, optFns ...func(h *Handoff)) Handoff {
	h := Handoff{Target: target}
	for _, fn := range optFns {
		fn(&h)
	}
	return h
}

// ToolName returns the name under which the edge is advertised.
func (h Handoff) ToolName() string {
	if h.ToolNameOverride != "" {
		return h.ToolNameOverride
	}
	return "transfer_to_" + toSnake(h.Target.Name())
}

// ToolDescription returns the description under which the edge is advertised.
func (h Handoff) ToolDescription() string {
	if h.ToolDescriptionOverride != "" {
		return h.ToolDescriptionOverride
	}
	desc := fmt.Sprintf("Handoff to the %s agent to handle the request.", h.Target.Name())
	if h.Target.Description() != "" {
		desc += " " + h.Target.Description()
	}
	return desc
}

// Tool returns the transfer tool backing this edge.
func (h Handoff) Tool() tool.Tool {
	return tool.NewTransferToAgentTool(h.ToolName(), h.ToolDescription(), h.Target.Name())
}

// Resolve runs the OnHandoff callback (if any) and returns the next agent.
func (h Handoff) Resolve(rc *core.RunContext) *Agent {
	if h.OnHandoff != nil {
		if next := h.OnHandoff(rc); next != nil {
			return next
		}
	}
	return h.Target
}

func toSnake(s string) string {
	var b strings.Builder
	prevUnderscore := true
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			if !prevUnderscore {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevUnderscore = false
		case r == ' ' || r == '-' || r == '_':
			if !prevUnderscore {
				b.WriteByte('_')
			}
			prevUnderscore = true
		default:
			b.WriteRune(r)
			prevUnderscore = false
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

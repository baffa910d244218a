package agent

import (
	"testing"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/internal/testutil"
	"github.com/hupe1980/careermentor/model"
	"github.com/hupe1980/careermentor/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool() tool.Tool {
	return tool.NewFunctionTool("echo", "Echo the input", map[string]any{
		"type":       "object",
		"properties": map[string]any{"text": map[string]any{"type": "string"}},
		"required":   []string{"text"},
	}, func(_ *core.ToolContext, args map[string]any) (any, error) {
		return args["text"], nil
	})
}

func TestNew_Defaults(t *testing.T) {
	a := New("Helper")

	assert.Equal(t, "Helper", a.Name())
	assert.Equal(t, "Agent Helper", a.Description())
	assert.Nil(t, a.Model())
	assert.Empty(t, a.Tools())

	text, err := a.ResolveInstructions(testutil.RunContext(t, "Helper"))
	require.NoError(t, err)
	assert.Equal(t, "You are Helper, a helpful AI assistant.", text)
}

func TestAgent_ToolsIncludeHandoffs(t *testing.T) {
	skill := New("SkillAgent", func(o *Options) { o.Description = "Builds roadmaps." })
	job := New("JobAgent")

	router := New("Router", func(o *Options) {
		o.Model = model.NewMockModel("mock", "mock")
		o.Tools = []tool.Tool{echoTool()}
		o.Handoffs = []Handoff{
			NewHandoff(skill),
			NewHandoff(job, func(h *Handoff) {
				h.ToolNameOverride = "handoff_to_job"
				h.ToolDescriptionOverride = "Handoff to JobAgent for job roles and salaries"
			}),
		}
	})

	names := []string{}
	for _, tl := range router.Tools() {
		names = append(names, tl.Name())
	}
	assert.Equal(t, []string{"echo", "transfer_to_skill_agent", "handoff_to_job"}, names)

	tl, ok := router.Tool("transfer_to_skill_agent")
	require.True(t, ok)
	assert.Equal(t, "Handoff to the SkillAgent agent to handle the request. Builds roadmaps.", tl.Description())

	h, ok := router.HandoffTo("JobAgent")
	require.True(t, ok)
	assert.Same(t, job, h.Target)

	_, ok = router.HandoffTo("Nobody")
	assert.False(t, ok)

	assert.Equal(t, core.AgentInfo{Name: "Router", Model: "mock"}, router.Info())
}

func TestAgent_ExecuteTool(t *testing.T) {
	a := New("Helper", func(o *Options) { o.Tools = []tool.Tool{echoTool()} })
	tc := testutil.ToolContext(t, "Helper", "fc-1")

	res, err := a.ExecuteTool(tc, "echo", `{"text":"hi"}`)
	require.NoError(t, err)
	assert.Equal(t, "hi", res)

	_, err = a.ExecuteTool(tc, "missing", `{}`)
	assert.Error(t, err)

	_, err = a.ExecuteTool(tc, "echo", `{not json`)
	var toolErr *tool.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, tool.CodeValidation, toolErr.Code)
}

func TestHandoff_Resolve(t *testing.T) {
	target := New("SkillAgent")
	other := New("Other")
	rc := testutil.RunContext(t, "CareerAgent")

	assert.Same(t, target, NewHandoff(target).Resolve(rc))

	called := false
	h := NewHandoff(target, func(h *Handoff) {
		h.OnHandoff = func(*core.RunContext) *Agent {
			called = true
			return other
		}
	})
	assert.Same(t, other, h.Resolve(rc))
	assert.True(t, called)

	nilCallback := NewHandoff(target, func(h *Handoff) {
		h.OnHandoff = func(*core.RunContext) *Agent { return nil }
	})
	assert.Same(t, target, nilCallback.Resolve(rc))
}

func TestHandoff_ToolTransfers(t *testing.T) {
	h := NewHandoff(New("JobAgent"))
	tc := testutil.ToolContext(t, "CareerAgent", "fc-h")

	_, err := h.Tool().Call(tc, map[string]any{})
	require.NoError(t, err)
	require.NotNil(t, tc.Actions().TransferToAgent)
	assert.Equal(t, "JobAgent", *tc.Actions().TransferToAgent)
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "skill_agent", toSnake("SkillAgent"))
	assert.Equal(t, "job_agent", toSnake("Job Agent"))
	assert.Equal(t, "career", toSnake("career"))
}

package tool

import (
	"errors"
	"testing"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------- FunctionTool Tests --------------------

func TestFunctionTool_Success(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}

	sumTool := NewFunctionTool("sum", "Add numbers", params, func(_ *core.ToolContext, args map[string]any) (any, error) {
		a := args["a"].(float64)
		b := args["b"].(float64)
		return a + b, nil
	})

	tc := testutil.ToolContext(t, "Agent", "fc1")
	result, err := sumTool.Call(tc, map[string]any{"a": 2.0, "b": 3.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
		},
		"required": []string{"a"},
	}
	tTool := NewFunctionTool("test", "Test", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return 0, nil
	})

	_, err := tTool.Call(testutil.ToolContext(t, "Agent", "fc2"), map[string]any{})
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeValidation, toolErr.Code)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	boom := errors.New("boom")
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	execTool := NewFunctionTool("fail", "Fails", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return nil, boom
	})

	_, err := execTool.Call(testutil.ToolContext(t, "Agent", "fc3"), map[string]any{})
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeExecution, toolErr.Code)
	assert.ErrorIs(t, err, boom)
}

func TestFunctionTool_ForwardsToolError(t *testing.T) {
	custom := NewToolError("custom", "nope", "CUSTOM")
	ft := NewFunctionTool("custom", "Custom", nil, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return nil, custom
	})

	_, err := ft.Call(testutil.ToolContext(t, "Agent", "fc4"), map[string]any{})
	assert.Same(t, custom, err)
}

type lookupArgs struct {
	Field string `json:"field" description:"Career field"`
}

func TestNewFunctionToolFromStruct(t *testing.T) {
	ft := NewFunctionToolFromStruct("lookup", "Lookup", lookupArgs{}, func(_ *core.ToolContext, args map[string]any) (any, error) {
		return args["field"], nil
	})

	assert.Equal(t, "lookup", ft.Name())
	assert.Equal(t, "Lookup", ft.Description())
	assert.Equal(t, []string{"field"}, ft.Parameters()["required"])

	_, err := ft.Call(testutil.ToolContext(t, "Agent", "fc5"), map[string]any{"field": 7})
	assert.Error(t, err, "non-string field must fail validation")
}

// -------------------- Transfer Tool --------------------

func TestTransferToAgentTool(t *testing.T) {
	tr := NewTransferToAgentTool("handoff_to_skill", "Handoff to SkillAgent for skill roadmaps", "SkillAgent")
	assert.Equal(t, "handoff_to_skill", tr.Name())

	tc := testutil.ToolContext(t, "CareerAgent", "fc-transfer")
	res, err := tr.Call(tc, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"assistant": "SkillAgent"}, res)

	require.NotNil(t, tc.Actions().TransferToAgent)
	assert.Equal(t, "SkillAgent", *tc.Actions().TransferToAgent)
}

func TestTransferToAgentTool_EmptyTarget(t *testing.T) {
	tr := NewTransferToAgentTool("broken", "", "")
	_, err := tr.Call(testutil.ToolContext(t, "CareerAgent", "fc"), nil)
	assert.Error(t, err)
}

// -------------------- ToolError Formatting --------------------

func TestToolErrorFormatting(t *testing.T) {
	err := NewToolError("demo", "something failed", "E123")
	assert.Contains(t, err.Error(), "E123")
	assert.Contains(t, err.Error(), "demo")

	bare := &ToolError{Tool: "demo", Message: "x"}
	assert.Equal(t, "tool error in demo: x", bare.Error())
}

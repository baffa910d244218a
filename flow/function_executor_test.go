package flow

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hupe1980/careermentor/agent"
	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/internal/testutil"
	"github.com/hupe1980/careermentor/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teMockTool struct {
	name       string
	delay      time.Duration
	result     any
	err        error
	panicMsg   any
	transferTo string
}

func (mt *teMockTool) Name() string               { return mt.name }
func (mt *teMockTool) Description() string        { return "mock tool" }
func (mt *teMockTool) Parameters() map[string]any { return map[string]any{} }
func (mt *teMockTool) Call(tc *core.ToolContext, _ map[string]any) (any, error) {
	if mt.delay > 0 {
		select {
		case <-time.After(mt.delay):
		case <-tc.Context().Done():
			return nil, tc.Context().Err()
		}
	}
	if mt.panicMsg != nil {
		panic(mt.panicMsg)
	}
	if mt.transferTo != "" {
		tc.TransferToAgent(mt.transferTo)
	}
	return mt.result, mt.err
}

func teAgent(tools ...tool.Tool) *agent.Agent {
	return agent.New("A", func(o *agent.Options) { o.Tools = tools })
}

func collect(events *[]core.Event) func(core.Event) {
	return func(ev core.Event) { *events = append(*events, ev) }
}

func TestFunctionExecutor_Single(t *testing.T) {
	a := teAgent(&teMockTool{name: "one", result: 42})
	te := NewParallelFunctionExecutor(FunctionExecutorConfig{MaxParallel: 4, PreserveOrder: true})

	var events []core.Event
	te.Execute(testutil.RunContext(t, "A"), a, []core.FunctionCall{{ID: "1", Name: "one", Arguments: "{}"}}, collect(&events))

	require.Len(t, events, 1)
	assert.Equal(t, 42, events[0].GetFunctionResponses()[0].Response)
	assert.Equal(t, core.RoleTool, events[0].Content.Role)
}

func TestFunctionExecutor_ParallelUnordered(t *testing.T) {
	a := teAgent(
		&teMockTool{name: "slow", delay: 100 * time.Millisecond, result: "s"},
		&teMockTool{name: "fast", delay: 5 * time.Millisecond, result: "f"},
	)
	te := NewParallelFunctionExecutor(FunctionExecutorConfig{MaxParallel: 2, PreserveOrder: false})

	var events []core.Event
	te.Execute(testutil.RunContext(t, "A"), a, []core.FunctionCall{
		{ID: "1", Name: "slow", Arguments: "{}"},
		{ID: "2", Name: "fast", Arguments: "{}"},
	}, collect(&events))

	require.Len(t, events, 2)
	assert.Equal(t, "fast", events[0].GetFunctionResponses()[0].Name)
}

func TestFunctionExecutor_PreserveOrder(t *testing.T) {
	a := teAgent(
		&teMockTool{name: "t1", delay: 30 * time.Millisecond, result: 1},
		&teMockTool{name: "t2", delay: 5 * time.Millisecond, result: 2},
	)
	te := NewParallelFunctionExecutor(FunctionExecutorConfig{MaxParallel: 2, PreserveOrder: true})

	var events []core.Event
	te.Execute(testutil.RunContext(t, "A"), a, []core.FunctionCall{
		{ID: "1", Name: "t1", Arguments: "{}"},
		{ID: "2", Name: "t2", Arguments: "{}"},
	}, collect(&events))

	require.Len(t, events, 2)
	assert.Equal(t, "t1", events[0].GetFunctionResponses()[0].Name)
	assert.Equal(t, "t2", events[1].GetFunctionResponses()[0].Name)
}

func TestFunctionExecutor_ErrorIsolation(t *testing.T) {
	a := teAgent(
		&teMockTool{name: "ok", result: "fine"},
		&teMockTool{name: "bad", err: errors.New("boom")},
	)
	te := NewParallelFunctionExecutor(FunctionExecutorConfig{MaxParallel: 2})

	var errs int32
	te.Execute(testutil.RunContext(t, "A"), a, []core.FunctionCall{
		{ID: "1", Name: "ok", Arguments: "{}"},
		{ID: "2", Name: "bad", Arguments: "{}"},
	}, func(ev core.Event) {
		if ev.GetFunctionResponses()[0].Error != "" {
			atomic.AddInt32(&errs, 1)
		}
	})

	assert.Equal(t, int32(1), atomic.LoadInt32(&errs))
}

func TestFunctionExecutor_PanicRecovery(t *testing.T) {
	a := teAgent(&teMockTool{name: "panic", panicMsg: "boom"})
	te := NewParallelFunctionExecutor(FunctionExecutorConfig{})

	var events []core.Event
	te.Execute(testutil.RunContext(t, "A"), a, []core.FunctionCall{{ID: "1", Name: "panic", Arguments: "{}"}}, collect(&events))

	require.Len(t, events, 1)
	assert.Contains(t, events[0].GetFunctionResponses()[0].Error, "panic recovered")
}

func TestFunctionExecutor_UnknownTool(t *testing.T) {
	a := teAgent()
	te := NewParallelFunctionExecutor(FunctionExecutorConfig{})

	var events []core.Event
	te.Execute(testutil.RunContext(t, "A"), a, []core.FunctionCall{{ID: "1", Name: "ghost"}}, collect(&events))

	require.Len(t, events, 1)
	assert.Contains(t, events[0].GetFunctionResponses()[0].Error, "tool ghost not found")
}

func TestFunctionExecutor_ActionsApplied(t *testing.T) {
	a := teAgent(&teMockTool{name: "act", transferTo: "next"})
	te := NewParallelFunctionExecutor(FunctionExecutorConfig{})

	var events []core.Event
	te.Execute(testutil.RunContext(t, "A"), a, []core.FunctionCall{{ID: "1", Name: "act", Arguments: "{}"}}, collect(&events))

	require.Len(t, events, 1)
	require.NotNil(t, events[0].Actions.TransferToAgent)
	assert.Equal(t, "next", *events[0].Actions.TransferToAgent)
}

package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvent_ConstructorsAndMethods(t *testing.T) {
	e := NewEvent("run-123", "authorA")
	assert.Equal(t, "authorA", e.Author)
	assert.Equal(t, "run-123", e.RunID)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())

	msg := NewContentEvent("run-1", "agent1", NewTextContent(RoleAssistant, "hello world"))
	assert.Equal(t, RoleAssistant, msg.Content.Role)
	assert.Equal(t, "hello world", msg.Content.Text())
	assert.True(t, msg.IsFinalResponse())

	call := NewContentEvent("run-1", "agent2", Content{Role: RoleAssistant, Parts: []Part{
		FunctionCallPart{FunctionCall: FunctionCall{ID: "c1", Name: "do_stuff", Arguments: "{}"}},
	}})
	calls := call.GetFunctionCalls()
	assert.Len(t, calls, 1)
	assert.Equal(t, "do_stuff", calls[0].Name)
	assert.False(t, call.IsFinalResponse())

	ok := NewFunctionResponseEvent("run-1", "agent2", "call-1", "do_stuff", 42, nil)
	resps := ok.GetFunctionResponses()
	assert.Len(t, resps, 1)
	assert.Equal(t, 42, resps[0].Response)
	assert.Empty(t, resps[0].Error)
	assert.Equal(t, RoleTool, ok.Content.Role)

	failed := NewFunctionResponseEvent("run-1", "agent2", "call-2", "do_stuff", nil, errors.New("boom"))
	assert.Equal(t, "boom", failed.GetFunctionResponses()[0].Error)
}

func TestEvent_ErrorEventIsNotFinal(t *testing.T) {
	ev := NewErrorEvent("run", "agent", errors.New("model unavailable"))
	assert.NotNil(t, ev.ErrorMessage)
	assert.Equal(t, "model unavailable", *ev.ErrorMessage)
	assert.False(t, ev.IsFinalResponse())
	assert.Nil(t, ev.GetFunctionCalls())
	assert.Nil(t, ev.GetFunctionResponses())
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}

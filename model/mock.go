package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/careermentor/core"
)

// MockModel is a scripted in‑memory Model useful for tests & examples.
// Queued responses are returned in order; once the queue is drained it falls
// back to echoing the last user text.
type MockModel struct {
	info Info

	mu       sync.Mutex
	queue    []mockStep
	requests []Request
}

type mockStep struct {
	resp *Response
	err  error
}

// NewMockModel constructs a MockModel with tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info: Info{
			Name:          name,
			Provider:      provider,
			SupportsTools: true,
		},
	}
}

// AddTextResponse queues a plain assistant answer.
func (m *MockModel) AddTextResponse(text string) *MockModel {
	return m.AddResponse(&Response{
		Content:      core.NewTextContent(core.RoleAssistant, text),
		FinishReason: "stop",
	})
}

// AddToolCall queues an assistant turn requesting a single tool call.
func (m *MockModel) AddToolCall(id, name, arguments string) *MockModel {
	return m.AddResponse(&Response{
		Content: core.Content{Role: core.RoleAssistant, Parts: []core.Part{
			core.FunctionCallPart{FunctionCall: core.FunctionCall{ID: id, Name: name, Arguments: arguments}},
		}},
		FinishReason: "tool_calls",
	})
}

// AddResponse queues an arbitrary response.
func (m *MockModel) AddResponse(resp *Response) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockStep{resp: resp})
	return m
}

// AddError queues a failing turn.
func (m *MockModel) AddError(err error) *MockModel {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockStep{err: err})
	return m
}

// Requests returns a copy of every request received so far.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	var step *mockStep
	if len(m.queue) > 0 {
		step = &m.queue[0]
		m.queue = m.queue[1:]
	}
	m.mu.Unlock()

	if step != nil {
		if step.err != nil {
			return nil, step.err
		}
		return step.resp, nil
	}

	if len(req.Contents) == 0 {
		return nil, fmt.Errorf("no contents provided")
	}

	last := req.Contents[len(req.Contents)-1]

	return &Response{
		Content:      core.NewTextContent(core.RoleAssistant, fmt.Sprintf("Mock response to: %s", last.Text())),
		FinishReason: "stop",
	}, nil
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }

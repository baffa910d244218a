package flow

import (
	"fmt"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/model"
)

// Options configures a Flow.
type Options struct {
	RequestProcessors []RequestProcessor
	Executor          FunctionExecutor
}

// Flow performs one request -> LLM -> tools cycle with pluggable request
// processors. A Flow is stateless and safe for concurrent use.
type Flow struct {
	requestProcessors []RequestProcessor
	executor          FunctionExecutor
}

// New creates a flow with the default processors (instructions, contents,
// tools) and an order-preserving parallel executor.
func New(optFns ...func(o *Options)) *Flow {
	opts := Options{
		RequestProcessors: []RequestProcessor{
			NewInstructionsProcessor(),
			NewContentsProcessor(),
			NewToolsProcessor(),
		},
		Executor: NewParallelFunctionExecutor(FunctionExecutorConfig{PreserveOrder: true}),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Flow{
		requestProcessors: opts.RequestProcessors,
		executor:          opts.Executor,
	}
}

// AddRequestProcessor appends a request processor; order of registration defines execution order.
func (f *Flow) AddRequestProcessor(processor RequestProcessor) {
	f.requestProcessors = append(f.requestProcessors, processor)
}

// RunTurn executes one model turn for st.Agent using llm, then runs the
// requested tool calls. Model failures are returned as errors; tool failures
// become error responses inside the returned events.
func (f *Flow) RunTurn(rc *core.RunContext, llm model.Model, st *State) (*TurnResult, error) {
	req := new(model.Request)

	for _, processor := range f.requestProcessors {
		if err := processor.ProcessRequest(rc, req, st); err != nil {
			return nil, fmt.Errorf("request processor %s failed: %w", processor.Name(), err)
		}
	}

	resp, err := llm.Generate(rc.Context, *req)
	if err != nil {
		return nil, err
	}

	ev := core.NewContentEvent(rc.RunID, st.Agent.Name(), resp.Content)
	result := &TurnResult{
		Response: resp,
		Events:   []core.Event{ev},
	}

	fnCalls := ev.GetFunctionCalls()
	if len(fnCalls) == 0 {
		return result, nil
	}

	f.executor.Execute(rc, st.Agent, fnCalls, func(respEv core.Event) {
		result.Events = append(result.Events, respEv)
		if result.Transfer == "" && respEv.Actions.TransferToAgent != nil {
			result.Transfer = *respEv.Actions.TransferToAgent
		}
	})

	return result, nil
}

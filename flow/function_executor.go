package flow

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/hupe1980/careermentor/agent"
	"github.com/hupe1980/careermentor/core"
)

// FunctionExecutor executes a batch of function/tool calls and emits function
// response events through the provided emit callback. Implementations must:
//   - Respect rc.Context cancellation
//   - Never panic (recover internally and emit error responses)
//   - Emit exactly one FunctionResponse event per executed FunctionCall
//   - Copy ToolContext actions (transfers) onto the emitted events
type FunctionExecutor interface {
	Execute(rc *core.RunContext, a *agent.Agent, fnCalls []core.FunctionCall, emit func(core.Event))
}

// FunctionExecutorConfig configures the default parallel executor.
type FunctionExecutorConfig struct {
	MaxParallel    int  // 0 or <1 => no explicit limit (len(fnCalls))
	PreserveOrder  bool // if true, buffer results and emit in original order
	LogStartEvents bool // log a start line per function
}

// parallelFunctionExecutor is the default implementation.
type parallelFunctionExecutor struct {
	cfg FunctionExecutorConfig
}

// NewParallelFunctionExecutor constructs a new executor with the given config.
func NewParallelFunctionExecutor(cfg FunctionExecutorConfig) FunctionExecutor {
	return &parallelFunctionExecutor{cfg: cfg}
}

func (e *parallelFunctionExecutor) Execute(
	rc *core.RunContext,
	a *agent.Agent,
	fnCalls []core.FunctionCall,
	emit func(core.Event),
) {
	n := len(fnCalls)
	if n == 0 {
		return
	}

	// Fast path: single call, execute inline.
	if n == 1 {
		emit(e.executeOne(rc, a, fnCalls[0]))
		return
	}

	maxPar := e.cfg.MaxParallel
	if maxPar <= 0 || maxPar > n {
		maxPar = n
	}

	results := make([]*core.Event, n) // used only if PreserveOrder
	var mu sync.Mutex                 // protects unordered emit & results writes
	var wg sync.WaitGroup

	sem := make(chan struct{}, maxPar)

	batchStart := time.Now()
	for i := range fnCalls {
		if rc.Context.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, fc core.FunctionCall) {
			defer wg.Done()
			defer func() { <-sem }()

			if rc.Context.Err() != nil {
				return
			}

			ev := e.executeOne(rc, a, fc)

			mu.Lock()
			defer mu.Unlock()
			if e.cfg.PreserveOrder {
				results[idx] = &ev
				return
			}
			emit(ev)
		}(i, fnCalls[i])
	}

	wg.Wait()

	if e.cfg.PreserveOrder {
		for _, ev := range results {
			if ev != nil {
				emit(*ev)
			}
		}
	}

	rc.LogDebug(
		"agent.functions.batch.complete",
		"agent", a.Name(),
		"count", n,
		"parallelism", maxPar,
		"preserve_order", e.cfg.PreserveOrder,
		"duration_ms", time.Since(batchStart).Milliseconds(),
	)
}

func (e *parallelFunctionExecutor) executeOne(rc *core.RunContext, a *agent.Agent, fc core.FunctionCall) core.Event {
	toolCtx := core.NewToolContext(rc, fc.ID)
	if e.cfg.LogStartEvents {
		rc.LogInfo("agent.function.start", "agent", a.Name(), "function", fc.Name, "function_call_id", fc.ID)
	}

	start := time.Now()
	var (
		result any
		err    error
	)
	func() { // panic safety
		defer func() {
			if r := recover(); r != nil {
				err = panicError(r)
				rc.LogError("agent.function.panic", "agent", a.Name(), "function", fc.Name, "recover", r)
			}
		}()
		result, err = a.ExecuteTool(toolCtx, fc.Name, fc.Arguments)
	}()

	rc.LogInfo(
		"agent.function.executed",
		"agent", a.Name(),
		"function", fc.Name,
		"duration_ms", time.Since(start).Milliseconds(),
		"error", err != nil,
	)

	respEv := core.NewFunctionResponseEvent(rc.RunID, a.Name(), fc.ID, fc.Name, result, err)
	respEv.Actions = *toolCtx.Actions()

	return respEv
}

// panicError converts a recovered panic value to an error carrying the stack.
func panicError(r any) error { return &panicErr{val: r, stack: debug.Stack()} }

type panicErr struct {
	val   any
	stack []byte
}

func (p *panicErr) Error() string { return fmt.Sprintf("panic recovered: %v", p.val) }

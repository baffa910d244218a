package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/careermentor/agent"
	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/flow"
	"github.com/hupe1980/careermentor/logging"
	"github.com/hupe1980/careermentor/model"
)

// DefaultMaxTurns bounds the number of model turns per run.
const DefaultMaxTurns = 10

var (
	// ErrMaxTurnsExceeded is returned when a run does not reach a final
	// answer within its turn budget.
	ErrMaxTurnsExceeded = errors.New("max turns exceeded")
	// ErrNoModel is returned when neither the agent nor the run config
	// supplies a model.
	ErrNoModel = errors.New("no model configured")
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// MaxTurns applies when RunConfig.MaxTurns is zero.
	MaxTurns int
	// Flow executes individual turns.
	Flow *flow.Flow
	// Logger receives run diagnostics.
	Logger logging.Logger
}

// RunConfig is the per-session run configuration.
type RunConfig struct {
	// Model overrides the agents' own models when set.
	Model model.Model
	// Provider labels the backend in diagnostics; defaults to Model.Info().Provider.
	Provider string
	// TracingDisabled demotes per-turn trace logs to debug level.
	TracingDisabled bool
	// MaxTurns overrides the runner default when positive.
	MaxTurns int
}

// Result is the outcome of a completed run.
type Result struct {
	RunID       string
	FinalOutput string
	FinalAgent  *agent.Agent
	Events      []core.Event
	Turns       int
	Usage       model.TokenUsage
}

// Runner coordinates agent execution across turns and handoffs.
type Runner struct {
	maxTurns int
	flow     *flow.Flow
	logger   logging.Logger
}

// New constructs a Runner with optional overrides.
func New(optFns ...func(o *Options)) *Runner {
	opts := Options{
		MaxTurns: DefaultMaxTurns,
		Logger:   logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Flow == nil {
		opts.Flow = flow.New()
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Runner{
		maxTurns: opts.MaxTurns,
		flow:     opts.Flow,
		logger:   opts.Logger,
	}
}

// Run executes starting agent a against transcript and returns once an agent
// produces a final answer. The transcript is not modified. When a turn fails
// the partial Result is returned with the error; its last event is an error
// event and FinalAgent is the agent whose turn failed.
func (r *Runner) Run(ctx context.Context, a *agent.Agent, transcript core.Transcript, cfg RunConfig) (*Result, error) {
	if a == nil {
		return nil, errors.New("runner: starting agent is nil")
	}

	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = r.maxTurns
	}

	runID := core.NewID()
	limiter := core.NewModelLimiter(maxTurns)
	history := transcript.Contents()
	current := a
	result := &Result{RunID: runID}
	start := time.Now()

	r.trace(cfg, "runner.run.start", "run_id", runID, "agent", a.Name(), "messages", len(transcript), "max_turns", maxTurns)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := limiter.Increment(); err != nil {
			r.logger.Warn("runner.run.max_turns", "run_id", runID, "agent", current.Name(), "max_turns", maxTurns)
			return nil, fmt.Errorf("%w: %v", ErrMaxTurnsExceeded, err)
		}

		llm := cfg.Model
		if llm == nil {
			llm = current.Model()
		}
		if llm == nil {
			return nil, fmt.Errorf("agent %s: %w", current.Name(), ErrNoModel)
		}

		turn := limiter.Count()
		rc := core.NewRunContext(ctx, runID, agentInfo(current, llm), turn, r.logger)

		r.trace(cfg, "runner.turn.start",
			"run_id", runID,
			"turn", turn,
			"remaining_turns", limiter.Remaining(),
			"agent", current.Name(),
			"provider", provider(cfg, llm),
		)

		res, err := r.flow.RunTurn(rc, llm, &flow.State{Agent: current, History: history})
		if err != nil {
			r.logger.Error("runner.turn.error", "run_id", runID, "turn", turn, "agent", current.Name(), "error", err.Error())
			result.Events = append(result.Events, core.NewErrorEvent(runID, current.Name(), err))
			result.FinalAgent = current
			return result, fmt.Errorf("agent %s turn %d: %w", current.Name(), turn, err)
		}

		result.Events = append(result.Events, res.Events...)
		result.Usage.Add(res.Response.Usage)
		result.Turns = turn

		if res.Final() {
			result.FinalOutput = res.Output()
			result.FinalAgent = current

			r.trace(cfg, "runner.run.complete",
				"run_id", runID,
				"agent", current.Name(),
				"turns", turn,
				"duration_ms", time.Since(start).Milliseconds(),
			)

			return result, nil
		}

		for _, ev := range res.Events {
			if ev.Content != nil {
				history = append(history, *ev.Content)
			}
		}

		if res.Transfer != "" {
			current = r.handoff(rc, cfg, current, res.Transfer)
		}
	}
}

// handoff resolves the edge from current to target. Unknown targets keep the
// current agent active; the model sees the tool result and can recover.
func (r *Runner) handoff(rc *core.RunContext, cfg RunConfig, current *agent.Agent, target string) *agent.Agent {
	h, ok := current.HandoffTo(target)
	if !ok {
		r.logger.Warn("runner.handoff.unknown", "run_id", rc.RunID, "from_agent", current.Name(), "to_agent", target)
		return current
	}

	next := h.Resolve(rc)

	r.trace(cfg, "runner.handoff", "run_id", rc.RunID, "from_agent", current.Name(), "to_agent", next.Name(), "turn", rc.Turn)

	return next
}

func (r *Runner) trace(cfg RunConfig, msg string, args ...any) {
	if cfg.TracingDisabled {
		r.logger.Debug(msg, args...)
		return
	}
	r.logger.Info(msg, args...)
}

func agentInfo(a *agent.Agent, llm model.Model) core.AgentInfo {
	info := a.Info()
	info.Model = llm.Info().Name
	return info
}

func provider(cfg RunConfig, llm model.Model) string {
	if cfg.Provider != "" {
		return cfg.Provider
	}
	return llm.Info().Provider
}

// ToolCalls returns every function call the run's agents issued, in order.
func (r *Result) ToolCalls() []core.FunctionCall {
	var calls []core.FunctionCall
	for _, ev := range r.Events {
		calls = append(calls, ev.GetFunctionCalls()...)
	}
	return calls
}

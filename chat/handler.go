package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/careermentor/agent"
	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/logging"
	"github.com/hupe1980/careermentor/mentor"
	"github.com/hupe1980/careermentor/model"
	"github.com/hupe1980/careermentor/runner"
	"github.com/hupe1980/careermentor/session"
)

// Fixed UI texts.
const (
	WelcomeMessage      = "🎓 **Welcome to Career Mentor AI AGENT!**\n\n-Tell me your career goals or interests, and I’ll guide you through next steps."
	ThinkingPlaceholder = "💭 Thinking..."
	ErrorPrefix         = "❌ Error: "
)

type notice struct {
	emoji       string
	description string
}

var handoffNotices = map[string]notice{
	mentor.SkillAgentName: {"📚", "I'll create a detailed skill roadmap to help you succeed in your chosen field!"},
	mentor.JobAgentName:   {"💼", "I'll help you explore job roles, salaries, and career preparation strategies!"},
}

var defaultNotice = notice{"🤖", "I'll help you with your request!"}

// HandoffNotice renders the system message announcing a switch to agentName.
func HandoffNotice(agentName string) string {
	n, ok := handoffNotices[agentName]
	if !ok {
		n = defaultNotice
	}
	return fmt.Sprintf("%s **Switching to %s**\n\n%s", n.emoji, agentName, n.description)
}

// Invoker runs an agent over a transcript. *runner.Runner satisfies it.
type Invoker interface {
	Run(ctx context.Context, a *agent.Agent, transcript core.Transcript, cfg runner.RunConfig) (*runner.Result, error)
}

// Options configures a Handler.
type Options struct {
	Logger logging.Logger
	Store  session.Store[*Session]
	// Provider labels the model backend in run diagnostics.
	Provider string
	// MaxTurns bounds each run; zero keeps the runner default.
	MaxTurns int
	// Tracing promotes per-turn run traces from debug to info.
	Tracing bool
	// StickyHandoff keeps the agent a run finished with active for the next
	// message instead of restarting from CareerAgent.
	StickyHandoff bool
}

// Handler implements the conversation lifecycle. It is safe for concurrent
// use across sessions; turns within one session are serialized.
type Handler struct {
	invoker Invoker
	model   model.Model
	store   session.Store[*Session]
	logger  logging.Logger

	provider      string
	maxTurns      int
	tracing       bool
	stickyHandoff bool
}

// New creates a Handler that runs agents backed by m through invoker.
func New(invoker Invoker, m model.Model, optFns ...func(o *Options)) *Handler {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore[*Session]()
	}

	return &Handler{
		invoker:       invoker,
		model:         m,
		store:         opts.Store,
		logger:        opts.Logger,
		provider:      opts.Provider,
		maxTurns:      opts.MaxTurns,
		tracing:       opts.Tracing,
		stickyHandoff: opts.StickyHandoff,
	}
}

// Start opens a conversation: it builds the agent graph and run config,
// stores a fresh session with CareerAgent active and an empty transcript,
// then greets the user.
func (h *Handler) Start(ctx context.Context, ui UI) (*Session, error) {
	agents := mentor.New(h.model, func(o *mentor.Options) { o.Logger = h.logger })

	sess := &Session{
		ID:          uuid.NewString(),
		Created:     time.Now().UTC(),
		Agents:      agents,
		ActiveAgent: agents.Career,
		Config: runner.RunConfig{
			Model:           h.model,
			Provider:        h.provider,
			TracingDisabled: !h.tracing,
			MaxTurns:        h.maxTurns,
		},
		Transcript: core.Transcript{},
	}

	if err := h.store.Put(sess.ID, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	h.logger.Info("chat.session.start", "session_id", sess.ID, "agent", sess.ActiveAgent.Name())

	if _, err := ui.Send(ctx, Message{Author: AssistantAuthor, Content: WelcomeMessage}); err != nil {
		return sess, fmt.Errorf("send welcome: %w", err)
	}

	return sess, nil
}

// Session returns the stored session for id.
func (h *Handler) Session(id string) (*Session, error) {
	return h.store.Get(id)
}

// End discards the session state.
func (h *Handler) End(sess *Session) error {
	_, transcript := sess.Snapshot()
	h.logger.Info("chat.session.end", "session_id", sess.ID, "messages", len(transcript))
	return h.store.Delete(sess.ID)
}

// HandleMessage processes one user message. Runtime failures are rendered
// into the placeholder and leave the transcript unchanged; the returned error
// only reports UI failures.
func (h *Handler) HandleMessage(ctx context.Context, sess *Session, ui UI, text string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	placeholderID, err := ui.Send(ctx, Message{Author: AssistantAuthor, Content: ThinkingPlaceholder})
	if err != nil {
		return fmt.Errorf("send placeholder: %w", err)
	}

	start := sess.ActiveAgent
	cfg := sess.Config
	transcript := sess.Transcript.Append(core.UserMessage(text))

	h.logger.Info("chat.turn.start",
		"session_id", sess.ID,
		"agent", start.Name(),
		"messages", len(transcript),
	)

	began := time.Now()

	result, err := h.invoker.Run(ctx, start, transcript, cfg)
	if err != nil {
		h.logger.Error("chat.turn.error", "session_id", sess.ID, "agent", start.Name(), "error", err.Error())

		if uerr := ui.Update(ctx, placeholderID, ErrorPrefix+err.Error()); uerr != nil {
			return fmt.Errorf("update placeholder: %w", uerr)
		}

		return nil
	}

	h.announceHandoff(ctx, sess, ui, start, result.FinalAgent)

	if err := ui.Update(ctx, placeholderID, result.FinalOutput); err != nil {
		h.logger.Error("chat.turn.update_failed", "session_id", sess.ID, "error", err.Error())
		return fmt.Errorf("update placeholder: %w", err)
	}

	sess.Transcript = transcript.Append(core.AssistantMessage(result.FinalOutput))

	if h.stickyHandoff && result.FinalAgent != nil {
		sess.ActiveAgent = result.FinalAgent
	}

	if err := h.store.Put(sess.ID, sess); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	h.logger.Info("chat.turn.complete",
		"session_id", sess.ID,
		"final_agent", agentName(result.FinalAgent),
		"tool_calls", len(result.ToolCalls()),
		"messages", len(sess.Transcript),
		"duration_ms", time.Since(began).Milliseconds(),
	)

	return nil
}

// announceHandoff sends the switch notice when the run ended on a different
// agent. Failures here never affect the turn.
func (h *Handler) announceHandoff(ctx context.Context, sess *Session, ui UI, start, final *agent.Agent) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Warn("chat.handoff.notice_error", "session_id", sess.ID, "error", fmt.Sprint(r))
		}
	}()

	if final == nil || final.Name() == start.Name() {
		return
	}

	h.logger.Info("chat.handoff", "session_id", sess.ID, "from_agent", start.Name(), "to_agent", final.Name())

	if _, err := ui.Send(ctx, Message{Author: SystemAuthor, Content: HandoffNotice(final.Name())}); err != nil {
		h.logger.Warn("chat.handoff.notice_error", "session_id", sess.ID, "error", err.Error())
	}
}

func agentName(a *agent.Agent) string {
	if a == nil {
		return ""
	}
	return a.Name()
}

// Package mentor defines the career-mentor agent graph: a routing
// CareerAgent with handoff edges to a roadmap-building SkillAgent and a
// job-market JobAgent.
package mentor

import (
	"github.com/hupe1980/careermentor/agent"
	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/logging"
	"github.com/hupe1980/careermentor/model"
	"github.com/hupe1980/careermentor/roadmap"
	"github.com/hupe1980/careermentor/tool"
)

// Agent names.
const (
	CareerAgentName = "CareerAgent"
	SkillAgentName  = "SkillAgent"
	JobAgentName    = "JobAgent"
)

// Handoff tool names and descriptions advertised on CareerAgent.
const (
	HandoffToSkillTool        = "handoff_to_skill"
	HandoffToSkillDescription = "Handoff to SkillAgent for skill roadmaps"
	HandoffToJobTool          = "handoff_to_job"
	HandoffToJobDescription   = "Handoff to JobAgent for job roles and salaries"
)

// Instruction texts.
const (
	SkillInstructions = "You provide step-by-step skill roadmaps based on the user's career interest. " +
		"Ask for their target field and use get_career_roadmap()."

	JobInstructions = "You suggest popular job roles, responsibilities, and how to prepare for them."

	CareerInstructions = "You are a friendly AI that helps users explore careers. \n" +
		"\n" +
		"You have access to two specialized agents:\n" +
		"1. SkillAgent - for creating skill roadmaps and learning paths\n" +
		"2. JobAgent - for exploring job roles, salaries, and career preparation\n" +
		"\n" +
		"Use the appropriate handoff tool when:\n" +
		"- User asks about skills, learning, or skill development → use handoff_to_skill\n" +
		"- User asks about job titles, salaries, or career preparation → use handoff_to_job\n" +
		"\n" +
		"Always be helpful and guide users to the right specialist."
)

// Handoff diagnostics.
const (
	skillHandoffMessage = "📚 Switching to SkillAgent - I'll create a detailed skill roadmap!"
	jobHandoffMessage   = "💼 Switching to JobAgent - I'll help you explore job roles and salaries!"
)

// Options configures the agent graph.
type Options struct {
	Logger logging.Logger
}

// Agents is the per-session agent graph.
type Agents struct {
	Career *agent.Agent
	Skill  *agent.Agent
	Job    *agent.Agent

	logger logging.Logger
}

// New builds the three agents, all backed by m.
func New(m model.Model, optFns ...func(o *Options)) *Agents {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	a := &Agents{logger: opts.Logger}

	a.Skill = agent.New(SkillAgentName, func(o *agent.Options) {
		o.Description = "Creates step-by-step skill roadmaps."
		o.Instruction = agent.NewInstructionFromText(SkillInstructions)
		o.Model = m
		o.Tools = []tool.Tool{roadmap.NewTool()}
	})

	a.Job = agent.New(JobAgentName, func(o *agent.Options) {
		o.Description = "Explores job roles, salaries and career preparation."
		o.Instruction = agent.NewInstructionFromText(JobInstructions)
		o.Model = m
	})

	a.Career = agent.New(CareerAgentName, func(o *agent.Options) {
		o.Description = "Routes career questions to the right specialist."
		o.Instruction = agent.NewInstructionFromText(CareerInstructions)
		o.Model = m
		o.Handoffs = []agent.Handoff{
			agent.NewHandoff(a.Skill, func(h *agent.Handoff) {
				h.ToolNameOverride = HandoffToSkillTool
				h.ToolDescriptionOverride = HandoffToSkillDescription
				h.OnHandoff = a.OnHandoffToSkill
			}),
			agent.NewHandoff(a.Job, func(h *agent.Handoff) {
				h.ToolNameOverride = HandoffToJobTool
				h.ToolDescriptionOverride = HandoffToJobDescription
				h.OnHandoff = a.OnHandoffToJob
			}),
		}
	})

	return a
}

// OnHandoffToSkill logs the switch and returns SkillAgent.
func (a *Agents) OnHandoffToSkill(rc *core.RunContext) *agent.Agent {
	a.logHandoff(rc, a.Skill, skillHandoffMessage)
	return a.Skill
}

// OnHandoffToJob logs the switch and returns JobAgent.
func (a *Agents) OnHandoffToJob(rc *core.RunContext) *agent.Agent {
	a.logHandoff(rc, a.Job, jobHandoffMessage)
	return a.Job
}

func (a *Agents) logHandoff(rc *core.RunContext, to *agent.Agent, msg string) {
	args := []any{"to_agent", to.Name(), "message", msg}
	if rc != nil {
		args = append(args, "from_agent", rc.GetAgentName(), "run_id", rc.RunID)
	}
	a.logger.Info("mentor.handoff", args...)
}

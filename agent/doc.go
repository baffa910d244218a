// Package agent contains the agent descriptor used by the runner: a named
// bundle of instructions, an optional model, function tools and handoff
// edges to other agents.
//
// Agents are immutable after construction and safe to share between
// sessions. Handoffs are surfaced to the model as zero-argument tools; when
// one is called the runner switches the active agent to the handoff's target
// (or whatever its OnHandoff callback returns).
package agent

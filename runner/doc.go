// Package runner drives an agent run to completion.
//
// A run starts at the given agent with the full conversation transcript and
// repeats model turns (via the flow package) until the active agent produces
// an answer without requesting tools. When a tool call asks for a handoff the
// runner resolves the matching edge, invokes its OnHandoff callback and
// continues with the returned agent. Only the first handoff of a turn is
// honoured. The number of model turns is bounded by MaxTurns.
//
// Run is synchronous and safe for concurrent use; all per-run state lives on
// the stack of the call.
package runner

// Package core provides the foundational domain types and execution contexts
// shared by the career mentor runtime. It defines:
//
//   - Content & Parts (role-based model input/output, including tool calls)
//   - Messages & Transcripts (the user-visible conversation history)
//   - Events (immutable records of what happened during a run)
//   - RunContext / ToolContext (scoped execution state handed to
//     instructions, tools and handoff callbacks)
//
// Implementation concerns (model providers, agent descriptors, the run loop)
// live in sibling packages and depend on core, never the other way round.
package core

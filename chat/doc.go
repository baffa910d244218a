// Package chat binds the career-mentor agents to a chat UI's two lifecycle
// hooks: Start (conversation opened) and HandleMessage (user message
// received). It owns the per-session state (active agent, run config and
// transcript) and renders placeholders, handoff notices and errors through
// the UI abstraction, so web and terminal front-ends share one code path.
package chat

// Package model defines the provider‑agnostic abstractions for talking to
// chat-completion style language models.
//
// Core goals:
//   - A single synchronous Generate call per model turn
//   - Normalized tool / function call representation (ToolDefinition)
//   - Request/response shapes that stay transport independent
//   - Lightweight scripted mocking for tests (MockModel)
//
// Providers (the OpenAI-compatible endpoint, Anthropic) implement Model so the
// runner and agents remain decoupled from vendor SDKs.
package model

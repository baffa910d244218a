// Package session houses conversation-scoped storage. Store is the narrow
// contract consumed by the chat layer; InMemoryStore is the volatile
// implementation used by the web and terminal front-ends.
//
// Stores are generic over the value type so callers keep typed per-session
// data without casting from an untyped key/value bag.
package session

// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing run contexts, tool contexts and events.
// Not intended for production usage.
package testutil

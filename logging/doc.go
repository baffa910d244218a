// Package logging provides a minimal logging interface and adapters for the
// career mentor service.
//
// The Logger interface defines the standard leveled methods (Debug, Info,
// Warn, Error) taking a message plus alternating key/value pairs. This
// package includes:
//
//   - SlogAdapter wrapping Go's structured logging (json or text output)
//   - ZerologAdapter for human friendly console output
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.New(&logging.Config{Level: logging.LogLevelInfo, Format: "console"})
//	run := runner.New(func(o *runner.Options) { o.Logger = logger })
package logging

// Package runtime provides the execution context for gissy commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the repository gateway, the message synthesizer, the logger and
// the repository root path.
package runtime

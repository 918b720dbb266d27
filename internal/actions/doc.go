// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a gissy command (commit, push, watch, etc.)
// and orchestrates operations across the git gateway, the message
// synthesizer and the checks runner.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the Gateway, Synthesizer, Config and Splog
//   - Actions are stateless; every call re-queries git
//   - Actions handle user interaction through the tui package
package actions

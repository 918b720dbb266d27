// Package git provides the process-execution layer and the typed repository
// gateway used by gissy.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Repository state queries (status, diffs, branches, repository metadata)
//   - Staging and committing, with "nothing to commit" reported as an outcome
//   - Pushing to origin
//   - Diff statistics
//
// Every external program is started with an argument vector; no command line
// is ever assembled as a string and handed to a shell. This package should be
// the only place where git commands are executed.
package git

// Package errors provides sentinel errors and custom error types for gissy.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates the working directory is not inside a git work tree
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoUpstream indicates the current branch has no upstream configured
	ErrNoUpstream = errors.New("no upstream configured")

	// ErrNothingToCommit indicates there were no changes to commit
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrInvalidBranch indicates a branch name that cannot be passed to git
	ErrInvalidBranch = errors.New("invalid branch name")

	// ErrMissingCredential indicates the AI credential is not configured
	ErrMissingCredential = errors.New("AI credential not configured")

	// ErrEmptyAIResponse indicates the AI service returned no usable text
	ErrEmptyAIResponse = errors.New("empty AI response")

	// ErrCommandTimeout indicates a subprocess was stopped by its deadline
	ErrCommandTimeout = errors.New("command timed out")

	// ErrChecksFailed indicates a pre-commit check (tests or lint) failed
	ErrChecksFailed = errors.New("pre-commit checks failed")

	// ErrAborted indicates the user cancelled an interactive operation
	ErrAborted = errors.New("aborted by user")

	// ErrInvalidMessage indicates a blank or overlong commit message
	ErrInvalidMessage = errors.New("invalid commit message")
)

// GitCommandError represents an error from an external command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(": %s %s", e.Command, strings.Join(e.Args, " "))
	}
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Reason returns the most useful captured output for display: stderr when
// present, otherwise stdout, otherwise the underlying error.
func (e *GitCommandError) Reason() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		return s
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.ExitCode)
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

// CheckFailedError reports a failed pre-commit check
type CheckFailedError struct {
	Name     string
	ExitCode int
	Err      error
}

func (e *CheckFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s failed with exit code %d", e.Name, e.ExitCode)
}

// Is returns true if the target error is ErrChecksFailed
func (e *CheckFailedError) Is(target error) bool {
	return target == ErrChecksFailed
}

func (e *CheckFailedError) Unwrap() error {
	return e.Err
}

// WithHint attaches a user-facing hint to err. Hints survive wrapping with %w.
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return crdb.WithHint(err, hint)
}

// WithHintf is WithHint with formatting.
func WithHintf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return crdb.WithHintf(err, format, args...)
}

// Hints returns every hint attached anywhere in err's chain.
func Hints(err error) []string {
	if err == nil {
		return nil
	}
	return crdb.GetAllHints(err)
}

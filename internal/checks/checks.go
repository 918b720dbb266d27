// Package checks runs the pre-commit test and lint commands.
//
// Command strings come from configuration and are split into argument
// vectors with shell quoting rules; they are never handed to a shell.
package checks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kballard/go-shellquote"

	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/git"
)

// DefaultTimeout bounds a single check
const DefaultTimeout = 10 * time.Minute

// Check is a named command to run before committing
type Check struct {
	Name    string
	Command string
}

// Result is the outcome of one check
type Result struct {
	Name     string
	Command  string
	ExitCode int
	Passed   bool
	Duration time.Duration
	// Err is set when the command could not be started or parsed
	Err error
}

// Logger is the subset of tui.Splog checks report through
type Logger interface {
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

// Runner executes checks through a git.Runner
type Runner struct {
	runner  git.Runner
	dir     string
	timeout time.Duration
	stdout  io.Writer
	stderr  io.Writer
	logger  Logger
	now     func() time.Time
}

// Option configures a Runner
type Option func(*Runner)

// WithOutput sends check output to stdout and stderr instead of the terminal
func WithOutput(stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithTimeout bounds each check
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger for progress lines
func WithLogger(l Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner executing commands in dir
func NewRunner(runner git.Runner, dir string, opts ...Option) *Runner {
	if runner == nil {
		runner = git.NewCommandRunner(nil)
	}
	r := &Runner{
		runner:  runner,
		dir:     dir,
		timeout: DefaultTimeout,
		logger:  nopLogger{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Parse splits a command string into an argument vector
func Parse(command string) ([]string, error) {
	argv, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("invalid command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	return argv, nil
}

// Run executes one check. A command that cannot be parsed or started, or
// that exits non-zero, is a failed check.
func (r *Runner) Run(ctx context.Context, check Check) Result {
	result := Result{Name: check.Name, Command: check.Command, ExitCode: -1}

	argv, err := Parse(check.Command)
	if err != nil {
		result.Err = err
		return result
	}

	r.logger.Info("Running %s: %s", check.Name, git.DisplayCommand(argv[0], argv[1:]))
	start := r.now()
	code, err := r.runner.RunInteractive(ctx, argv[0], argv[1:], git.RunOptions{
		Dir:     r.dir,
		Timeout: r.timeout,
		Stdout:  r.stdout,
		Stderr:  r.stderr,
	})
	result.Duration = r.now().Sub(start)
	result.ExitCode = code
	result.Err = err
	result.Passed = err == nil && code == 0
	r.logger.Debug("%s finished in %s (exit %d)", check.Name, result.Duration.Round(time.Millisecond), code)
	return result
}

// RunAll runs checks in order and stops at the first failure, which is
// returned as a *errors.CheckFailedError.
func (r *Runner) RunAll(ctx context.Context, checks []Check) ([]Result, error) {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		res := r.Run(ctx, check)
		results = append(results, res)
		if !res.Passed {
			return results, &gissyerrors.CheckFailedError{Name: res.Name, ExitCode: res.ExitCode, Err: res.Err}
		}
	}
	return results, nil
}

// IsCheckFailure reports whether err came from a failed check
func IsCheckFailure(err error) bool {
	return errors.Is(err, gissyerrors.ErrChecksFailed)
}

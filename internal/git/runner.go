package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

// DefaultCommandTimeout is the default timeout for external commands
const DefaultCommandTimeout = 5 * time.Minute

// Logger is the subset of tui.Splog the git layer writes to.
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// CommandResult is the outcome of one external process invocation.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Output returns stdout with surrounding whitespace removed.
func (r CommandResult) Output() string {
	return strings.TrimSpace(r.Stdout)
}

// Combined returns stdout followed by stderr.
func (r CommandResult) Combined() string {
	return r.Stdout + r.Stderr
}

// RunOptions configures a single invocation.
type RunOptions struct {
	Dir     string
	Env     []string
	Stdin   io.Reader
	Timeout time.Duration

	// Stdout and Stderr are only used by RunInteractive. They default to the
	// process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes external programs. Implementations must pass args as a
// discrete vector and report non-zero exits through the result rather than
// the error; the error is reserved for processes that could not be run or
// were stopped by their context.
type Runner interface {
	Run(ctx context.Context, program string, args []string, opts RunOptions) (CommandResult, error)
	RunInteractive(ctx context.Context, program string, args []string, opts RunOptions) (int, error)
}

// CommandRunner is the os/exec backed Runner.
type CommandRunner struct {
	logger Logger
}

var _ Runner = (*CommandRunner)(nil)

// NewCommandRunner creates a new CommandRunner. A nil logger discards debug output.
func NewCommandRunner(logger Logger) *CommandRunner {
	if logger == nil {
		logger = nopLogger{}
	}
	return &CommandRunner{logger: logger}
}

// Run executes program with args and captures stdout and stderr.
func (r *CommandRunner) Run(ctx context.Context, program string, args []string, opts RunOptions) (CommandResult, error) {
	ctx, cancel := withDefaultTimeout(ctx, opts.Timeout)
	defer cancel()

	cmd := r.command(ctx, program, args, opts)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{
		ExitCode: exitCode(cmd, err),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
	r.logger.Debug("%s exited %d", program, result.ExitCode)
	return result, classifyRunError(ctx, program, args, result, err)
}

// RunInteractive executes program with its output streamed to the caller's
// terminal (or the writers in opts) and returns the exit code.
func (r *CommandRunner) RunInteractive(ctx context.Context, program string, args []string, opts RunOptions) (int, error) {
	ctx, cancel := withDefaultTimeout(ctx, opts.Timeout)
	defer cancel()

	cmd := r.command(ctx, program, args, opts)
	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	err := cmd.Run()
	code := exitCode(cmd, err)
	r.logger.Debug("%s exited %d", program, code)
	return code, classifyRunError(ctx, program, args, CommandResult{ExitCode: code}, err)
}

func (r *CommandRunner) command(ctx context.Context, program string, args []string, opts RunOptions) *exec.Cmd {
	r.logger.Debug("running: %s", DisplayCommand(program, args))

	cmd := exec.CommandContext(ctx, program, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}
	return cmd
}

// DisplayCommand renders an argument vector for logs and error messages.
// The result is for humans only and is never executed.
func DisplayCommand(program string, args []string) string {
	return shellquote.Join(append([]string{program}, args...)...)
}

func withDefaultTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func exitCode(cmd *exec.Cmd, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}

// classifyRunError keeps ordinary non-zero exits out of the error channel.
func classifyRunError(ctx context.Context, program string, args []string, result CommandResult, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return gissyerrors.NewGitCommandError(program, args, result.Stdout, result.Stderr, result.ExitCode, gissyerrors.ErrCommandTimeout)
	case ctx.Err() != nil:
		return gissyerrors.NewGitCommandError(program, args, result.Stdout, result.Stderr, result.ExitCode, ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return gissyerrors.NewGitCommandError(program, args, result.Stdout, result.Stderr, -1, err)
}

package git

import (
	"context"
	"fmt"
	"strings"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

// DefaultRemote is the remote every push targets.
const DefaultRemote = "origin"

// Gateway exposes typed repository operations on top of a Runner. It holds
// no repository state: every call re-queries git.
type Gateway struct {
	runner Runner
	dir    string
	logger Logger
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) GatewayOption {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGateway creates a Gateway running git in dir (the process working
// directory when dir is empty).
func NewGateway(runner Runner, dir string, opts ...GatewayOption) *Gateway {
	if runner == nil {
		runner = NewCommandRunner(nil)
	}
	g := &Gateway{runner: runner, dir: dir, logger: nopLogger{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dir returns the directory git is run in.
func (g *Gateway) Dir() string {
	return g.dir
}

// Runner returns the underlying Runner.
func (g *Gateway) Runner() Runner {
	return g.runner
}

// run executes git with args in the gateway directory.
func (g *Gateway) run(ctx context.Context, args ...string) (CommandResult, error) {
	return g.runner.Run(ctx, "git", args, RunOptions{Dir: g.dir})
}

// output runs git and returns raw stdout, converting a non-zero exit into a
// classified error.
func (g *Gateway) output(ctx context.Context, args ...string) (string, error) {
	result, err := g.run(ctx, args...)
	if err != nil {
		return "", err
	}
	if !result.Success() {
		return "", classifyFailure(args, result)
	}
	return result.Stdout, nil
}

// probe runs git and reports trimmed stdout and whether the command succeeded.
// Used by queries that degrade to "unknown" instead of failing.
func (g *Gateway) probe(ctx context.Context, args ...string) (string, bool) {
	result, err := g.run(ctx, args...)
	if err != nil {
		g.logger.Debug("git %s: %v", strings.Join(args, " "), err)
		return "", false
	}
	if !result.Success() {
		g.logger.Debug("git %s exited %d: %s", strings.Join(args, " "), result.ExitCode, strings.TrimSpace(result.Stderr))
		return "", false
	}
	return result.Output(), true
}

func classifyFailure(args []string, result CommandResult) error {
	gitErr := gissyerrors.NewGitCommandError("git", args, result.Stdout, result.Stderr, result.ExitCode, nil)
	if isNotRepository(result) {
		return gissyerrors.WithHint(
			fmt.Errorf("%w: %w", gissyerrors.ErrNotARepository, gitErr),
			"run gissy inside a git work tree, or pass --cwd",
		)
	}
	return gitErr
}

func isNotRepository(result CommandResult) bool {
	return strings.Contains(strings.ToLower(result.Stderr), "not a git repository")
}

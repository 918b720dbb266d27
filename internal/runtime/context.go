package runtime

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"gissy.dev/gissy/internal/ai"
	"gissy.dev/gissy/internal/config"
	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/github"
	"gissy.dev/gissy/internal/message"
	"gissy.dev/gissy/internal/tui"
)

// GitHubClientFactory builds a metadata client for a remote host
type GitHubClientFactory func(ctx context.Context, hostname string) (github.Client, error)

// Context provides access to the gateway, synthesizer and output for commands
type Context struct {
	Gateway     *git.Gateway
	Runner      git.Runner
	Synthesizer *message.Synthesizer

	// Credential is the AI key source the synthesizer reads
	Credential ai.CredentialSource
	Config     *config.Config
	Splog      *tui.Splog
	// WorkDir is the directory gissy was started in (or --cwd)
	WorkDir string
	// RepoRoot is the work tree root, empty outside a repository
	RepoRoot string
	// GitHub builds the client used by `info --remote`
	GitHub GitHubClientFactory
}

// Options controls New. Zero values select the production implementations.
type Options struct {
	WorkDir      string
	ConfigFile   string
	Flags        *pflag.FlagSet
	FlagBindings map[string]string

	Splog *tui.Splog
	// NewSplog builds the logger once the configuration is known; Splog wins
	NewSplog func(cfg *config.Config) (*tui.Splog, error)

	Runner     git.Runner
	AIFactory  ai.Factory
	Credential ai.CredentialSource
	GitHub     GitHubClientFactory
}

// New resolves the repository, loads .env and configuration, builds the
// logger and wires the gateway and synthesizer. Being outside a repository is not an error here;
// commands that need one check Gateway.IsRepository themselves.
func New(opts Options) (*Context, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	repoRoot, repoErr := git.FindRepoRoot(workDir)
	if repoErr != nil {
		repoRoot = ""
	}

	envDir := repoRoot
	if envDir == "" {
		envDir = workDir
	}
	envErr := config.LoadDotEnv(envDir)

	cfg, err := config.Load(config.LoadOptions{
		Dir:          workDir,
		File:         opts.ConfigFile,
		Flags:        opts.Flags,
		FlagBindings: opts.FlagBindings,
	})
	if err != nil {
		return nil, err
	}

	splog := opts.Splog
	if splog == nil && opts.NewSplog != nil {
		if splog, err = opts.NewSplog(cfg); err != nil {
			return nil, err
		}
	}
	if splog == nil {
		splog = tui.NewSplog()
	}

	if repoErr != nil {
		splog.Debug("no repository found from %s: %v", workDir, repoErr)
	}
	if envErr != nil {
		splog.Warn("%v", envErr)
	}
	if cfg.Source != "" {
		splog.Debug("config loaded from %s", cfg.Source)
	} else {
		splog.Debug("no config file found, using defaults")
	}

	runner := opts.Runner
	if runner == nil {
		runner = git.NewCommandRunner(splog)
	}

	gatewayDir := repoRoot
	if gatewayDir == "" {
		gatewayDir = workDir
	}

	factory := opts.AIFactory
	if factory == nil {
		factory = ai.NewOpenAIFactory(ai.OpenAIConfig{
			Model:   cfg.AI.Model,
			BaseURL: cfg.AI.BaseURL,
			Timeout: cfg.AI.Timeout,
		})
	}
	credential := opts.Credential
	if credential == nil {
		credential = ai.NewEnvCredential(cfg.AI.APIKeyEnv)
	}

	ghFactory := opts.GitHub
	if ghFactory == nil {
		ghFactory = func(ctx context.Context, hostname string) (github.Client, error) {
			return github.NewClientFromEnv(ctx, hostname)
		}
	}

	return &Context{
		Gateway: git.NewGateway(runner, gatewayDir, git.WithLogger(splog)),
		Runner:  runner,
		Synthesizer: message.New(
			message.WithClientFactory(factory),
			message.WithCredentialSource(credential),
			message.WithTimeout(cfg.AI.Timeout),
			message.WithLogger(splog),
		),
		Credential: credential,
		Config:     cfg,
		Splog:      splog,
		WorkDir:    workDir,
		RepoRoot:   repoRoot,
		GitHub:     ghFactory,
	}, nil
}

// Dir is where repository commands run: the repository root when known,
// otherwise the working directory.
func (c *Context) Dir() string {
	if c.RepoRoot != "" {
		return c.RepoRoot
	}
	return c.WorkDir
}

type contextKey struct{}

// ErrNoContext is returned when a command runs without a runtime context
var ErrNoContext = errors.New("runtime context not initialized")

// WithContext stores rt in ctx for cobra commands to retrieve
func WithContext(ctx context.Context, rt *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, rt)
}

// GetContext returns the runtime context stored by WithContext
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, ErrNoContext
	}
	rt, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || rt == nil {
		return nil, ErrNoContext
	}
	return rt, nil
}

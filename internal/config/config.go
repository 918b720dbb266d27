package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for the recognized options
const (
	DefaultBranch        = "main"
	DefaultTestCommand   = "npm run test"
	DefaultLintCommand   = "npm run lint"
	DefaultWatchDebounce = 2 * time.Second

	DefaultAIModel     = "gpt-3.5-turbo"
	DefaultAITimeout   = 20 * time.Second
	DefaultAIAPIKeyEnv = "OPENAI_API_KEY"
)

// AIConfig configures commit message generation
type AIConfig struct {
	Model     string        `mapstructure:"model" yaml:"model"`
	BaseURL   string        `mapstructure:"baseURL" yaml:"baseURL,omitempty"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	APIKeyEnv string        `mapstructure:"apiKeyEnv" yaml:"apiKeyEnv"`
}

// Config is the effective gissy configuration
type Config struct {
	Branch        string        `mapstructure:"branch" yaml:"branch"`
	RunTests      bool          `mapstructure:"runTests" yaml:"runTests"`
	RunLint       bool          `mapstructure:"runLint" yaml:"runLint"`
	UseAI         bool          `mapstructure:"useAI" yaml:"useAI"`
	AutoCommit    bool          `mapstructure:"autoCommit" yaml:"autoCommit"`
	AutoPush      bool          `mapstructure:"autoPush" yaml:"autoPush"`
	WatchIgnore   []string      `mapstructure:"watchIgnore" yaml:"watchIgnore"`
	WatchDebounce time.Duration `mapstructure:"watchDebounce" yaml:"watchDebounce"`
	TestCommand   string        `mapstructure:"testCommand" yaml:"testCommand"`
	LintCommand   string        `mapstructure:"lintCommand" yaml:"lintCommand"`
	LogFile       string        `mapstructure:"logFile" yaml:"logFile,omitempty"`
	AI            AIConfig      `mapstructure:"ai" yaml:"ai"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `mapstructure:"-" yaml:"-"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		Branch:        DefaultBranch,
		RunTests:      true,
		RunLint:       true,
		WatchIgnore:   []string{},
		WatchDebounce: DefaultWatchDebounce,
		TestCommand:   DefaultTestCommand,
		LintCommand:   DefaultLintCommand,
		AI: AIConfig{
			Model:     DefaultAIModel,
			Timeout:   DefaultAITimeout,
			APIKeyEnv: DefaultAIAPIKeyEnv,
		},
	}
}

// Validate normalizes c in place: blank strings and non-positive durations
// fall back to their defaults and watchIgnore loses blank entries.
func (c *Config) Validate() *Config {
	c.Branch = strings.TrimSpace(c.Branch)
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if strings.TrimSpace(c.TestCommand) == "" {
		c.TestCommand = DefaultTestCommand
	}
	if strings.TrimSpace(c.LintCommand) == "" {
		c.LintCommand = DefaultLintCommand
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = DefaultWatchDebounce
	}

	ignore := make([]string, 0, len(c.WatchIgnore))
	for _, pattern := range c.WatchIgnore {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			ignore = append(ignore, pattern)
		}
	}
	c.WatchIgnore = ignore

	if strings.TrimSpace(c.AI.Model) == "" {
		c.AI.Model = DefaultAIModel
	}
	if c.AI.Timeout <= 0 {
		c.AI.Timeout = DefaultAITimeout
	}
	if strings.TrimSpace(c.AI.APIKeyEnv) == "" {
		c.AI.APIKeyEnv = DefaultAIAPIKeyEnv
	}
	return c
}

// YAML renders c as a YAML document
func (c *Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return string(out), nil
}

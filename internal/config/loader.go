package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. GISSY_USEAI=true
const EnvPrefix = "GISSY"

// FileNames are the configuration files searched for, in priority order
var FileNames = []string{
	".gissyrc",
	".gissyrc.json",
	".gissyrc.yaml",
	".gissyrc.yml",
	"gissy.config.json",
	"gissy.config.yaml",
}

// LoadOptions controls Load
type LoadOptions struct {
	// Dir is where discovery starts
	Dir string
	// File skips discovery when set
	File string
	// Flags holds command flags that override file and environment values
	Flags *pflag.FlagSet
	// FlagBindings maps config keys to flag names in Flags
	FlagBindings map[string]string
}

// FindConfigFile walks up from dir and returns the first configuration file
// found. In each directory FileNames are tried in order.
func FindConfigFile(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load builds the effective configuration: defaults, then the discovered
// file, then GISSY_* environment variables, then bound flags.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path := opts.File
	if path == "" {
		if found, ok := FindConfigFile(opts.Dir); ok {
			path = found
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if opts.Flags != nil {
		for key, name := range opts.FlagBindings {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Source = path
	return cfg.Validate(), nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("branch", d.Branch)
	v.SetDefault("runTests", d.RunTests)
	v.SetDefault("runLint", d.RunLint)
	v.SetDefault("useAI", d.UseAI)
	v.SetDefault("autoCommit", d.AutoCommit)
	v.SetDefault("autoPush", d.AutoPush)
	v.SetDefault("watchIgnore", d.WatchIgnore)
	v.SetDefault("watchDebounce", d.WatchDebounce)
	v.SetDefault("testCommand", d.TestCommand)
	v.SetDefault("lintCommand", d.LintCommand)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("ai.model", d.AI.Model)
	v.SetDefault("ai.baseURL", d.AI.BaseURL)
	v.SetDefault("ai.timeout", d.AI.Timeout)
	v.SetDefault("ai.apiKeyEnv", d.AI.APIKeyEnv)
}

// configType maps a file name to a viper format. Extension-less rc files
// are read as YAML, which also accepts JSON.
func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yml", ".yaml":
		return "yaml"
	default:
		return "yaml"
	}
}

// LoadDotEnv loads dir/.env into the process environment. Variables that are
// already set keep their values. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// WriteFile writes cfg as YAML to path. Existing files are only replaced
// when overwrite is true.
func WriteFile(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	header := []byte("# gissy configuration\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

package checks

import "gissy.dev/gissy/internal/config"

// Check names
const (
	NameTests = "tests"
	NameLint  = "lint"
)

// FromConfig returns the enabled checks, tests before lint.
func FromConfig(cfg *config.Config) []Check {
	if cfg == nil {
		return nil
	}
	var out []Check
	if cfg.RunTests {
		out = append(out, Check{Name: NameTests, Command: cfg.TestCommand})
	}
	if cfg.RunLint {
		out = append(out, Check{Name: NameLint, Command: cfg.LintCommand})
	}
	return out
}

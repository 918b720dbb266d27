package watch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher decides which repository-relative paths are ignored. Patterns use
// glob syntax with "/" as separator ("*" stays within one segment, "**"
// crosses segments). A pattern without "/" is matched against every path
// segment, so "*.log" ignores log files at any depth. A pattern that matches
// a directory also ignores everything below it.
type Matcher struct {
	patterns []string
	globs    []glob.Glob
	anyDepth []bool
}

// NewMatcher compiles patterns. Blank patterns are skipped.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		p = strings.Trim(strings.TrimSpace(filepath.ToSlash(p)), "/")
		if p == "" {
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid watch ignore pattern %q: %w", p, err)
		}
		m.patterns = append(m.patterns, p)
		m.globs = append(m.globs, g)
		m.anyDepth = append(m.anyDepth, !strings.Contains(p, "/"))
	}
	return m, nil
}

// Patterns returns the compiled patterns
func (m *Matcher) Patterns() []string {
	return append([]string(nil), m.patterns...)
}

// Match reports whether rel, or one of its parent directories, is ignored.
// The .git directory is always ignored.
func (m *Matcher) Match(rel string) bool {
	rel = strings.Trim(filepath.ToSlash(rel), "/")
	if rel == "" || rel == "." {
		return false
	}

	segments := strings.Split(rel, "/")
	for i := range segments {
		if segments[i] == ".git" {
			return true
		}
		prefix := strings.Join(segments[:i+1], "/")
		for j, g := range m.globs {
			if g.Match(prefix) || (m.anyDepth[j] && g.Match(segments[i])) {
				return true
			}
		}
	}
	return false
}

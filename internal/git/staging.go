package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// StatusEntry is one line of `git status --porcelain`.
type StatusEntry struct {
	// Index and Worktree are the X and Y status letters
	Index    byte
	Worktree byte
	Path     string
	// OrigPath is set for renames and copies
	OrigPath string
}

// IsUntracked reports whether the path is not yet tracked by git.
func (e StatusEntry) IsUntracked() bool {
	return e.Index == '?' && e.Worktree == '?'
}

// IsStaged reports whether the entry has changes in the index.
func (e StatusEntry) IsStaged() bool {
	return e.Index != ' ' && e.Index != '?' && e.Index != '!'
}

// Code returns the two-letter porcelain status code.
func (e StatusEntry) Code() string {
	return string([]byte{e.Index, e.Worktree})
}

// StageAll stages every change under the gateway directory, including
// untracked files.
func (g *Gateway) StageAll(ctx context.Context) error {
	if _, err := g.output(ctx, "add", "."); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// Status returns the parsed porcelain status of the work tree.
func (g *Gateway) Status(ctx context.Context) ([]StatusEntry, error) {
	out, err := g.output(ctx, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return ParseStatus(out), nil
}

// HasPendingChanges reports whether the work tree or index differs from
// HEAD. It is false outside a repository.
func (g *Gateway) HasPendingChanges(ctx context.Context) bool {
	result, err := g.run(ctx, "status", "--porcelain")
	if err != nil || !result.Success() {
		return false
	}
	return strings.TrimSpace(result.Stdout) != ""
}

// ParseStatus parses porcelain v1 output. Leading spaces are significant
// so the output must not be trimmed before parsing.
func ParseStatus(out string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) < 4 {
			continue
		}

		entry := StatusEntry{Index: line[0], Worktree: line[1]}
		path := line[3:]
		if from, to, ok := strings.Cut(path, " -> "); ok {
			entry.OrigPath = unquotePath(from)
			path = to
		}
		entry.Path = unquotePath(path)
		entries = append(entries, entry)
	}
	return entries
}

// git quotes paths containing special characters
func unquotePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		if s, err := strconv.Unquote(p); err == nil {
			return s
		}
	}
	return p
}

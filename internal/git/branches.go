package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// BranchScope selects which refs ListBranches returns.
type BranchScope int

const (
	// BranchScopeLocal lists refs/heads only
	BranchScopeLocal BranchScope = iota
	// BranchScopeRemote lists remote-tracking refs only
	BranchScopeRemote
	// BranchScopeAll lists local and remote-tracking refs
	BranchScopeAll
)

func (s BranchScope) String() string {
	switch s {
	case BranchScopeRemote:
		return "remote"
	case BranchScopeAll:
		return "all"
	default:
		return "local"
	}
}

// CurrentBranch returns the checked-out branch. ok is false outside a
// repository, before the first commit, and on a detached HEAD.
func (g *Gateway) CurrentBranch(ctx context.Context) (branch string, ok bool) {
	out, ok := g.probe(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if !ok || out == "" || out == "HEAD" {
		return "", false
	}
	return out, true
}

// UnpushedCommitCount returns how many commits HEAD is ahead of its
// upstream. A branch without upstream yields HasUpstream == false.
func (g *Gateway) UnpushedCommitCount(ctx context.Context) UpstreamStatus {
	out, ok := g.probe(ctx, "rev-list", "--count", "@{u}..HEAD")
	if !ok {
		return UpstreamStatus{}
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		g.logger.Debug("unexpected rev-list output %q", out)
		return UpstreamStatus{}
	}
	return UpstreamStatus{Ahead: n, HasUpstream: true}
}

// ListBranches returns branch names sorted by most recent commit first.
// Remote-tracking names keep their remote prefix (origin/main); symbolic
// remote HEAD refs are omitted.
func (g *Gateway) ListBranches(ctx context.Context, scope BranchScope) ([]string, error) {
	args := []string{"branch", "--sort=-committerdate", "--format=%(refname)"}
	switch scope {
	case BranchScopeRemote:
		args = append(args, "-r")
	case BranchScopeAll:
		args = append(args, "-a")
	}

	out, err := g.output(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s branches: %w", scope, err)
	}

	branches := []string{}
	for _, line := range strings.Split(out, "\n") {
		if name, ok := shortBranchName(strings.TrimSpace(line)); ok {
			branches = append(branches, name)
		}
	}
	return branches, nil
}

func shortBranchName(ref string) (string, bool) {
	switch {
	case strings.HasPrefix(ref, "refs/heads/"):
		return strings.TrimPrefix(ref, "refs/heads/"), true
	case strings.HasPrefix(ref, "refs/remotes/"):
		name := strings.TrimPrefix(ref, "refs/remotes/")
		if strings.HasSuffix(name, "/HEAD") {
			return "", false
		}
		return name, true
	default:
		// detached HEAD entries and blank lines
		return "", false
	}
}

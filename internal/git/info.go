package git

import (
	"context"
	"strconv"
	"strings"
)

// RepoInfo is a read-only snapshot of repository metadata.
type RepoInfo struct {
	Name              string
	OriginURL         string
	Branch            string
	LastCommitSummary string
	TotalCommitCount  int
}

// RepoInfo collects repository metadata. It returns nil outside a
// repository, when origin is not configured, or when any query fails; a
// partially populated snapshot is never returned.
func (g *Gateway) RepoInfo(ctx context.Context) *RepoInfo {
	if !g.IsRepository(ctx) {
		return nil
	}

	origin, ok := g.probe(ctx, "remote", "get-url", DefaultRemote)
	if !ok || origin == "" {
		return nil
	}

	branch, ok := g.probe(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if !ok {
		return nil
	}

	summary, ok := g.probe(ctx, "log", "-1", "--pretty=format:%h %s (%cr)")
	if !ok {
		return nil
	}

	countOut, ok := g.probe(ctx, "rev-list", "--all", "--count")
	if !ok {
		return nil
	}
	count, err := strconv.Atoi(countOut)
	if err != nil {
		return nil
	}

	return &RepoInfo{
		Name:              RepoNameFromURL(origin),
		OriginURL:         origin,
		Branch:            branch,
		LastCommitSummary: summary,
		TotalCommitCount:  count,
	}
}

// LastCommitSubject returns the subject line of HEAD.
func (g *Gateway) LastCommitSubject(ctx context.Context) (string, bool) {
	result, err := g.run(ctx, "log", "-1", "--pretty=format:%s")
	if err != nil || !result.Success() {
		return "", false
	}
	// subject is returned verbatim; only the trailing newline is dropped
	return strings.TrimRight(result.Stdout, "\r\n"), true
}

// ConfigValue reads a git config key as seen from the repository, so local
// settings override global ones.
func (g *Gateway) ConfigValue(ctx context.Context, key string) (string, bool) {
	value, ok := g.probe(ctx, "config", "--get", key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// RepoNameFromURL returns the final path segment of a remote URL with a
// trailing ".git" removed. It handles https, ssh, scp-like and local paths.
func RepoNameFromURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimRight(url, "/\\")
	url = strings.TrimSuffix(url, ".git")

	if i := strings.LastIndexAny(url, "/\\:"); i >= 0 {
		url = url[i+1:]
	}
	return url
}

// Package github fetches repository metadata from the GitHub API for
// `gissy info --remote`.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// TokenEnv is the environment variable holding the API token.
const TokenEnv = "GITHUB_TOKEN"

// ErrNoToken indicates TokenEnv is unset.
var ErrNoToken = errors.New("GITHUB_TOKEN is not set")

// RepositoryMetadata contains the remote facts shown by `info --remote`.
// This is a simplified struct to avoid coupling callers to go-github.
type RepositoryMetadata struct {
	FullName      string
	Description   string
	DefaultBranch string
	Private       bool
	Stars         int
	OpenIssues    int
	HTMLURL       string
}

// Client is an interface for GitHub API interactions
type Client interface {
	// Repository returns metadata for owner/repo
	Repository(ctx context.Context, owner, repo string) (*RepositoryMetadata, error)
}

// RESTClient implements Client with go-github.
type RESTClient struct {
	client *github.Client
}

var _ Client = (*RESTClient)(nil)

// NewClient creates a client for hostname authenticated with token. An empty
// token yields an unauthenticated client.
func NewClient(ctx context.Context, hostname, token string) (*RESTClient, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	client := github.NewClient(httpClient)

	// GitHub Enterprise serves the REST API under /api/v3/
	if hostname != "" && hostname != "github.com" {
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}
		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return &RESTClient{client: client}, nil
}

// NewClientFromEnv creates a client using TokenEnv.
func NewClientFromEnv(ctx context.Context, hostname string) (*RESTClient, error) {
	token := strings.TrimSpace(os.Getenv(TokenEnv))
	if token == "" {
		return nil, ErrNoToken
	}
	return NewClient(ctx, hostname, token)
}

// WithBaseURL points the client at a different API root. Used by tests.
func (c *RESTClient) WithBaseURL(u *url.URL) *RESTClient {
	c.client.BaseURL = u
	return c
}

// Repository implements Client.
func (c *RESTClient) Repository(ctx context.Context, owner, repo string) (*RepositoryMetadata, error) {
	r, _, err := c.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}

	return &RepositoryMetadata{
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		DefaultBranch: r.GetDefaultBranch(),
		Private:       r.GetPrivate(),
		Stars:         r.GetStargazersCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		HTMLURL:       r.GetHTMLURL(),
	}, nil
}

// RemoteInfo contains parsed information from a git remote URL
type RemoteInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// IsGitHub reports whether the remote looks like github.com or a GitHub
// Enterprise host.
func (r RemoteInfo) IsGitHub() bool {
	return strings.Contains(strings.ToLower(r.Hostname), "github")
}

// WebURL returns the browser URL of the repository
func (r RemoteInfo) WebURL() string {
	return fmt.Sprintf("https://%s/%s/%s", r.Hostname, r.Owner, r.Repo)
}

// ParseRemoteURL parses a git remote URL and extracts hostname, owner, and repo.
// Examples:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.company.com/owner/repo.git
func ParseRemoteURL(remoteURL string) (*RemoteInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(strings.TrimRight(remoteURL, "/"), ".git")

	var hostname, path string
	switch {
	case strings.Contains(remoteURL, "://"):
		u, err := url.Parse(remoteURL)
		if err != nil {
			return nil, fmt.Errorf("invalid remote URL: %w", err)
		}
		hostname = u.Hostname()
		path = strings.TrimPrefix(u.Path, "/")
	case strings.Contains(remoteURL, "@"):
		// scp-like: git@hostname:owner/repo
		_, hostAndPath, _ := strings.Cut(remoteURL, "@")
		var ok bool
		hostname, path, ok = strings.Cut(hostAndPath, ":")
		if !ok {
			return nil, fmt.Errorf("invalid SSH remote URL: missing path")
		}
	default:
		return nil, fmt.Errorf("remote URL %q is not a hosted repository", remoteURL)
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid remote URL: path must be owner/repo")
	}
	info := &RemoteInfo{
		Hostname: hostname,
		Owner:    parts[len(parts)-2],
		Repo:     parts[len(parts)-1],
	}
	if info.Hostname == "" || info.Owner == "" || info.Repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}
	return info, nil
}

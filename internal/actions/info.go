package actions

import (
	"context"
	"errors"
	"fmt"

	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/github"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
	"gissy.dev/gissy/internal/utils"
)

// ErrNoRepoInfo is returned when repository metadata cannot be collected
var ErrNoRepoInfo = errors.New("repository information unavailable")

// InfoOptions contains options for the info command
type InfoOptions struct {
	// Remote also fetches metadata from the GitHub API
	Remote bool
	// Web opens the repository page in the browser
	Web bool
	// OpenURL replaces the system browser; used by tests
	OpenURL func(url string) error
}

// InfoReport is what the info command displayed
type InfoReport struct {
	Repo   *git.RepoInfo
	Remote *github.RepositoryMetadata
	WebURL string
}

// Info displays the repository snapshot and, on request, GitHub metadata.
// Remote lookups that cannot run (non-GitHub origin, missing token, API
// errors) are skipped with a tip rather than failing the command.
func Info(ctx context.Context, rt *runtime.Context, opts InfoOptions) (*InfoReport, error) {
	splog := rt.Splog
	if err := requireRepository(ctx, rt); err != nil {
		return nil, err
	}

	info := rt.Gateway.RepoInfo(ctx)
	if info == nil {
		return nil, gissyerrors.WithHint(ErrNoRepoInfo,
			"gissy needs an origin remote and at least one commit: git remote add origin <url>")
	}
	report := &InfoReport{Repo: info}

	splog.Info("%s %s", tui.Bold("Repository:"), info.Name)
	splog.Info("%s %s", tui.Bold("Origin:"), info.OriginURL)
	splog.Info("%s %s", tui.Bold("Branch:"), tui.ColorBranchName(info.Branch, true))
	splog.Info("%s %s", tui.Bold("Last commit:"), info.LastCommitSummary)
	splog.Info("%s %d", tui.Bold("Total commits:"), info.TotalCommitCount)

	remote, err := github.ParseRemoteURL(info.OriginURL)
	if err != nil {
		splog.Debug("origin is not a hosted repository: %v", err)
	} else {
		report.WebURL = remote.WebURL()
	}

	if opts.Remote {
		report.Remote = fetchRemoteMetadata(ctx, rt, remote)
	}

	if opts.Web {
		if report.Remote != nil && report.Remote.HTMLURL != "" {
			report.WebURL = report.Remote.HTMLURL
		}
		if report.WebURL == "" {
			return report, fmt.Errorf("origin %s has no web page", info.OriginURL)
		}
		open := opts.OpenURL
		if open == nil {
			open = utils.OpenBrowser
		}
		splog.Info("Opening %s", report.WebURL)
		if err := open(report.WebURL); err != nil {
			return report, fmt.Errorf("failed to open browser: %w", err)
		}
	}
	return report, nil
}

func fetchRemoteMetadata(ctx context.Context, rt *runtime.Context, remote *github.RemoteInfo) *github.RepositoryMetadata {
	splog := rt.Splog
	if remote == nil || !remote.IsGitHub() {
		splog.Tip("Remote metadata is only available for GitHub origins.")
		return nil
	}

	client, err := rt.GitHub(ctx, remote.Hostname)
	if err != nil {
		if errors.Is(err, github.ErrNoToken) {
			splog.Tip("Set %s to show GitHub metadata.", github.TokenEnv)
		} else {
			splog.Warn("GitHub client unavailable: %v", err)
		}
		return nil
	}

	meta, err := client.Repository(ctx, remote.Owner, remote.Repo)
	if err != nil {
		splog.Warn("%v", err)
		return nil
	}

	visibility := "public"
	if meta.Private {
		visibility = "private"
	}
	splog.Newline()
	splog.Info("%s %s (%s)", tui.Bold("GitHub:"), meta.FullName, visibility)
	if meta.Description != "" {
		splog.Info("  %s", tui.ColorDim(meta.Description))
	}
	splog.Info("  default branch %s, %d stars, %d open issues",
		tui.ColorBranchName(meta.DefaultBranch, false), meta.Stars, meta.OpenIssues)
	return meta
}

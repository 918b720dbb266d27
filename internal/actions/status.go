package actions

import (
	"context"

	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// StatusReport summarizes the work tree
type StatusReport struct {
	// Branch is empty on a detached HEAD or before the first commit
	Branch    string
	Entries   []git.StatusEntry
	Upstream  git.UpstreamStatus
	Staged    int
	Unstaged  int
	Untracked int
}

// Clean reports whether there is nothing to commit
func (r *StatusReport) Clean() bool {
	return len(r.Entries) == 0
}

// Status prints the porcelain status with colored codes, a pending-change
// summary and how far the branch is ahead of its upstream.
func Status(ctx context.Context, rt *runtime.Context) (*StatusReport, error) {
	splog := rt.Splog
	if err := requireRepository(ctx, rt); err != nil {
		return nil, err
	}

	entries, err := rt.Gateway.Status(ctx)
	if err != nil {
		return nil, err
	}
	report := &StatusReport{Entries: entries, Upstream: rt.Gateway.UnpushedCommitCount(ctx)}
	report.Branch, _ = rt.Gateway.CurrentBranch(ctx)

	for _, e := range entries {
		switch {
		case e.IsUntracked():
			report.Untracked++
		default:
			if e.IsStaged() {
				report.Staged++
			}
			if e.Worktree != ' ' {
				report.Unstaged++
			}
		}
	}

	if report.Branch != "" {
		splog.Info("On branch %s", tui.ColorBranchName(report.Branch, false))
	} else {
		splog.Info("Not on a branch")
	}

	if report.Clean() {
		splog.Info("Working tree clean.")
	} else {
		splog.Newline()
		for _, e := range entries {
			path := e.Path
			if e.OrigPath != "" {
				path = e.OrigPath + " -> " + e.Path
			}
			splog.Info("  %s %s", tui.ColorStatusCode(e.Index, e.Worktree), path)
		}
		splog.Newline()
		splog.Info("%d staged, %d unstaged, %d untracked", report.Staged, report.Unstaged, report.Untracked)
	}

	switch {
	case !report.Upstream.HasUpstream:
		splog.Tip("No upstream configured. Run %s to publish the branch.", tui.ColorCyan("gissy push"))
	case report.Upstream.Ahead == 0:
		splog.Info("Up to date with upstream.")
	default:
		splog.Info("Ahead of upstream by %d %s.", report.Upstream.Ahead,
			pluralize(report.Upstream.Ahead, "commit", "commits"))
	}
	return report, nil
}

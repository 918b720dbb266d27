package actions

import (
	"context"

	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/message"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// DiffOptions contains options for the diff command
type DiffOptions struct {
	// Staged inspects the index instead of the work tree
	Staged bool
}

// Diff prints line statistics for pending changes and the fallback message
// they would produce.
func Diff(ctx context.Context, rt *runtime.Context, opts DiffOptions) (git.DiffStats, error) {
	if err := requireRepository(ctx, rt); err != nil {
		return git.DiffStats{}, err
	}

	var (
		diff string
		err  error
		what = "unstaged"
	)
	if opts.Staged {
		what = "staged"
		diff, err = rt.Gateway.StagedDiff(ctx)
	} else {
		diff, err = rt.Gateway.UnstagedDiff(ctx)
	}
	if err != nil {
		return git.DiffStats{}, err
	}

	stats := git.ComputeStats(diff)
	if stats.IsEmpty() {
		rt.Splog.Info("No %s line changes.", what)
		return stats, nil
	}

	rt.Splog.Info("%s changes: %s", what, formatStats(stats))
	rt.Splog.Info("%s %s", tui.ColorDim("fallback message:"), message.Fallback(diff).Subject)
	return stats, nil
}

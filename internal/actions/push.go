package actions

import (
	"context"
	"strings"

	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// PushOptions contains options for the push command
type PushOptions struct {
	// Branch overrides the configured branch
	Branch string
}

// Push pushes the target branch to origin
func Push(ctx context.Context, rt *runtime.Context, opts PushOptions) (git.PushOutcome, error) {
	if err := requireRepository(ctx, rt); err != nil {
		return git.PushOutcome{Kind: git.PushFailed, Branch: opts.Branch, Reason: err.Error()}, err
	}

	branch := pushTarget(ctx, rt, opts.Branch)
	rt.Splog.Info("Pushing %s to %s...", tui.ColorBranchName(branch, false), git.DefaultRemote)

	outcome := rt.Gateway.Push(ctx, branch)
	if outcome.Kind == git.Pushed {
		rt.Splog.Success("Pushed %s.", tui.ColorBranchName(branch, false))
		return outcome, nil
	}

	err := outcome.Err()
	if hint := pushHint(outcome.Reason); hint != "" {
		err = gissyerrors.WithHint(err, hint)
	}
	return outcome, err
}

func pushHint(reason string) string {
	lower := strings.ToLower(reason)
	switch {
	case strings.Contains(lower, gissyerrors.ErrInvalidBranch.Error()):
		return "pass a branch name or set \"branch\" in your gissy config"
	case strings.Contains(lower, "does not appear to be a git repository"),
		strings.Contains(lower, "no such remote"):
		return "add a remote first: git remote add origin <url>"
	case strings.Contains(lower, "src refspec") && strings.Contains(lower, "does not match"):
		return "the branch does not exist locally; check the \"branch\" setting"
	case strings.Contains(lower, "rejected"):
		return "pull the remote changes before pushing again"
	}
	return ""
}

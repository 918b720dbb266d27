package actions

import (
	"context"

	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// Branches lists branches most recently committed first, marking the
// checked-out branch.
func Branches(ctx context.Context, rt *runtime.Context, scope git.BranchScope) ([]string, error) {
	if err := requireRepository(ctx, rt); err != nil {
		return nil, err
	}

	branches, err := rt.Gateway.ListBranches(ctx, scope)
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		rt.Splog.Info("No %s branches.", scope)
		return branches, nil
	}

	current, _ := rt.Gateway.CurrentBranch(ctx)
	for _, b := range branches {
		rt.Splog.Info("%s", tui.ColorBranchName(b, b == current))
	}
	return branches, nil
}

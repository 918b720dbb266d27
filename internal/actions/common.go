package actions

import (
	"context"
	"strings"

	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/runtime"
)

// requireRepository fails with a hinted ErrNotARepository outside a work tree
func requireRepository(ctx context.Context, rt *runtime.Context) error {
	if rt.Gateway.IsRepository(ctx) {
		return nil
	}
	return gissyerrors.WithHintf(gissyerrors.ErrNotARepository,
		"run gissy inside a git work tree or pass --cwd (looked in %s)", rt.WorkDir)
}

// pushTarget picks the branch to push: an explicit branch, then the
// configured branch, then the checked-out branch.
func pushTarget(ctx context.Context, rt *runtime.Context, explicit string) string {
	if b := strings.TrimSpace(explicit); b != "" {
		return b
	}
	if rt.Config != nil && rt.Config.Branch != "" {
		return rt.Config.Branch
	}
	branch, _ := rt.Gateway.CurrentBranch(ctx)
	return branch
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

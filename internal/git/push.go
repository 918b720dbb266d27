package git

import (
	"context"
	"strconv"
	"strings"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

// ValidateBranchName rejects names that cannot safely be handed to git as a
// positional argument.
func ValidateBranchName(branch string) error {
	switch {
	case strings.TrimSpace(branch) == "":
		return gissyerrors.WithHint(
			gissyerrors.ErrInvalidBranch,
			"set \"branch\" in your gissy config or check out a branch",
		)
	case strings.HasPrefix(branch, "-"):
		return gissyerrors.WithHintf(gissyerrors.ErrInvalidBranch, "branch %q starts with '-'", branch)
	}
	return nil
}

// Push pushes branch to origin. Invalid branch names are rejected before git
// is invoked. A missing remote or rejected push yields PushFailed with git's
// output as the reason.
func (g *Gateway) Push(ctx context.Context, branch string) PushOutcome {
	if err := ValidateBranchName(branch); err != nil {
		return PushOutcome{Kind: PushFailed, Branch: branch, Reason: err.Error()}
	}

	result, err := g.run(ctx, "push", DefaultRemote, branch)
	if err != nil {
		return PushOutcome{Kind: PushFailed, Branch: branch, Reason: errorReason(err)}
	}
	if !result.Success() {
		reason := strings.TrimSpace(result.Stderr)
		if reason == "" {
			reason = "git push exited with status " + itoa(result.ExitCode)
		}
		return PushOutcome{Kind: PushFailed, Branch: branch, Reason: reason}
	}
	return PushOutcome{Kind: Pushed, Branch: branch}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

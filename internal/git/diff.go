package git

import (
	"context"
	"fmt"
)

// StagedDiff returns the unified diff of staged changes
func (g *Gateway) StagedDiff(ctx context.Context) (string, error) {
	out, err := g.output(ctx, "diff", "--cached", "--no-color")
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}
	return out, nil
}

// UnstagedDiff returns the unified diff of unstaged changes to tracked files
func (g *Gateway) UnstagedDiff(ctx context.Context) (string, error) {
	out, err := g.output(ctx, "diff", "--no-color")
	if err != nil {
		return "", fmt.Errorf("failed to get unstaged diff: %w", err)
	}
	return out, nil
}

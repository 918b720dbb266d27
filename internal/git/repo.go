package git

import (
	"context"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

// FindRepoRoot returns the root directory of the work tree containing dir.
func FindRepoRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", gissyerrors.ErrNotARepository, abs)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// IsRepository reports whether the gateway directory is inside a work tree.
func (g *Gateway) IsRepository(ctx context.Context) bool {
	out, ok := g.probe(ctx, "rev-parse", "--is-inside-work-tree")
	return ok && out == "true"
}

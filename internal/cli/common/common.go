// Package common provides shared helper functions for CLI commands.
package common

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// Run is a helper that provides the runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx context.Context, rt *runtime.Context) error) error {
	ctx := cmd.Context()
	rt, err := runtime.GetContext(ctx)
	if err != nil {
		return err
	}
	return fn(ctx, rt)
}

// CompleteBranches is a helper for cobra.ValidArgsFunction that returns the
// local branch names of the repository. Completion skips the root
// pre-run hook, so it resolves the repository itself.
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: io.Discard})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	dir, _ := cmd.Flags().GetString("cwd")
	rt, err := runtime.New(runtime.Options{WorkDir: dir, Splog: splog})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	branches, err := rt.Gateway.ListBranches(cmd.Context(), git.BranchScopeLocal)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}

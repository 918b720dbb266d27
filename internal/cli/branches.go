package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/runtime"
)

// newBranchesCmd creates the branches command
func newBranchesCmd() *cobra.Command {
	var remote, all bool

	cmd := &cobra.Command{
		Use:     "branches",
		Aliases: []string{"br"},
		Short:   "List branches, most recently committed first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				scope := git.BranchScopeLocal
				switch {
				case all:
					scope = git.BranchScopeAll
				case remote:
					scope = git.BranchScopeRemote
				}
				_, err := actions.Branches(ctx, rt, scope)
				return err
			})
		},
	}

	cmd.Flags().BoolVarP(&remote, "remote", "r", false, "List remote-tracking branches")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "List local and remote-tracking branches")
	cmd.MarkFlagsMutuallyExclusive("remote", "all")

	return cmd
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/runtime"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push [branch]",
		Short: "Push a branch to origin",
		Long: `Push a branch to origin.

Without an argument the configured branch is pushed, or the current branch
when none is configured.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: common.CompleteBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				opts := actions.PushOptions{}
				if len(args) > 0 {
					opts.Branch = args[0]
				}
				_, err := actions.Push(ctx, rt, opts)
				return err
			})
		},
	}

	return cmd
}

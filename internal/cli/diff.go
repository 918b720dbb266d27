package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/runtime"
)

// newDiffCmd creates the diff command
func newDiffCmd() *cobra.Command {
	var opts actions.DiffOptions

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Count added and removed lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				_, err := actions.Diff(ctx, rt, opts)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Count staged changes instead of unstaged ones")

	return cmd
}

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// newWatchCmd creates the watch command
func newWatchCmd() *cobra.Command {
	var opts actions.WatchOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Commit automatically when files stop changing",
		Long: `Watch the repository and, once changes settle, stage and commit them
with a generated message. Automatic commits need autoCommit enabled in the
configuration; otherwise changes are only reported. Paths matching
watchIgnore patterns are skipped. Press Ctrl+C to stop.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{headerAnnotation: string(tui.HeaderBanner)},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				return actions.Watch(ctx, rt, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Push, "push", false, "Push after each automatic commit")
	cmd.Flags().BoolVar(&opts.SkipChecks, "skip-checks", false, "Do not run the test and lint commands")

	return cmd
}

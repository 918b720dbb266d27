package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues with your gissy setup",
		Long: `Run diagnostic checks on your environment and repository.

The doctor command checks:
  - Environment: git version, configuration, AI credential and check commands
  - Repository: work tree, current branch, origin remote and upstream`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{headerAnnotation: string(tui.HeaderBanner)},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				_, err := actions.Doctor(ctx, rt, actions.DoctorOptions{})
				return err
			})
		},
	}

	return cmd
}

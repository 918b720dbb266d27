package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/runtime"
)

// newMessageCmd creates the message command
func newMessageCmd() *cobra.Command {
	var opts actions.MessageOptions

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Print the commit message gissy would use",
		Long: `Print the commit message generated for the staged changes, or for the
unstaged ones with --unstaged. Nothing is committed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				_, err := actions.GenerateMessage(ctx, rt, opts)
				return err
			})
		},
	}

	cmd.Flags().Bool("ai", false, "Generate the message with AI")
	cmd.Flags().BoolVar(&opts.Unstaged, "unstaged", false, "Describe unstaged changes instead of staged ones")

	return cmd
}

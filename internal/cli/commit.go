package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
	"gissy.dev/gissy/internal/utils"
)

// newCommitCmd creates the commit command
func newCommitCmd() *cobra.Command {
	var opts actions.CommitOptions

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Check and commit staged changes with a generated message",
		Long: `Commit the staged changes.

Unless --skip-checks is given, the configured test and lint commands run
first and any failure stops the commit. The message comes from -m or is
generated from the staged diff, by AI when useAI (or --ai) is set and
otherwise from the diff statistics. On a terminal the message can be
accepted, edited or rejected before committing.

Examples:
  gissy commit
  gissy commit -a --push
  gissy commit -m "fix: handle empty input"
  git log -1 --format=%B | gissy commit -m -`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{headerAnnotation: string(tui.HeaderCompact)},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				if opts.Message == "-" {
					msg, err := utils.ReadFromStdin()
					if err != nil {
						return fmt.Errorf("failed to read message from stdin: %w", err)
					}
					if msg == "" {
						return gissyerrors.WithHint(gissyerrors.ErrInvalidMessage, "pipe a message into gissy commit -m -")
					}
					opts.Message = msg
				}
				_, err := actions.Commit(ctx, rt, opts)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Use this commit message (- reads it from stdin)")
	cmd.Flags().Bool("ai", false, "Generate the message with AI")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Stage all changes before committing")
	cmd.Flags().BoolVar(&opts.Push, "push", false, "Push after committing")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "Branch to push to (defaults to the configured branch)")
	cmd.Flags().BoolVar(&opts.SkipChecks, "skip-checks", false, "Do not run the test and lint commands")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Commit without reviewing the message")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the message without committing")

	_ = cmd.RegisterFlagCompletionFunc("branch", common.CompleteBranches)

	return cmd
}

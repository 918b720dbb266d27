package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/utils"
)

// newInfoCmd creates the info command
func newInfoCmd() *cobra.Command {
	opts := actions.InfoOptions{OpenURL: utils.OpenBrowser}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show repository name, origin, branch and commit totals",
		Long: `Show a snapshot of the repository: its name, origin URL, current branch,
last commit and total commit count.

With --remote and a GitHub origin, the default branch, visibility, stars
and open issues are fetched from the GitHub API (requires GITHUB_TOKEN).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx context.Context, rt *runtime.Context) error {
				_, err := actions.Info(ctx, rt, opts)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Remote, "remote", false, "Fetch repository metadata from GitHub")
	cmd.Flags().BoolVarP(&opts.Web, "web", "w", false, "Open the repository page in a browser")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionLine(version, commit, date string) string {
	return fmt.Sprintf("gissy %s (commit %s, built %s)", version, commit, date)
}

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{standaloneAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), versionLine(version, commit, date))
			return err
		},
	}
}

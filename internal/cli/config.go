package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/cli/common"
	"gissy.dev/gissy/internal/config"
	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the gissy configuration",
		Long: `Show or create the gissy configuration.

Examples:
  gissy config show
  gissy config init
  gissy config init --path gissy.config.yaml --force`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// newConfigShowCmd creates the config show command
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(_ context.Context, rt *runtime.Context) error {
				out, err := rt.Config.YAML()
				if err != nil {
					return err
				}
				if rt.Config.Source != "" {
					rt.Splog.Info("# loaded from %s", rt.Config.Source)
				} else {
					rt.Splog.Info("# no config file found, using defaults")
				}
				rt.Splog.Page(out)
				return nil
			})
		},
	}
}

// newConfigInitCmd creates the config init command
func newConfigInitCmd() *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(_ context.Context, rt *runtime.Context) error {
				target := path
				if target == "" {
					target = ".gissyrc.yaml"
				}
				if !filepath.IsAbs(target) {
					target = filepath.Join(rt.Dir(), target)
				}

				overwrite := force
				if _, err := os.Stat(target); err == nil && !force {
					if !tui.IsInteractive() {
						return gissyerrors.WithHint(fmt.Errorf("%s already exists", target), "rerun with --force to overwrite it")
					}
					ok, err := tui.PromptConfirm(fmt.Sprintf("%s already exists. Overwrite it?", target), false)
					if err != nil {
						return err
					}
					if !ok {
						return gissyerrors.ErrAborted
					}
					overwrite = true
				}

				if err := config.WriteFile(target, config.Default(), overwrite); err != nil {
					return err
				}
				rt.Splog.Success("Wrote %s.", target)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "File to write (defaults to .gissyrc.yaml in the repository root)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

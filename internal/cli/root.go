package cli

import (
	"context"

	"github.com/spf13/cobra"

	"gissy.dev/gissy/internal/config"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

const (
	// headerAnnotation marks commands that print the header on a terminal
	headerAnnotation = "gissy/header"
	// standaloneAnnotation marks commands that run without a runtime context
	standaloneAnnotation = "gissy/standalone"
)

// flagBindings maps config keys to the command flags that override them
var flagBindings = map[string]string{
	"useAI":    "ai",
	"autoPush": "push",
}

type rootFlags struct {
	cwd        string
	debug      bool
	noColor    bool
	logFile    string
	configFile string
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gissy",
		Short: "gissy is your personal git assistant",
		Long: `gissy stages, checks and commits your work with a generated commit
message, pushes it, and keeps an eye on your repository.

Configuration is read from .gissyrc, .gissyrc.json, .gissyrc.yaml,
.gissyrc.yml, gissy.config.json or gissy.config.yaml, searched upwards
from the working directory. GISSY_* environment variables override it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			tui.ConfigureColor(flags.noColor)
			if cmd.Annotations[standaloneAnnotation] != "" {
				return nil
			}

			rt, err := runtime.New(runtime.Options{
				WorkDir:      flags.cwd,
				ConfigFile:   flags.configFile,
				Flags:        cmd.Flags(),
				FlagBindings: flagBindings,
				NewSplog: func(cfg *config.Config) (*tui.Splog, error) {
					return tui.NewSplogWithOptions(tui.SplogOptions{
						Writer:  cmd.OutOrStdout(),
						LogFile: tui.GetLogFilePath(flags.logFile, cfg.LogFile),
						Debug:   flags.debug,
					})
				},
			})
			if err != nil {
				return err
			}
			cmd.SetContext(runtime.WithContext(cmd.Context(), rt))

			if mode := cmd.Annotations[headerAnnotation]; mode != "" && tui.IsStdoutTTY() {
				tui.PrintHeader(cmd.OutOrStdout(), "", tui.HeaderMode(mode))
			}
			return nil
		},
	}
	rootCmd.SetVersionTemplate(versionLine(version, commit, date) + "\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.cwd, "cwd", "", "Run as if gissy was started in this directory")
	pf.BoolVar(&flags.debug, "debug", false, "Print debug output")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&flags.logFile, "log-file", "", `Also write logs to this file ("default" for ~/.gissy/logs/gissy.log)`)
	pf.StringVar(&flags.configFile, "config", "", "Read configuration from this file instead of searching for one")

	rootCmd.AddCommand(
		newCommitCmd(),
		newPushCmd(),
		newMessageCmd(),
		newStatusCmd(),
		newDiffCmd(),
		newInfoCmd(),
		newBranchesCmd(),
		newWatchCmd(),
		newDoctorCmd(),
		newConfigCmd(),
		newVersionCmd(version, commit, date),
	)

	return rootCmd
}

// Execute runs the command tree and then closes the runtime's logger, also
// when the command failed.
func Execute(ctx context.Context, rootCmd *cobra.Command) error {
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if cmd == nil {
		return err
	}
	rt, rtErr := runtime.GetContext(cmd.Context())
	if rtErr != nil || rt.Splog == nil {
		return err
	}
	if closeErr := rt.Splog.Close(); err == nil {
		err = closeErr
	}
	return err
}

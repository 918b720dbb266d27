package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gissy.dev/gissy/internal/checks"
	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/message"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

// ReviewFunc lets the user accept, edit or reject a proposed message. It
// returns the final message or gissyerrors.ErrAborted.
type ReviewFunc func(msg string) (string, error)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	// Message is used verbatim instead of generating one
	Message string
	// All stages every change first; autoCommit in the config does the same
	All bool
	// Push pushes after committing; autoPush in the config does the same
	Push bool
	// Branch overrides the push target
	Branch     string
	SkipChecks bool
	// Yes commits without the review prompt
	Yes    bool
	DryRun bool
	// Review overrides the interactive review prompt
	Review ReviewFunc
}

// CommitReport describes what the commit action did
type CommitReport struct {
	Outcome git.CommitOutcome
	Message message.GeneratedMessage
	Stats   git.DiffStats
	Checks  []checks.Result
	// Push is nil when no push was attempted
	Push   *git.PushOutcome
	DryRun bool
}

// Commit runs the commit workflow: stage, check, derive a message, review,
// commit and optionally push. An empty index is reported as NothingToCommit
// and is not an error.
func Commit(ctx context.Context, rt *runtime.Context, opts CommitOptions) (*CommitReport, error) {
	splog := rt.Splog
	cfg := rt.Config

	if err := requireRepository(ctx, rt); err != nil {
		return nil, err
	}

	report := &CommitReport{DryRun: opts.DryRun}
	stageAll := opts.All || cfg.AutoCommit

	diff, err := commitDiff(ctx, rt, stageAll, opts.DryRun)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(diff) == "" {
		report.Outcome = git.CommitOutcome{Kind: git.NothingToCommit}
		splog.Info("Nothing to commit.")
		if !stageAll && rt.Gateway.HasPendingChanges(ctx) {
			splog.Tip("You have unstaged changes. Run %s to stage everything.", tui.ColorCyan("gissy commit --all"))
		}
		return report, nil
	}
	report.Stats = git.ComputeStats(diff)
	splog.Debug("staged changes: %s", report.Stats)

	if !opts.SkipChecks {
		results, err := runChecks(ctx, rt)
		report.Checks = results
		if err != nil {
			return report, gissyerrors.WithHint(err, "fix the failure or rerun with --skip-checks")
		}
	}

	msg := deriveMessage(ctx, rt, diff, opts.Message)
	if err := validateMessage(msg); err != nil {
		return report, err
	}

	review := opts.Review
	if review == nil && !opts.Yes && tui.IsInteractive() {
		review = func(text string) (string, error) {
			editor, _ := rt.Gateway.ConfigValue(ctx, "core.editor")
			return tui.ReviewMessage(splog, text, message.Format, editor)
		}
	}
	if review != nil && !opts.Yes {
		reviewed, err := review(msg.String())
		if err != nil {
			return report, err
		}
		original := msg
		msg = message.Parse(reviewed)
		if msg.String() == original.String() {
			msg.Source = original.Source
		}
		if err := validateMessage(msg); err != nil {
			return report, err
		}
	} else {
		splog.Info("Commit message (%s):", msg.Source)
		splog.Page(message.Format(msg.String()))
		splog.Newline()
	}
	report.Message = msg

	if opts.DryRun {
		splog.Info("Dry run: not committing %s.", formatStats(report.Stats))
		return report, nil
	}

	outcome := rt.Gateway.Commit(ctx, msg.String())
	report.Outcome = outcome
	switch outcome.Kind {
	case git.NothingToCommit:
		splog.Info("Nothing to commit.")
		return report, nil
	case git.CommitFailed:
		return report, outcome.Err()
	}
	splog.Success("Committed %s: %s", formatStats(report.Stats), msg.Subject)

	if opts.Push || cfg.AutoPush {
		pushed, err := Push(ctx, rt, PushOptions{Branch: opts.Branch})
		report.Push = &pushed
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// commitDiff stages everything when asked and returns the diff that will be
// committed. A dry run leaves the index alone and previews staged plus
// unstaged changes to tracked files instead.
func commitDiff(ctx context.Context, rt *runtime.Context, stageAll, dryRun bool) (string, error) {
	if stageAll && !dryRun {
		rt.Splog.Debug("staging all changes")
		if err := rt.Gateway.StageAll(ctx); err != nil {
			return "", err
		}
	}

	staged, err := rt.Gateway.StagedDiff(ctx)
	if err != nil {
		return "", err
	}
	if !stageAll || !dryRun {
		return staged, nil
	}

	unstaged, err := rt.Gateway.UnstagedDiff(ctx)
	if err != nil {
		return "", err
	}
	if staged == "" {
		return unstaged, nil
	}
	return staged + "\n" + unstaged, nil
}

func runChecks(ctx context.Context, rt *runtime.Context) ([]checks.Result, error) {
	list := checks.FromConfig(rt.Config)
	if len(list) == 0 {
		return nil, nil
	}

	runner := checks.NewRunner(rt.Runner, rt.Dir(),
		checks.WithLogger(rt.Splog),
		checks.WithOutput(rt.Splog.Writer(), rt.Splog.Writer()),
	)
	results, err := runner.RunAll(ctx, list)
	for _, res := range results {
		if res.Passed {
			rt.Splog.Success("%s passed", res.Name)
		}
	}
	var failed *gissyerrors.CheckFailedError
	if errors.As(err, &failed) {
		rt.Splog.Error("%s failed", failed.Name)
	}
	return results, err
}

func deriveMessage(ctx context.Context, rt *runtime.Context, diff, explicit string) message.GeneratedMessage {
	if strings.TrimSpace(explicit) != "" {
		return message.Parse(explicit)
	}

	useAI := rt.Config.UseAI
	title := "Summarizing changes..."
	if useAI {
		title = "Generating commit message..."
	}
	return tui.RunWithSpinner(rt.Splog, title, func() message.GeneratedMessage {
		return rt.Synthesizer.Generate(ctx, diff, useAI)
	})
}

func validateMessage(msg message.GeneratedMessage) error {
	if message.Validate(msg.String()) {
		return nil
	}
	return gissyerrors.WithHintf(
		fmt.Errorf("%w: message must be 1 to %d characters", gissyerrors.ErrInvalidMessage, message.MaxLength),
		"pass a shorter message with -m",
	)
}

func formatStats(s git.DiffStats) string {
	return tui.ColorAdded(fmt.Sprintf("+%d", s.Added)) + " " + tui.ColorRemoved(fmt.Sprintf("-%d", s.Removed))
}

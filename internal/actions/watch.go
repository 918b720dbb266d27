package actions

import (
	"context"
	"fmt"

	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
	"gissy.dev/gissy/internal/watch"
)

// WatchOptions contains options for the watch command
type WatchOptions struct {
	// Push pushes after each automatic commit, like autoPush
	Push bool
	// SkipChecks skips tests and lint before each automatic commit
	SkipChecks bool
	// Ready is called once the watcher is registered
	Ready func()
	// OnBatch is called after each batch has been handled
	OnBatch func(paths []string, report *CommitReport, err error)
}

// Watch commits changes under the repository root as they settle. With
// autoCommit disabled it only reports what changed. It returns nil when ctx
// is cancelled.
func Watch(ctx context.Context, rt *runtime.Context, opts WatchOptions) error {
	splog := rt.Splog
	cfg := rt.Config
	if err := requireRepository(ctx, rt); err != nil {
		return err
	}

	matcher, err := watch.NewMatcher(cfg.WatchIgnore)
	if err != nil {
		return gissyerrors.WithHint(err, "check the watchIgnore patterns in your gissy config")
	}
	w, err := watch.New(rt.Dir(), watch.Options{
		Ignore:   matcher,
		Debounce: cfg.WatchDebounce,
		Logger:   splog,
	})
	if err != nil {
		return err
	}

	splog.Info("Watching %s (%d %s). Press Ctrl+C to stop.", rt.Dir(),
		len(w.WatchedDirs()), pluralize(len(w.WatchedDirs()), "directory", "directories"))
	if !cfg.AutoCommit {
		splog.Tip("autoCommit is off, so changes are only reported. Set %s to commit them.", tui.ColorCyan("autoCommit: true"))
	}
	if opts.Ready != nil {
		opts.Ready()
	}

	err = w.Run(ctx, func(ctx context.Context, paths []string) {
		report, err := handleWatchBatch(ctx, rt, opts, paths)
		if err != nil {
			splog.Error("%v", err)
			for _, hint := range gissyerrors.Hints(err) {
				splog.Tip("%s", hint)
			}
		}
		if opts.OnBatch != nil {
			opts.OnBatch(paths, report, err)
		}
	})
	splog.Info("Stopped watching.")
	return err
}

func handleWatchBatch(ctx context.Context, rt *runtime.Context, opts WatchOptions, paths []string) (*CommitReport, error) {
	splog := rt.Splog
	splog.Info("Detected %d changed %s.", len(paths), pluralize(len(paths), "file", "files"))
	for _, p := range paths {
		splog.Debug("  %s", p)
	}

	if !rt.Config.AutoCommit {
		return nil, nil
	}
	if !rt.Gateway.HasPendingChanges(ctx) {
		splog.Debug("changes settled back to HEAD, nothing to commit")
		return nil, nil
	}

	report, err := Commit(ctx, rt, CommitOptions{
		All:        true,
		Yes:        true,
		Push:       opts.Push,
		SkipChecks: opts.SkipChecks,
	})
	if err != nil {
		return report, fmt.Errorf("automatic commit failed: %w", err)
	}
	return report, nil
}

// Package watch reports batches of changed files under a repository.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a batch is delivered
const DefaultDebounce = 2 * time.Second

// Logger is the subset of tui.Splog the watcher reports through
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// Options configures a Watcher
type Options struct {
	Ignore   *Matcher
	Debounce time.Duration
	Logger   Logger
}

// Handler receives the sorted repository-relative paths changed during one
// quiet period. It runs on the watcher goroutine; events arriving meanwhile
// are delivered in the next batch.
type Handler func(ctx context.Context, paths []string)

// Watcher watches a directory tree recursively
type Watcher struct {
	root     string
	ignore   *Matcher
	debounce time.Duration
	logger   Logger
	fsw      *fsnotify.Watcher
}

// New creates a Watcher for root and registers every directory below it
// that is not ignored.
func New(root string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if opts.Ignore == nil {
		opts.Ignore, _ = NewMatcher(nil)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		root:     abs,
		ignore:   opts.Ignore,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		fsw:      fsw,
	}
	if err := w.addTree(abs); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// WatchedDirs returns the directories currently registered
func (w *Watcher) WatchedDirs() []string {
	return w.fsw.WatchList()
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// directories can vanish between the event and the walk
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.ignore.Match(w.rel(path)) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// Run delivers debounced batches to handle until ctx is cancelled. The
// watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	defer func() { _ = w.fsw.Close() }()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			rel := w.rel(ev.Name)
			if w.ignore.Match(rel) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						w.logger.Warn("%v", err)
					}
				}
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			w.logger.Debug("change: %s %s", ev.Op, rel)
			pending[rel] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error: %v", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			pending = make(map[string]struct{})
			handle(ctx, paths)
		}
	}
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMatcher(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher([]string{"dist/**", "*.log", "  ", "build", "docs/*.md"})
	require.NoError(t, err)
	require.Equal(t, []string{"dist/**", "*.log", "build", "docs/*.md"}, m.Patterns())

	tests := []struct {
		path    string
		ignored bool
	}{
		{".git", true},
		{".git/index", true},
		{"sub/.git/HEAD", true},
		{"dist/app.js", true},
		{"dist/nested/deep.js", true},
		{"app.log", true},
		{"logs/today.log", true},
		{"build", true},
		{"build/out.bin", true},
		{"docs/readme.md", true},
		{"docs/api/readme.md", false},
		{"src/main.go", false},
		{"distribution/a.go", false},
		{".gitignore", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.ignored, m.Match(tt.path), tt.path)
	}

	_, err = NewMatcher([]string{"[unclosed"})
	require.Error(t, err)
}

func TestEmptyMatcherOnlyIgnoresGit(t *testing.T) {
	t.Parallel()

	m, err := NewMatcher(nil)
	require.NoError(t, err)
	require.True(t, m.Match(".git/objects/ab"))
	require.False(t, m.Match("main.go"))
}

func waitForBatch(t *testing.T, batches <-chan []string) []string {
	t.Helper()
	select {
	case b := <-batches:
		return b
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change batch")
		return nil
	}
}

func startWatcher(t *testing.T, root string, ignore []string) (<-chan []string, context.CancelFunc, <-chan error) {
	t.Helper()
	m, err := NewMatcher(ignore)
	require.NoError(t, err)

	w, err := New(root, Options{Ignore: m, Debounce: 100 * time.Millisecond})
	require.NoError(t, err)

	batches := make(chan []string, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, paths []string) {
			batches <- paths
		})
	}()
	t.Cleanup(cancel)
	return batches, cancel, done
}

func TestWatcher_DebouncesChanges(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	batches, _, _ := startWatcher(t, root, nil)

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0o644))

	batch := waitForBatch(t, batches)
	require.Contains(t, batch, "a.txt")
	require.Contains(t, batch, "b.txt")
}

func TestWatcher_SkipsGitAndIgnored(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0o755))

	m, err := NewMatcher([]string{"dist"})
	require.NoError(t, err)
	w, err := New(root, Options{Ignore: m, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)

	for _, dir := range w.WatchedDirs() {
		require.NotEqual(t, filepath.Join(root, ".git"), dir)
		require.NotEqual(t, filepath.Join(root, "dist"), dir)
	}

	batches := make(chan []string, 10)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() {
		_ = w.Run(ctx, func(_ context.Context, paths []string) { batches <- paths })
	}()

	require.NoError(t, os.WriteFile(filepath.Join(root, ".git", "index"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "kept.txt"), []byte("x"), 0o644))

	batch := waitForBatch(t, batches)
	require.Equal(t, []string{"kept.txt"}, batch)
}

func TestWatcher_NewDirectoriesAreWatched(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	batches, _, _ := startWatcher(t, root, nil)

	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.Mkdir(sub, 0o755))
	waitForBatch(t, batches)

	require.NoError(t, os.WriteFile(filepath.Join(sub, "new.go"), []byte("package pkg"), 0o644))
	batch := waitForBatch(t, batches)
	require.Contains(t, batch, "pkg/new.go")
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	_, cancel, done := startWatcher(t, root, nil)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

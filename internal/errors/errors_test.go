package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGitCommandError(t *testing.T) {
	t.Run("message includes argv and stderr", func(t *testing.T) {
		err := NewGitCommandError("git", []string{"push", "origin", "main"}, "", "fatal: no remote\n", 128, nil)
		require.Contains(t, err.Error(), "git push origin main")
		require.Contains(t, err.Error(), "exit 128")
		require.Contains(t, err.Error(), "fatal: no remote")
	})

	t.Run("reason prefers stderr then stdout", func(t *testing.T) {
		require.Equal(t, "boom", NewGitCommandError("git", nil, "out", " boom\n", 1, nil).Reason())
		require.Equal(t, "out", NewGitCommandError("git", nil, "out\n", "", 1, nil).Reason())
		require.Equal(t, "exit status 2", NewGitCommandError("git", nil, "", "", 2, nil).Reason())
	})

	t.Run("unwraps underlying error", func(t *testing.T) {
		err := NewGitCommandError("git", nil, "", "", -1, ErrCommandTimeout)
		require.True(t, errors.Is(err, ErrCommandTimeout))
	})
}

func TestCheckFailedError(t *testing.T) {
	err := fmt.Errorf("commit: %w", &CheckFailedError{Name: "tests", ExitCode: 1})
	require.True(t, errors.Is(err, ErrChecksFailed))
	require.Contains(t, err.Error(), "tests failed with exit code 1")
}

func TestHints(t *testing.T) {
	t.Run("hints survive wrapping", func(t *testing.T) {
		err := WithHint(ErrNotARepository, "run gissy inside a git work tree")
		wrapped := fmt.Errorf("status: %w", err)

		require.True(t, errors.Is(wrapped, ErrNotARepository))
		require.Equal(t, []string{"run gissy inside a git work tree"}, Hints(wrapped))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, WithHint(nil, "ignored"))
		require.Empty(t, Hints(nil))
	})
}

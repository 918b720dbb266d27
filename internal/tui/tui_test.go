package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

func TestSplog(t *testing.T) {
	t.Run("prefixes levels", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf})
		require.NoError(t, err)

		splog.Info("plain %d", 1)
		splog.Warn("careful")
		splog.Error("broken")
		splog.Success("done")
		splog.Tip("try %s", "this")

		out := buf.String()
		require.Contains(t, out, "plain 1\n")
		require.Contains(t, out, "⚠️  careful")
		require.Contains(t, out, "❌ broken")
		require.Contains(t, out, "✅ done")
		require.Contains(t, out, "💡 try this")
	})

	t.Run("debug only when enabled", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var quiet, loud bytes.Buffer

		s1, err := NewSplogWithOptions(SplogOptions{Writer: &quiet})
		require.NoError(t, err)
		s1.Debug("hidden")
		require.Empty(t, quiet.String())

		s2, err := NewSplogWithOptions(SplogOptions{Writer: &loud, Debug: true})
		require.NoError(t, err)
		s2.Debug("shown")
		require.Contains(t, loud.String(), "shown")
	})

	t.Run("held output is written on release", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf})
		require.NoError(t, err)

		splog.Hold()
		splog.Warn("AI request failed")
		splog.Page("page")
		_, _ = splog.Writer().Write([]byte("raw\n"))
		require.Empty(t, buf.String())

		require.NoError(t, splog.Release())
		require.Equal(t, "⚠️  AI request failed\npageraw\n", buf.String())

		splog.Info("after")
		require.Equal(t, "⚠️  AI request failed\npageraw\nafter\n", buf.String())
	})

	t.Run("writes to the log file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "logs", "gissy.log")
		var buf bytes.Buffer
		splog, err := NewSplogWithOptions(SplogOptions{Writer: &buf, LogFile: logFile})
		require.NoError(t, err)

		splog.Debug("file only")
		splog.Info("both")
		require.NoError(t, splog.Close())

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(content), "file only")
		require.Contains(t, string(content), "both")
		require.NotContains(t, buf.String(), "file only")
	})
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv(LogFileEnv, "")

	require.Empty(t, GetLogFilePath("", ""))
	require.Equal(t, "/tmp/c.log", GetLogFilePath("", "/tmp/c.log"))

	t.Setenv(LogFileEnv, "/tmp/env.log")
	require.Equal(t, "/tmp/env.log", GetLogFilePath("", "/tmp/c.log"))
	require.Equal(t, "/tmp/flag.log", GetLogFilePath("/tmp/flag.log", "/tmp/c.log"))

	t.Setenv("HOME", "/home/someone")
	require.Equal(t, filepath.Join("/home/someone", ".gissy", "logs", "gissy.log"), GetLogFilePath("default", ""))
}

func TestConfigureColor(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })

	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Setenv(NoColorEnv, "")
	ConfigureColor(false)
	require.True(t, ColorEnabled())

	ConfigureColor(true)
	require.False(t, ColorEnabled())
	require.Equal(t, "plain", ColorRed("plain"))

	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Setenv(NoColorEnv, "1")
	ConfigureColor(false)
	require.False(t, ColorEnabled())
}

func TestRenderHeader(t *testing.T) {
	original := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(original) })
	lipgloss.SetColorProfile(termenv.Ascii)

	banner := RenderHeader("Commit", HeaderBanner)
	require.Contains(t, banner, "g i s s y")
	require.Contains(t, banner, tagline)
	require.True(t, strings.HasSuffix(banner, "Commit"))

	compact := RenderHeader("", HeaderCompact)
	require.Equal(t, "gissy · "+tagline, compact)

	var buf bytes.Buffer
	PrintHeader(&buf, "Push", HeaderCompact)
	require.Contains(t, buf.String(), "Push")
}

func TestRunWithSpinner_NonInteractive(t *testing.T) {
	t.Setenv(NonInteractiveEnv, "1")
	require.False(t, IsInteractive())

	got := RunWithSpinner(nil, "working", func() string { return "result" })
	require.Equal(t, "result", got)
}

func TestPromptsDisabled(t *testing.T) {
	t.Setenv(NonInteractiveEnv, "1")

	_, err := PromptConfirm("sure?", true)
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	_, err = PromptReview()
	require.ErrorIs(t, err, ErrInteractiveDisabled)

	splog, err := NewSplogWithOptions(SplogOptions{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	_, err = ReviewMessage(splog, "feat: x", func(s string) string { return s }, "")
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	require.NotErrorIs(t, err, gissyerrors.ErrAborted)
}

func TestEditorCommand(t *testing.T) {
	t.Setenv("GIT_EDITOR", `"/opt/my editor/bin/code" --wait`)
	argv, err := EditorCommand("emacs")
	require.NoError(t, err)
	require.Equal(t, []string{"/opt/my editor/bin/code", "--wait"}, argv)

	t.Setenv("GIT_EDITOR", `"unterminated`)
	_, err = EditorCommand("")
	require.Error(t, err)

	t.Setenv("GIT_EDITOR", "")
	t.Setenv("EDITOR", "nano")
	argv, err = EditorCommand("emacs")
	require.NoError(t, err)
	require.Equal(t, []string{"nano"}, argv)

	t.Setenv("EDITOR", "")
	argv, err = EditorCommand("  code --wait\n")
	require.NoError(t, err)
	require.Equal(t, []string{"code", "--wait"}, argv)

	argv, err = EditorCommand("")
	require.NoError(t, err)
	require.Equal(t, []string{"vi"}, argv)
}

func TestOpenEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-editor.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nprintf 'fix: edited\\n# dropped\\n' > \"$1\"\n"), 0o755))

	t.Setenv("GIT_EDITOR", script)
	got, err := OpenEditor("feat: original", "gissy-test-*.txt", "")
	require.NoError(t, err)
	require.Equal(t, "fix: edited", got)

	t.Setenv("GIT_EDITOR", "false")
	_, err = OpenEditor("feat: original", "gissy-test-*.txt", "")
	require.Error(t, err)

	t.Run("configured editor is used when the environment is empty", func(t *testing.T) {
		t.Setenv("GIT_EDITOR", "")
		t.Setenv("EDITOR", "")
		got, err := OpenEditor("feat: original", "gissy-test-*.txt", script)
		require.NoError(t, err)
		require.Equal(t, "fix: edited", got)
	})
}

func TestStripComments(t *testing.T) {
	require.Equal(t, "subject\n\nbody", stripComments("subject\n\nbody\n# comment\n"))
	require.Equal(t, "", stripComments("# only comments\n#\n"))
}

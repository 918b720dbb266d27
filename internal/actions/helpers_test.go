package actions_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
)

func newRuntimeOutsideRepo(t *testing.T) *runtime.Context {
	t.Helper()
	t.Setenv(tui.NonInteractiveEnv, "true")

	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	rt, err := runtime.New(runtime.Options{WorkDir: t.TempDir(), Splog: splog})
	require.NoError(t, err)
	require.Empty(t, rt.RepoRoot)
	return rt
}

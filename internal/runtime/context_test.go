package runtime_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gissy.dev/gissy/internal/ai"
	"gissy.dev/gissy/internal/config"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
	"gissy.dev/gissy/testhelpers"
)

func quietSplog(t *testing.T) *tui.Splog {
	t.Helper()
	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: &bytes.Buffer{}})
	require.NoError(t, err)
	return splog
}

func TestNew(t *testing.T) {
	t.Run("resolves the repository root from a subdirectory", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sub := filepath.Join(scene.Dir, "pkg", "deep")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		rt, err := runtime.New(runtime.Options{WorkDir: sub, Splog: quietSplog(t)})
		require.NoError(t, err)

		root, err := filepath.EvalSymlinks(scene.Dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(rt.RepoRoot)
		require.NoError(t, err)
		require.Equal(t, root, got)
		require.Equal(t, rt.RepoRoot, rt.Dir())
		require.Equal(t, rt.RepoRoot, rt.Gateway.Dir())
		require.True(t, rt.Gateway.IsRepository(context.Background()))
	})

	t.Run("outside a repository falls back to the work dir", func(t *testing.T) {
		dir := t.TempDir()

		rt, err := runtime.New(runtime.Options{WorkDir: dir, Splog: quietSplog(t)})
		require.NoError(t, err)
		require.Empty(t, rt.RepoRoot)
		require.Equal(t, dir, rt.Dir())
		require.False(t, rt.Gateway.IsRepository(context.Background()))
	})

	t.Run("reads the config file found from the work dir", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile(".gissyrc.yaml", "branch: develop\nuseAI: true\n"))

		rt, err := runtime.New(runtime.Options{WorkDir: scene.Dir, Splog: quietSplog(t)})
		require.NoError(t, err)
		require.Equal(t, "develop", rt.Config.Branch)
		require.True(t, rt.Config.UseAI)
		require.Equal(t, filepath.Join(scene.Dir, ".gissyrc.yaml"), rt.Config.Source)
	})

	t.Run("loads .env from the repository root before reading credentials", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		t.Setenv("GISSY_TEST_DOTENV_KEY", "")
		require.NoError(t, os.Unsetenv("GISSY_TEST_DOTENV_KEY"))
		require.NoError(t, scene.Repo.WriteFile(".env", "GISSY_TEST_DOTENV_KEY=from-dotenv\n"))
		require.NoError(t, scene.Repo.WriteFile(".gissyrc", "ai:\n  apiKeyEnv: GISSY_TEST_DOTENV_KEY\n"))

		rt, err := runtime.New(runtime.Options{WorkDir: scene.Dir, Splog: quietSplog(t)})
		require.NoError(t, err)

		key, ok := rt.Credential.APIKey()
		require.True(t, ok)
		require.Equal(t, "from-dotenv", key)
	})

	t.Run("injected collaborators are used", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		mock := ai.NewMockClient()
		mock.SetMockCommitMessage("feat: injected")

		rt, err := runtime.New(runtime.Options{
			WorkDir:    scene.Dir,
			Splog:      quietSplog(t),
			AIFactory:  mock.Factory(),
			Credential: ai.StaticCredential("k"),
		})
		require.NoError(t, err)

		msg := rt.Synthesizer.Generate(context.Background(), "+x\n", true)
		require.Equal(t, "feat: injected", msg.Subject)
		require.Equal(t, []string{"k"}, mock.Keys())
	})

	t.Run("logger is built from the loaded config", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile(".gissyrc.yaml", "logFile: gissy.log\n"))

		var seen string
		rt, err := runtime.New(runtime.Options{
			WorkDir: scene.Dir,
			NewSplog: func(cfg *config.Config) (*tui.Splog, error) {
				seen = cfg.LogFile
				return quietSplog(t), nil
			},
		})
		require.NoError(t, err)
		require.Equal(t, "gissy.log", seen)
		require.NotNil(t, rt.Splog)
	})

	t.Run("malformed config is an error", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.WriteFile(".gissyrc.json", "{not json"))

		_, err := runtime.New(runtime.Options{WorkDir: scene.Dir, Splog: quietSplog(t)})
		require.Error(t, err)
	})
}

func TestContextRoundTrip(t *testing.T) {
	_, err := runtime.GetContext(context.Background())
	require.ErrorIs(t, err, runtime.ErrNoContext)

	rt := &runtime.Context{WorkDir: "/work"}
	got, err := runtime.GetContext(runtime.WithContext(context.Background(), rt))
	require.NoError(t, err)
	require.Same(t, rt, got)
	require.Equal(t, "/work", got.Dir())
}

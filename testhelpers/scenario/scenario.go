// Package scenario provides a high-level test scenario that combines a Scene
// with a runtime Context to provide a terse API for action and CLI tests.
package scenario

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"gissy.dev/gissy/internal/ai"
	"gissy.dev/gissy/internal/runtime"
	"gissy.dev/gissy/internal/tui"
	"gissy.dev/gissy/testhelpers"
)

// Scenario represents a high-level test scenario. The runtime Context talks
// to a real repository through the real git binary, while AI generation is
// served by a MockClient.
type Scenario struct {
	T       *testing.T
	Scene   *testhelpers.Scene
	Context *runtime.Context
	AI      *ai.MockClient
	Output  *bytes.Buffer
}

// NewScenario creates a new Scenario with an optional setup function. Pre-commit
// checks are disabled and AI generation is off until the test enables them.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv and NewScene.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	// Force non-interactive mode for tests
	t.Setenv(tui.NonInteractiveEnv, "true")

	scene := testhelpers.NewScene(t, setup)
	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{Writer: out})
	require.NoError(t, err)

	mock := ai.NewMockClient()
	rt, err := runtime.New(runtime.Options{
		WorkDir:    scene.Dir,
		Splog:      splog,
		AIFactory:  mock.Factory(),
		Credential: ai.StaticCredential("test-key"),
	})
	require.NoError(t, err)
	rt.Config.RunTests = false
	rt.Config.RunLint = false

	return &Scenario{
		T:       t,
		Scene:   scene,
		Context: rt,
		AI:      mock,
		Output:  out,
	}
}

// WithAI enables AI generation and makes the mock reply with msg.
func (s *Scenario) WithAI(msg string) *Scenario {
	s.Context.Config.UseAI = true
	s.AI.SetMockCommitMessage(msg)
	return s
}

// WithStagedChange writes name and stages it.
func (s *Scenario) WithStagedChange(name, content string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.WriteFile(name, content))
	require.NoError(s.T, s.Scene.Repo.RunGitCommand("add", name))
	return s
}

// WithUncommittedChange writes name without staging it.
func (s *Scenario) WithUncommittedChange(name, content string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.WriteFile(name, content))
	return s
}

// RunGit runs a git command in the scenario's repository.
func (s *Scenario) RunGit(args ...string) *Scenario {
	s.T.Helper()
	err := s.Scene.Repo.RunGitCommand(args...)
	require.NoError(s.T, err)
	return s
}

// ExpectBranch asserts that the current branch is as expected.
func (s *Scenario) ExpectBranch(expected string) *Scenario {
	s.T.Helper()
	actual, err := s.Scene.Repo.CurrentBranchName()
	require.NoError(s.T, err)
	require.Equal(s.T, expected, actual)
	return s
}

// ExpectLastCommit asserts the subject of HEAD.
func (s *Scenario) ExpectLastCommit(subject string) *Scenario {
	s.T.Helper()
	actual, err := s.Scene.Repo.LastCommitSubject()
	require.NoError(s.T, err)
	require.Equal(s.T, subject, actual)
	return s
}

// ExpectCommitCount asserts the number of commits reachable from HEAD.
func (s *Scenario) ExpectCommitCount(n int) *Scenario {
	s.T.Helper()
	out, err := s.Scene.Repo.RunGitCommandAndGetOutput("rev-list", "--count", "HEAD")
	require.NoError(s.T, err)
	require.Equal(s.T, strconv.Itoa(n), out)
	return s
}

// ExpectOutputContains asserts that console output contains text.
func (s *Scenario) ExpectOutputContains(text string) *Scenario {
	s.T.Helper()
	require.Contains(s.T, s.Output.String(), text)
	return s
}

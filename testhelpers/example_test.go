package testhelpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gissy.dev/gissy/testhelpers"
)

func TestExampleUsage(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	branches, err := scene.Repo.RunGitCommandAndGetOutput("branch", "--list")
	require.NoError(t, err)
	require.Contains(t, branches, "main")
	testhelpers.ExpectCleanWorktree(t, scene.Repo)
}

func TestGitRepoBasicOperations(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	err := scene.Repo.CreateChangeAndCommit("test content", "test")
	require.NoError(t, err)

	branch, err := scene.Repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	subject, err := scene.Repo.LastCommitSubject()
	require.NoError(t, err)
	require.Equal(t, "test content", subject)
}

func TestSceneWithSetup(t *testing.T) {
	customSetup := func(scene *testhelpers.Scene) error {
		if err := scene.Repo.CreateChangeAndCommit("commit 1", "1"); err != nil {
			return err
		}
		return scene.Repo.CreateChangeAndCommit("commit 2", "2")
	}

	scene := testhelpers.NewScene(t, customSetup)

	testhelpers.ExpectCommits(t, scene.Repo, "main", []string{"commit 2", "commit 1"})
}

func TestRemoteScene(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)

	upstream, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "@{u}")
	require.NoError(t, err)
	require.Equal(t, "origin/main", upstream)
}

func TestExpectBranches(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("bugfix"))
	require.NoError(t, scene.Repo.CheckoutBranch("main"))

	testhelpers.ExpectBranches(t, scene.Repo, []string{"bugfix", "feature", "main"})
}

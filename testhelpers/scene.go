package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
// Unlike a chdir-based fixture, the process working directory is left alone;
// code under test receives Scene.Dir explicitly.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git
// repository. Both live under t.TempDir, including bare remotes created next
// to the work tree. Scenes set GIT_CONFIG_GLOBAL, so tests using them cannot
// call t.Parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// git run by the code under test must not read the developer's config
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	tmpDir := t.TempDir()
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{Dir: tmpDir, Repo: repo}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// RemoteSceneSetup creates a single commit and pushes main to a bare origin
// with upstream tracking.
func RemoteSceneSetup(scene *Scene) error {
	if err := BasicSceneSetup(scene); err != nil {
		return err
	}
	if _, err := scene.Repo.CreateBareRemote("origin"); err != nil {
		return err
	}
	return scene.Repo.PushBranch("origin", "main")
}

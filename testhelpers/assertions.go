// Package testhelpers provides testing utilities for gissy, including a
// scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"os/exec"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. Useful in test setup where errors are not
// expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local
// branches, in any order.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"for-each-ref", "refs/heads/", "--format=%(refname:short)")
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list branches")

	filtered := []string{}
	for _, b := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if b = strings.TrimSpace(b); b != "" {
			filtered = append(filtered, b)
		}
	}

	sort.Strings(filtered)
	expected = append([]string(nil), expected...)
	sort.Strings(expected)

	require.Equal(t, expected, filtered, "Branches do not match")
}

// ExpectCommits asserts that the newest commits on branch have the expected
// subjects, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir, "log", "--format=%s", branch)
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	filtered := []string{}
	for _, c := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if c = strings.TrimSpace(c); c != "" {
			filtered = append(filtered, c)
		}
	}

	if len(filtered) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(filtered))
		return
	}
	require.Equal(t, expected, filtered[:len(expected)], "Commits do not match")
}

// ExpectCleanWorktree asserts that git reports no pending changes.
func ExpectCleanWorktree(t *testing.T, repo *GitRepo) {
	t.Helper()

	out, err := repo.RunGitCommandAndGetOutput("status", "--porcelain")
	require.NoError(t, err)
	require.Empty(t, out, "expected a clean work tree")
}

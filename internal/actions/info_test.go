package actions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gissy.dev/gissy/internal/actions"
	"gissy.dev/gissy/internal/github"
	"gissy.dev/gissy/testhelpers"
	"gissy.dev/gissy/testhelpers/scenario"
)

type fakeGitHub struct {
	meta  *github.RepositoryMetadata
	err   error
	calls []string
}

func (f *fakeGitHub) Repository(_ context.Context, owner, repo string) (*github.RepositoryMetadata, error) {
	f.calls = append(f.calls, owner+"/"+repo)
	return f.meta, f.err
}

func githubScenario(t *testing.T) *scenario.Scenario {
	t.Helper()
	s := scenario.NewScenario(t, testhelpers.RemoteSceneSetup)
	s.RunGit("remote", "set-url", "origin", "https://github.com/acme/widgets.git")
	return s
}

func TestInfoAction(t *testing.T) {
	ctx := context.Background()

	t.Run("shows the repository snapshot", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.RemoteSceneSetup)

		report, err := actions.Info(ctx, s.Context, actions.InfoOptions{})
		require.NoError(t, err)
		require.Equal(t, "main", report.Repo.Branch)
		require.Equal(t, 1, report.Repo.TotalCommitCount)
		require.Nil(t, report.Remote)
		s.ExpectOutputContains("Total commits: 1")
	})

	t.Run("missing origin is an error", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.BasicSceneSetup)

		_, err := actions.Info(ctx, s.Context, actions.InfoOptions{})
		require.ErrorIs(t, err, actions.ErrNoRepoInfo)
	})

	t.Run("remote metadata from GitHub", func(t *testing.T) {
		s := githubScenario(t)
		fake := &fakeGitHub{meta: &github.RepositoryMetadata{
			FullName:      "acme/widgets",
			DefaultBranch: "main",
			Stars:         42,
			OpenIssues:    3,
			HTMLURL:       "https://github.com/acme/widgets",
		}}
		var hosts []string
		s.Context.GitHub = func(_ context.Context, hostname string) (github.Client, error) {
			hosts = append(hosts, hostname)
			return fake, nil
		}

		report, err := actions.Info(ctx, s.Context, actions.InfoOptions{Remote: true})
		require.NoError(t, err)
		require.Equal(t, "widgets", report.Repo.Name)
		require.Equal(t, fake.meta, report.Remote)
		require.Equal(t, []string{"github.com"}, hosts)
		require.Equal(t, []string{"acme/widgets"}, fake.calls)
		s.ExpectOutputContains("42 stars, 3 open issues")
	})

	t.Run("missing token is a tip, not a failure", func(t *testing.T) {
		s := githubScenario(t)
		s.Context.GitHub = func(context.Context, string) (github.Client, error) {
			return nil, github.ErrNoToken
		}

		report, err := actions.Info(ctx, s.Context, actions.InfoOptions{Remote: true})
		require.NoError(t, err)
		require.Nil(t, report.Remote)
		s.ExpectOutputContains("Set GITHUB_TOKEN")
	})

	t.Run("API errors are warnings", func(t *testing.T) {
		s := githubScenario(t)
		s.Context.GitHub = func(context.Context, string) (github.Client, error) {
			return &fakeGitHub{err: errors.New("404 Not Found")}, nil
		}

		report, err := actions.Info(ctx, s.Context, actions.InfoOptions{Remote: true})
		require.NoError(t, err)
		require.Nil(t, report.Remote)
		s.ExpectOutputContains("404 Not Found")
	})

	t.Run("non-GitHub origin skips remote metadata", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.RemoteSceneSetup)
		s.Context.GitHub = func(context.Context, string) (github.Client, error) {
			t.Fatal("GitHub client must not be built for a local origin")
			return nil, nil
		}

		_, err := actions.Info(ctx, s.Context, actions.InfoOptions{Remote: true})
		require.NoError(t, err)
		s.ExpectOutputContains("only available for GitHub")
	})

	t.Run("web opens the repository page", func(t *testing.T) {
		s := githubScenario(t)
		var opened string

		report, err := actions.Info(ctx, s.Context, actions.InfoOptions{
			Web:     true,
			OpenURL: func(u string) error { opened = u; return nil },
		})
		require.NoError(t, err)
		require.Equal(t, "https://github.com/acme/widgets", opened)
		require.Equal(t, opened, report.WebURL)
	})

	t.Run("web fails for a local origin", func(t *testing.T) {
		s := scenario.NewScenario(t, testhelpers.RemoteSceneSetup)

		_, err := actions.Info(ctx, s.Context, actions.InfoOptions{
			Web:     true,
			OpenURL: func(string) error { t.Fatal("browser must not open"); return nil },
		})
		require.Error(t, err)
	})
}

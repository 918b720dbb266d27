package checks_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gissy.dev/gissy/internal/checks"
	"gissy.dev/gissy/internal/config"
	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/git"
)

func TestParse(t *testing.T) {
	t.Parallel()

	argv, err := checks.Parse(`go test -run "TestA|TestB" ./...`)
	require.NoError(t, err)
	require.Equal(t, []string{"go", "test", "-run", "TestA|TestB", "./..."}, argv)

	// shell operators are plain arguments
	argv, err = checks.Parse("npm test; touch pwned")
	require.NoError(t, err)
	require.Equal(t, []string{"npm", "test;", "touch", "pwned"}, argv)

	_, err = checks.Parse("   ")
	require.Error(t, err)

	_, err = checks.Parse(`echo "unterminated`)
	require.Error(t, err)
}

func TestRunner_Mock(t *testing.T) {
	t.Parallel()

	t.Run("passing check runs interactively in dir", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockRunner()
		mock.On(git.CommandResult{Stdout: "ok\n"}, nil, "npm", "run", "test")

		var out bytes.Buffer
		runner := checks.NewRunner(mock, "/repo", checks.WithOutput(&out, &out))
		res := runner.Run(context.Background(), checks.Check{Name: "tests", Command: "npm run test"})

		require.True(t, res.Passed)
		require.Equal(t, 0, res.ExitCode)
		require.NoError(t, res.Err)
		require.Equal(t, "ok\n", out.String())

		calls := mock.Calls()
		require.Len(t, calls, 1)
		require.True(t, calls[0].Interactive)
		require.Equal(t, "/repo", calls[0].Opts.Dir)
	})

	t.Run("non-zero exit fails", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockRunner()
		mock.On(git.CommandResult{ExitCode: 2}, nil, "npm", "run", "lint")

		res := checks.NewRunner(mock, "").Run(context.Background(), checks.Check{Name: "lint", Command: "npm run lint"})
		require.False(t, res.Passed)
		require.Equal(t, 2, res.ExitCode)
	})

	t.Run("start failure fails", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockRunner()
		startErr := gissyerrors.NewGitCommandError("nope", nil, "", "", -1, errors.New("executable file not found"))
		mock.On(git.CommandResult{ExitCode: -1}, startErr, "nope")

		res := checks.NewRunner(mock, "").Run(context.Background(), checks.Check{Name: "tests", Command: "nope"})
		require.False(t, res.Passed)
		require.Error(t, res.Err)
	})

	t.Run("unparseable command never runs", func(t *testing.T) {
		t.Parallel()
		mock := git.NewMockRunner()

		res := checks.NewRunner(mock, "").Run(context.Background(), checks.Check{Name: "tests", Command: `"`})
		require.False(t, res.Passed)
		require.Error(t, res.Err)
		require.Empty(t, mock.Calls())
	})
}

func TestRunAll(t *testing.T) {
	t.Parallel()

	mock := git.NewMockRunner()
	mock.On(git.CommandResult{ExitCode: 1}, nil, "npm", "run", "test")
	mock.On(git.CommandResult{}, nil, "npm", "run", "lint")

	results, err := checks.NewRunner(mock, "").RunAll(context.Background(), []checks.Check{
		{Name: "tests", Command: "npm run test"},
		{Name: "lint", Command: "npm run lint"},
	})
	require.Error(t, err)
	require.True(t, checks.IsCheckFailure(err))
	require.ErrorIs(t, err, gissyerrors.ErrChecksFailed)

	var failure *gissyerrors.CheckFailedError
	require.ErrorAs(t, err, &failure)
	require.Equal(t, "tests", failure.Name)
	require.Len(t, results, 1, "lint is skipped after tests fail")
	require.False(t, mock.CalledWith("npm", "run", "lint"))
}

func TestRunner_RealProcess(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	runner := checks.NewRunner(git.NewCommandRunner(nil), t.TempDir(), checks.WithOutput(&out, &out))

	results, err := runner.RunAll(context.Background(), []checks.Check{
		{Name: "tests", Command: "true"},
		{Name: "lint", Command: `sh -c "exit 3"`},
	})
	require.Error(t, err)
	require.Len(t, results, 2)
	require.True(t, results[0].Passed)
	require.False(t, results[1].Passed)
	require.Equal(t, 3, results[1].ExitCode)

	res := runner.Run(context.Background(), checks.Check{Name: "tests", Command: "gissy-no-such-binary-xyz"})
	require.False(t, res.Passed)
	require.Error(t, res.Err)
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.Equal(t, []checks.Check{
		{Name: checks.NameTests, Command: "npm run test"},
		{Name: checks.NameLint, Command: "npm run lint"},
	}, checks.FromConfig(cfg))

	cfg.RunTests = false
	cfg.LintCommand = "golangci-lint run"
	require.Equal(t, []checks.Check{{Name: checks.NameLint, Command: "golangci-lint run"}}, checks.FromConfig(cfg))

	cfg.RunLint = false
	require.Empty(t, checks.FromConfig(cfg))
	require.Nil(t, checks.FromConfig(nil))
}

package git

import (
	"context"
	"errors"
	"strings"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

// nothingToCommitSignatures are the phrasings git uses when the index has
// nothing to record. git prints them on stdout, older versions on stderr.
var nothingToCommitSignatures = []string{
	"nothing to commit",
	"nothing added to commit",
	"no changes added to commit",
}

// Commit records the staged changes with message. The message is passed to
// git as a single argument and is never interpreted by a shell.
func (g *Gateway) Commit(ctx context.Context, message string) CommitOutcome {
	result, err := g.run(ctx, "commit", "-m", message)
	if err != nil {
		return CommitOutcome{Kind: CommitFailed, Reason: errorReason(err)}
	}
	if result.Success() {
		return CommitOutcome{Kind: Committed}
	}
	if isNothingToCommit(result) {
		return CommitOutcome{Kind: NothingToCommit}
	}

	reason := strings.TrimSpace(result.Stderr)
	if reason == "" {
		reason = strings.TrimSpace(result.Stdout)
	}
	if reason == "" {
		reason = "git commit exited with status " + itoa(result.ExitCode)
	}
	return CommitOutcome{Kind: CommitFailed, Reason: reason}
}

func isNothingToCommit(result CommandResult) bool {
	text := strings.ToLower(result.Combined())
	for _, sig := range nothingToCommitSignatures {
		if strings.Contains(text, sig) {
			return true
		}
	}
	return false
}

func errorReason(err error) string {
	var gitErr *gissyerrors.GitCommandError
	if errors.As(err, &gitErr) {
		return gitErr.Reason()
	}
	return err.Error()
}

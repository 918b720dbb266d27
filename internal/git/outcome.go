package git

import (
	"fmt"
)

// CommitKind tags the result of Gateway.Commit.
type CommitKind int

const (
	// Committed means git created a commit
	Committed CommitKind = iota
	// NothingToCommit means there were no staged changes; not an error
	NothingToCommit
	// CommitFailed means git refused or failed to commit
	CommitFailed
)

func (k CommitKind) String() string {
	switch k {
	case Committed:
		return "committed"
	case NothingToCommit:
		return "nothing to commit"
	case CommitFailed:
		return "failed"
	default:
		return fmt.Sprintf("CommitKind(%d)", int(k))
	}
}

// CommitOutcome is the tagged result of a commit attempt. Reason carries the
// captured git output when Kind is CommitFailed.
type CommitOutcome struct {
	Kind   CommitKind
	Reason string
}

// Err returns nil for Committed and NothingToCommit, and an error carrying
// Reason for CommitFailed.
func (o CommitOutcome) Err() error {
	if o.Kind != CommitFailed {
		return nil
	}
	return fmt.Errorf("commit failed: %s", o.Reason)
}

// PushKind tags the result of Gateway.Push.
type PushKind int

const (
	// Pushed means the branch reached the remote
	Pushed PushKind = iota
	// PushFailed covers invalid branches, missing remotes and rejected pushes
	PushFailed
)

func (k PushKind) String() string {
	switch k {
	case Pushed:
		return "pushed"
	case PushFailed:
		return "failed"
	default:
		return fmt.Sprintf("PushKind(%d)", int(k))
	}
}

// PushOutcome is the tagged result of a push attempt.
type PushOutcome struct {
	Kind   PushKind
	Branch string
	Reason string
}

// Err returns nil when the push succeeded.
func (o PushOutcome) Err() error {
	if o.Kind == Pushed {
		return nil
	}
	return fmt.Errorf("push of %q failed: %s", o.Branch, o.Reason)
}

// UpstreamStatus reports how far HEAD is ahead of its upstream. When
// HasUpstream is false, Ahead is meaningless.
type UpstreamStatus struct {
	Ahead       int
	HasUpstream bool
}

// Package ai provides the chat-completion client used to summarize diffs
// into commit messages.
package ai

import (
	"context"
)

// Client generates a commit message from a unified diff.
//
// Implementations make exactly one attempt per call. Retrying, fallback and
// credential lookup are the caller's concern.
type Client interface {
	// GenerateCommitMessage returns the trimmed first candidate produced for
	// diff. An empty candidate is reported as ErrEmptyAIResponse.
	GenerateCommitMessage(ctx context.Context, diff string) (string, error)
}

// Factory builds a Client for one attempt using apiKey. The key is looked
// up by the caller on every attempt, so factories must not cache it.
type Factory func(ctx context.Context, apiKey string) (Client, error)

package actions

import (
	"context"

	"gissy.dev/gissy/internal/message"
	"gissy.dev/gissy/internal/runtime"
)

// MessageOptions contains options for the message command
type MessageOptions struct {
	// Unstaged summarizes unstaged changes to tracked files instead of the index
	Unstaged bool
}

// GenerateMessage prints the message a commit would use, without committing.
// The plain message goes to the console so it can be piped into git.
func GenerateMessage(ctx context.Context, rt *runtime.Context, opts MessageOptions) (message.GeneratedMessage, error) {
	if err := requireRepository(ctx, rt); err != nil {
		return message.GeneratedMessage{}, err
	}

	var (
		diff string
		err  error
	)
	if opts.Unstaged {
		diff, err = rt.Gateway.UnstagedDiff(ctx)
	} else {
		diff, err = rt.Gateway.StagedDiff(ctx)
	}
	if err != nil {
		return message.GeneratedMessage{}, err
	}

	msg := deriveMessage(ctx, rt, diff, "")
	rt.Splog.Debug("message source: %s", msg.Source)
	rt.Splog.Page(msg.String() + "\n")
	return msg, nil
}

package cli

import (
	"io"

	gissyerrors "gissy.dev/gissy/internal/errors"
	"gissy.dev/gissy/internal/tui"
)

// PrintError writes err and any hints attached to it to w.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	splog, logErr := tui.NewSplogWithOptions(tui.SplogOptions{Writer: w})
	if logErr != nil {
		splog = tui.NewSplog()
	}
	splog.Error("%v", err)
	for _, hint := range gissyerrors.Hints(err) {
		splog.Tip("%s", hint)
	}
}

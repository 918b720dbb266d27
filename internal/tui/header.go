package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// HeaderMode selects how PrintHeader renders the logo
type HeaderMode string

const (
	HeaderBanner  HeaderMode = "banner"
	HeaderCompact HeaderMode = "compact"
)

const tagline = "your personal git assistant"

var (
	logoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("13")).
			Padding(0, 3)
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

// RenderHeader returns the logo for mode followed by title, if any.
func RenderHeader(title string, mode HeaderMode) string {
	var out string
	if mode == HeaderCompact {
		out = taglineStyle.Render("gissy · " + tagline)
	} else {
		out = lipgloss.JoinVertical(lipgloss.Left,
			logoStyle.Render("g i s s y"),
			taglineStyle.Render("  "+tagline),
		)
	}
	if title != "" {
		out += "\n\n" + titleStyle.Render(title)
	}
	return out
}

// PrintHeader writes the header to w. Callers skip it when output is not a
// terminal.
func PrintHeader(w io.Writer, title string, mode HeaderMode) {
	_, _ = fmt.Fprintln(w, RenderHeader(title, mode))
	_, _ = fmt.Fprintln(w)
}

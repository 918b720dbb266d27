package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Bold renders text in bold
func Bold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorStatusCode colors a two-letter porcelain status code. Staged changes
// are green, worktree changes red, untracked files dim.
func ColorStatusCode(index, worktree byte) string {
	if index == '?' && worktree == '?' {
		return ColorDim("??")
	}

	indexStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	worktreeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	return indexStyle.Render(string(index)) + worktreeStyle.Render(string(worktree))
}

// ColorAdded renders an added-lines count ("+12")
func ColorAdded(text string) string { return ColorGreen(text) }

// ColorRemoved renders a removed-lines count ("-3")
func ColorRemoved(text string) string { return ColorRed(text) }

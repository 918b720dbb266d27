package tui

import (
	"gissy.dev/gissy/internal/tui/style"
)

// Forward style functions for convenience

// Bold renders text in bold
func Bold(text string) string { return style.Bold(text) }

// ColorRed colors text red
func ColorRed(text string) string { return style.ColorRed(text) }

// ColorGreen colors text green
func ColorGreen(text string) string { return style.ColorGreen(text) }

// ColorYellow colors text yellow
func ColorYellow(text string) string { return style.ColorYellow(text) }

// ColorCyan colors text cyan
func ColorCyan(text string) string { return style.ColorCyan(text) }

// ColorDim makes text dim/gray
func ColorDim(text string) string { return style.ColorDim(text) }

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	return style.ColorBranchName(branchName, isCurrent)
}

// ColorStatusCode colors a porcelain status code
func ColorStatusCode(index, worktree byte) string { return style.ColorStatusCode(index, worktree) }

// ColorAdded colors added-line counts
func ColorAdded(text string) string { return style.ColorAdded(text) }

// ColorRemoved colors removed-line counts
func ColorRemoved(text string) string { return style.ColorRemoved(text) }

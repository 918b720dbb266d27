// Package tui provides the terminal user interface for gissy.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss and termenv)
//   - The commit message review prompt (using survey) and confirmations
//   - The spinner shown while a message is generated (using bubbletea)
package tui

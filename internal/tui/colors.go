package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoColorEnv disables styling when set to any value (https://no-color.org)
const NoColorEnv = "NO_COLOR"

// ConfigureColor disables all lipgloss styling when disabled is true or
// NO_COLOR is set. It is called once by the root command before any output.
func ConfigureColor(disabled bool) {
	if disabled || os.Getenv(NoColorEnv) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ColorEnabled reports whether styled output will contain escape sequences.
func ColorEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

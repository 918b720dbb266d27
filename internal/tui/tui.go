package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// spinnerModel is the bubbletea model shown while a blocking call runs
type spinnerModel struct {
	spinner  spinner.Model
	title    string
	done     bool
	quitting bool
}

// spinnerDoneMsg signals the wrapped work has finished
type spinnerDoneMsg struct{}

func newSpinnerModel(title string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m spinnerModel) View() string {
	if m.done || m.quitting {
		return ""
	}
	return m.spinner.View() + " " + lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(m.title)
}

// RunWithSpinner runs fn while showing a spinner with title. The spinner is
// only drawn on an interactive terminal; otherwise fn simply runs. Console
// output from splog is held while the spinner is drawn and written after it.
func RunWithSpinner[T any](splog *Splog, title string, fn func() T) T {
	if !IsInteractive() {
		return fn()
	}
	if splog != nil {
		splog.Hold()
		defer func() { _ = splog.Release() }()
	}

	p := tea.NewProgram(newSpinnerModel(title), tea.WithOutput(os.Stderr), tea.WithInput(nil))
	result := make(chan T, 1)
	go func() {
		r := fn()
		result <- r
		p.Send(spinnerDoneMsg{})
	}()

	// a failed or interrupted UI never abandons the work itself
	_, _ = p.Run()
	return <-result
}

// IsTTY returns true if we can use a TTY for interactive TUI
func IsTTY() bool {
	// First check if stdin/stdout are terminals
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	// Also try to open /dev/tty to verify it's actually available
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// IsStdoutTTY reports whether stdout is a terminal, used to decide whether
// decorative output such as the header is printed.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

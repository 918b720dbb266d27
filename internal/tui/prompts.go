package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

// NonInteractiveEnv disables every prompt when set
const NonInteractiveEnv = "GISSY_NON_INTERACTIVE"

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GISSY_NON_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (%s is set)", NonInteractiveEnv)

// checkInteractiveAllowed returns an error if interactive mode is disabled
func checkInteractiveAllowed() error {
	if os.Getenv(NonInteractiveEnv) != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// IsInteractive reports whether prompts can be shown: a terminal is attached
// and GISSY_NON_INTERACTIVE is not set.
func IsInteractive() bool {
	return checkInteractiveAllowed() == nil && IsTTY()
}

// confirmModel is a simple yes/no confirmation prompt model
type confirmModel struct {
	prompt string
	choice bool
	done   bool
	err    error
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = gissyerrors.ErrAborted
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			switch strings.ToLower(string(msg.Runes)) {
			case "y", "yes":
				m.choice = true
				m.done = true
				return m, tea.Quit
			case "n", "no":
				m.choice = false
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	styleObj := lipgloss.NewStyle().Margin(1, 0)
	yesNo := "[y/N]"
	if m.choice {
		yesNo = "[Y/n]"
	}
	return styleObj.Render(fmt.Sprintf("%s %s\n\n(Press y/yes or n/no, Enter to confirm, Ctrl+C to cancel)", m.prompt, yesNo))
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(prompt string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	m := confirmModel{
		prompt: prompt,
		choice: defaultValue,
	}

	p := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithOutput(os.Stdout))
	model, err := p.Run()
	if err != nil {
		return false, err
	}

	if finalModel, ok := model.(confirmModel); ok {
		if finalModel.err != nil {
			return false, finalModel.err
		}
		return finalModel.choice, nil
	}

	return false, fmt.Errorf("unexpected model type")
}

// ReviewAction is the user's decision about a proposed commit message
type ReviewAction string

const (
	ReviewCommit ReviewAction = "Commit"
	ReviewEdit   ReviewAction = "Edit message"
	ReviewCancel ReviewAction = "Cancel"
)

// PromptReview asks whether to commit, edit or cancel.
func PromptReview() (ReviewAction, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}

	var answer string
	prompt := &survey.Select{
		Message: "Use this commit message?",
		Options: []string{string(ReviewCommit), string(ReviewEdit), string(ReviewCancel)},
		Default: string(ReviewCommit),
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		if err == terminal.InterruptErr {
			return ReviewCancel, nil
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return ReviewAction(answer), nil
}

// ReviewMessage shows msg and loops until the user commits or cancels,
// opening the editor on request. editor is the repository's core.editor and
// may be empty. Cancelling returns ErrAborted.
func ReviewMessage(splog *Splog, msg string, format func(string) string, editor string) (string, error) {
	for {
		splog.Newline()
		splog.Page(format(msg))
		splog.Newline()

		action, err := PromptReview()
		if err != nil {
			return "", err
		}

		switch action {
		case ReviewCommit:
			return msg, nil
		case ReviewEdit:
			edited, err := OpenEditor(msg+"\n\n# Lines starting with '#' are ignored.\n", "gissy-commit-*.txt", editor)
			if err != nil {
				return "", err
			}
			if edited == "" {
				splog.Warn("Empty message, keeping the previous one.")
				continue
			}
			msg = edited
		default:
			return "", gissyerrors.ErrAborted
		}
	}
}

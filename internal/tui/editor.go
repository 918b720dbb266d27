package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// EditorCommand resolves the user's editor as an argument vector. It checks
// GIT_EDITOR, EDITOR, then configured (git's core.editor), and defaults to vi.
func EditorCommand(configured string) ([]string, error) {
	editor := os.Getenv("GIT_EDITOR")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = strings.TrimSpace(configured)
	}
	if editor == "" {
		editor = "vi"
	}

	argv, err := shellquote.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("invalid editor command %q: %w", editor, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("invalid editor command %q", editor)
	}
	return argv, nil
}

// OpenEditor opens the user's preferred editor with the given initial content.
// configured is the repository's core.editor, if any. It returns the edited
// content or an error.
func OpenEditor(initialContent, filenamePattern, configured string) (string, error) {
	tmpFile, err := os.CreateTemp("", filenamePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	if _, err := tmpFile.WriteString(initialContent); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	argv, err := EditorCommand(configured)
	if err != nil {
		return "", err
	}

	// the file path is a separate argument, never part of a shell string
	cmd := exec.Command(argv[0], append(argv[1:], tmpFile.Name())...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}

	return stripComments(string(content)), nil
}

// stripComments drops git-style "#" comment lines from edited text.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

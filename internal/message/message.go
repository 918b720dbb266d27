// Package message derives commit messages from diffs.
//
// Generation never fails: the AI path degrades to a deterministic message
// built from diff statistics whenever a credential is missing, the service
// errors, or the response is empty.
package message

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gissy.dev/gissy/internal/git"
	"gissy.dev/gissy/internal/tui/style"
)

const (
	// DefaultMessage is used for blank diffs and diffs with no counted lines
	DefaultMessage = "Update files"

	// MaxLength is the longest message Validate accepts, in characters
	MaxLength = 200
)

// Source records which path produced a message.
type Source int

const (
	// SourceDefault is the fixed message for a blank diff
	SourceDefault Source = iota
	// SourceFallback is the statistics-based message
	SourceFallback
	// SourceAI is a model-generated message
	SourceAI
	// SourceUser is a message supplied on the command line or edited by hand
	SourceUser
)

func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceFallback:
		return "fallback"
	case SourceAI:
		return "ai"
	case SourceUser:
		return "user"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// GeneratedMessage is a commit message split into subject and body.
type GeneratedMessage struct {
	Subject string
	Body    string
	Source  Source
}

// String renders the message as git expects it: subject, blank line, body.
func (m GeneratedMessage) String() string {
	if m.Body == "" {
		return m.Subject
	}
	return m.Subject + "\n\n" + m.Body
}

// Parse splits text into subject (first line) and body (the remaining
// lines, trimmed). The result is attributed to SourceUser.
func Parse(text string) GeneratedMessage {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	subject, body, _ := strings.Cut(text, "\n")
	return GeneratedMessage{
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
		Source:  SourceUser,
	}
}

// Fallback builds the deterministic message for diff. Zero-count clauses
// are omitted.
func Fallback(diff string) GeneratedMessage {
	stats := git.ComputeStats(diff)
	if stats.IsEmpty() {
		return GeneratedMessage{Subject: DefaultMessage, Source: SourceFallback}
	}

	var parts []string
	if stats.Added > 0 {
		parts = append(parts, fmt.Sprintf("%d lines added", stats.Added))
	}
	if stats.Removed > 0 {
		parts = append(parts, fmt.Sprintf("%d lines removed", stats.Removed))
	}
	return GeneratedMessage{
		Subject: DefaultMessage + " — " + strings.Join(parts, ", "),
		Source:  SourceFallback,
	}
}

// Validate reports whether msg is non-blank and at most MaxLength characters
// once trimmed.
func Validate(msg string) bool {
	trimmed := strings.TrimSpace(msg)
	n := utf8.RuneCountInString(trimmed)
	return n > 0 && n <= MaxLength
}

// Format renders msg for the terminal: a bold subject followed by the body
// dimmed and indented. Presentation only.
func Format(msg string) string {
	lines := strings.Split(strings.ReplaceAll(msg, "\r\n", "\n"), "\n")
	formatted := style.Bold(lines[0])

	body := strings.TrimSpace(strings.Join(lines[1:], "\n"))
	if body == "" {
		return formatted
	}

	indented := make([]string, 0)
	for _, line := range strings.Split(body, "\n") {
		if line == "" {
			indented = append(indented, "")
			continue
		}
		indented = append(indented, "  "+line)
	}
	return formatted + "\n" + style.ColorDim(strings.Join(indented, "\n"))
}

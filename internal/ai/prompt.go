package ai

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// maxDiffLength caps the diff sent to the model (in bytes).
const maxDiffLength = 10000

// SystemPrompt is the fixed instruction sent with every request.
const SystemPrompt = "You are a helpful assistant that generates concise, conventional git commit messages based on code diffs."

// BuildCommitMessagePrompt creates the user message for commit message
// generation.
func BuildCommitMessagePrompt(diff string) string {
	if len(diff) > maxDiffLength {
		diff = truncateDiff(diff, maxDiffLength) + "\n... (diff truncated)"
	}

	return fmt.Sprintf(`Based on the following git diff, generate a concise, conventional commit message.
The message should:
- Follow conventional commit format (type: description)
- Be under 50 characters for the subject line
- Clearly describe what changed
- Use present tense

Git diff:
%s

Generate only the commit message, nothing else.`, diff)
}

// truncateDiff cuts diff to at most limit bytes without splitting a rune.
func truncateDiff(diff string, limit int) string {
	if len(diff) <= limit {
		return diff
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(diff[cut]) {
		cut--
	}
	return diff[:cut]
}

// CleanResponse strips the wrapping models sometimes add around a commit
// message: surrounding whitespace, markdown code fences and quotes.
func CleanResponse(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		if nl := strings.Index(text, "\n"); nl > 0 {
			text = text[nl+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	text = strings.TrimSpace(text)

	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' || first == '\'' || first == '`') && first == last {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}
	return text
}

package ai

import (
	"strings"
	"unicode"

	"github.com/thomas-vilte/diffscribe/internal/regex"
)

// CommitMessage is a commit message split into its first line and the rest.
type CommitMessage struct {
	Summary     string
	Description string
}

// String renders the message the way git expects it: the summary, then a
// blank line and the description when there is one.
func (m CommitMessage) String() string {
	if m.Description == "" {
		return m.Summary
	}
	return m.Summary + "\n\n" + m.Description
}

// Conventional reports whether the summary carries a conventional commit
// prefix. A leading emoji is ignored.
func (m CommitMessage) Conventional() bool {
	summary := strings.TrimLeftFunc(m.Summary, func(r rune) bool {
		return r > unicode.MaxASCII || unicode.IsSpace(r)
	})
	return regex.ConventionalCommit.MatchString(summary)
}

// ParseCommitMessage splits a raw completion into summary and description.
// With brief set, everything from the first line break on is discarded
// before splitting.
func ParseCommitMessage(raw string, brief bool) CommitMessage {
	if brief {
		if i := strings.IndexByte(raw, '\n'); i >= 0 {
			raw = raw[:i]
		}
	}

	summary, description, found := strings.Cut(raw, "\n")
	if !found {
		return CommitMessage{Summary: strings.TrimSpace(raw)}
	}

	return CommitMessage{
		Summary:     strings.TrimSpace(summary),
		Description: strings.TrimSpace(description),
	}
}

// FormatCommitMessage parses raw and renders it as a commit message.
func FormatCommitMessage(raw string, brief bool) string {
	return ParseCommitMessage(raw, brief).String()
}

// FormatBranchName turns a raw completion into a branch name by replacing
// every space and line break with a dash. Nothing is trimmed or collapsed.
func FormatBranchName(raw string) string {
	return strings.NewReplacer(" ", "-", "\n", "-").Replace(raw)
}

package ai

import (
	"unicode/utf8"

	"github.com/thomas-vilte/diffscribe/internal/regex"
)

// DefaultMaxDiffChars is the number of diff characters kept in a prompt.
const DefaultMaxDiffChars = 20000

// Template placeholders.
const (
	PlaceholderDiff       = "diff"
	PlaceholderBriefStyle = "brief_style"
	PlaceholderEmojiStyle = "emoji_style"
)

// Style directives substituted into the commit template.
const (
	BriefStyleDirective   = "The commit message must be only one sentence and as short as possible."
	EmojiStyleDirective   = "Make use of GitMoji in the title prefix."
	NoEmojiStyleDirective = "Don't use any emoji."
)

const commitPromptTemplate = `
Please could you write a commit message for my changes.
Explain what were the changes and why the changes were done.
Focus the most important changes.
Use the present tense.
Always use semantic commit prefixes.
Hard wrap lines at 72 characters.
%{brief_style}
%{emoji_style}

Here is my diff:
%{diff}
`

const branchPromptTemplate = `
Please could you write a branch name for my changes.
A branch name represent a brief description of the changes in the diff (branch).
Branch names should contain no whitespace and instead use dashes to separate words.
Branch names should contain a maximum of 5 words.

Here is my diff:
%{diff}
`

// StyleOptions holds the independent style switches of a commit message.
type StyleOptions struct {
	Brief bool
	Emoji bool
}

// RenderPrompt replaces every %{name} token of tmpl with bindings[name].
// Tokens without a binding render as the empty string. Bound values are
// inserted as-is and never scanned for further tokens.
func RenderPrompt(tmpl string, bindings map[string]string) string {
	return regex.Placeholder.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := regex.Placeholder.FindStringSubmatch(token)[1]
		return bindings[name]
	})
}

// PromptBuilder composes the commit and branch prompts.
type PromptBuilder struct {
	maxDiffChars int
}

// NewPromptBuilder returns a builder that keeps at most maxDiffChars
// characters of a diff. A non-positive value selects DefaultMaxDiffChars.
func NewPromptBuilder(maxDiffChars int) *PromptBuilder {
	if maxDiffChars <= 0 {
		maxDiffChars = DefaultMaxDiffChars
	}
	return &PromptBuilder{maxDiffChars: maxDiffChars}
}

// MaxDiffChars returns the truncation bound of the builder.
func (b *PromptBuilder) MaxDiffChars() int {
	return b.maxDiffChars
}

// Truncates reports whether diff is longer than the builder keeps.
func (b *PromptBuilder) Truncates(diff string) bool {
	return utf8.RuneCountInString(diff) > b.maxDiffChars
}

// BuildCommitPrompt renders the commit message prompt for diff.
func (b *PromptBuilder) BuildCommitPrompt(diff string, opts StyleOptions) string {
	bindings := map[string]string{
		PlaceholderDiff:       truncateChars(diff, b.maxDiffChars),
		PlaceholderEmojiStyle: NoEmojiStyleDirective,
	}
	if opts.Brief {
		bindings[PlaceholderBriefStyle] = BriefStyleDirective
	}
	if opts.Emoji {
		bindings[PlaceholderEmojiStyle] = EmojiStyleDirective
	}

	return RenderPrompt(commitPromptTemplate, bindings)
}

// BuildBranchPrompt renders the branch name prompt for diff.
func (b *PromptBuilder) BuildBranchPrompt(diff string) string {
	return RenderPrompt(branchPromptTemplate, map[string]string{
		PlaceholderDiff: truncateChars(diff, b.maxDiffChars),
	})
}

var defaultPromptBuilder = NewPromptBuilder(DefaultMaxDiffChars)

// BuildCommitPrompt renders the commit prompt with the default diff bound.
func BuildCommitPrompt(diff string, brief, emoji bool) string {
	return defaultPromptBuilder.BuildCommitPrompt(diff, StyleOptions{Brief: brief, Emoji: emoji})
}

// BuildBranchPrompt renders the branch prompt with the default diff bound.
func BuildBranchPrompt(diff string) string {
	return defaultPromptBuilder.BuildBranchPrompt(diff)
}

// truncateChars keeps the first n characters (code points) of s.
func truncateChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

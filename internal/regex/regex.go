package regex

import "regexp"

var (
	// Prompt template patterns
	Placeholder = regexp.MustCompile(`%\{([A-Za-z0-9_]+)\}`)

	// Commit patterns
	ConventionalCommit = regexp.MustCompile(`^(feat|fix|docs|style|refactor|perf|test|build|ci|chore|revert)(\(([^)]+)\))?(!)?:\s*(.+)`)

	// Git ref patterns
	InvalidRefChars = regexp.MustCompile(`[\x00-\x1f\x7f~^:?*\[\\]|\.\.|@\{`)
)

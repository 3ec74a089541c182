package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCommitMessage(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		brief bool
		want  string
	}{
		{
			name: "single line is the summary",
			raw:  "Fix bug",
			want: "Fix bug",
		},
		{
			name: "summary and description",
			raw:  "Fix bug\n\nThis resolves issue #3.",
			want: "Fix bug\n\nThis resolves issue #3.",
		},
		{
			name:  "brief drops everything after the first line break",
			raw:   "Fix bug\nExtra line that should be dropped",
			brief: true,
			want:  "Fix bug",
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  feat: add login  \n\n   Adds the login form.\n\n",
			want: "feat: add login\n\nAdds the login form.",
		},
		{
			name: "description keeps inner line breaks",
			raw:  "feat: parser\n- handle tabs\n- handle spaces",
			want: "feat: parser\n\n- handle tabs\n- handle spaces",
		},
		{
			name: "blank description renders summary only",
			raw:  "chore: bump deps\n   \n",
			want: "chore: bump deps",
		},
		{
			name: "empty completion",
			raw:  "",
			want: "",
		},
		{
			name:  "brief with leading line break keeps empty summary",
			raw:   "\nfeat: something",
			brief: true,
			want:  "",
		},
		{
			name: "windows line endings",
			raw:  "fix: crlf\r\n\r\nBody text\r\n",
			want: "fix: crlf\n\nBody text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCommitMessage(tt.raw, tt.brief))
		})
	}
}

func TestParseCommitMessage(t *testing.T) {
	msg := ParseCommitMessage("  feat: add cache \n\n  Speeds up lookups.\nSecond line.  ", false)

	assert.Equal(t, "feat: add cache", msg.Summary)
	assert.Equal(t, "Speeds up lookups.\nSecond line.", msg.Description)
	assert.Equal(t, strings.TrimSpace(msg.Summary), msg.Summary)
	assert.Equal(t, strings.TrimSpace(msg.Description), msg.Description)
}

func TestCommitMessage_String(t *testing.T) {
	assert.Equal(t, "feat: x", CommitMessage{Summary: "feat: x"}.String())
	assert.Equal(t, "feat: x\n\nbody", CommitMessage{Summary: "feat: x", Description: "body"}.String())
}

func TestFormatBranchName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "spaces", raw: "add login feature", want: "add-login-feature"},
		{name: "line break", raw: "fix bug\nin parser", want: "fix-bug-in-parser"},
		{name: "already dashed", raw: "feat-add-cache", want: "feat-add-cache"},
		{name: "consecutive whitespace is not collapsed", raw: "a  b\n\nc", want: "a--b--c"},
		{name: "no trimming", raw: " lead trail\n", want: "-lead-trail-"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBranchName(tt.raw)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FormatBranchName(got), "formatting must be idempotent")
		})
	}
}

func TestCommitMessage_Conventional(t *testing.T) {
	tests := []struct {
		summary string
		want    bool
	}{
		{summary: "feat: add login form", want: true},
		{summary: "fix(parser)!: handle empty input", want: true},
		{summary: "✨ feat: add login form", want: true},
		{summary: "Add login form", want: false},
		{summary: "feature: add login form", want: false},
		{summary: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			assert.Equal(t, tt.want, CommitMessage{Summary: tt.summary}.Conventional())
		})
	}
}

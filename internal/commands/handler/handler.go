package handler

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	domainErrors "github.com/thomas-vilte/diffscribe/internal/errors"
	"github.com/thomas-vilte/diffscribe/internal/logger"
)

// Summarizer is what the commit and branch commands need from the service layer.
type Summarizer interface {
	Commit(ctx context.Context, diff string, opts ai.StyleOptions) (ai.CommitMessage, error)
	Branch(ctx context.Context, diff string) (string, error)
}

// SummarizerProvider creates the summarizer for the configured provider.
// Commands call it lazily so that `config` works without an API key.
type SummarizerProvider func(ctx context.Context, cfg *config.Config) (Summarizer, error)

// GitService is the subset of the git adapter the commands use.
type GitService interface {
	GetStagedDiff(ctx context.Context) (string, error)
	GetDiff(ctx context.Context) (string, error)
	CreateCommit(ctx context.Context, message string) error
	CreateBranch(ctx context.Context, name string) error
}

// DiffLoader reads the diff a command works on, either from a file, from
// stdin or from the git working tree.
type DiffLoader struct {
	git   GitService
	stdin io.Reader
}

func NewDiffLoader(git GitService, stdin io.Reader) *DiffLoader {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &DiffLoader{
		git:   git,
		stdin: stdin,
	}
}

// Load returns the diff at path ("-" is stdin). With an empty path it asks
// git for the staged changes, or for staged and unstaged ones when all is set.
// A file may hold an empty diff; git having nothing to show is ErrNoChanges.
func (l *DiffLoader) Load(ctx context.Context, path string, all bool) (string, error) {
	log := logger.FromContext(ctx)

	if path != "" {
		var (
			data []byte
			err  error
		)
		if path == "-" {
			data, err = io.ReadAll(l.stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return "", domainErrors.ErrReadDiffFile.WithError(err).WithContext("path", path)
		}
		log.Debug("diff loaded from file",
			"path", path,
			"bytes", len(data))
		return string(data), nil
	}

	var (
		diff string
		err  error
	)
	if all {
		diff, err = l.git.GetDiff(ctx)
	} else {
		diff, err = l.git.GetStagedDiff(ctx)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(diff) == "" {
		if all {
			return "", domainErrors.ErrNoChanges.WithSuggestion("Modify some files first, then run the command again")
		}
		return "", domainErrors.ErrNoChanges
	}

	log.Debug("diff loaded from git",
		"include_unstaged", all,
		"bytes", len(diff))
	return diff, nil
}

package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/diffscribe/internal/errors"
	"github.com/thomas-vilte/diffscribe/internal/logger"
	"github.com/thomas-vilte/diffscribe/internal/regex"
)

// GitService runs git commands in a working tree.
type GitService struct {
	dir string
}

// NewGitService returns a service that works in the current directory.
func NewGitService() *GitService {
	return &GitService{}
}

// NewGitServiceInDir returns a service that works in dir.
func NewGitServiceInDir(dir string) *GitService {
	return &GitService{dir: dir}
}

func (s *GitService) run(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = s.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug(ctx, "running git command", "args", strings.Join(args, " "))
	err := cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

// HasStagedChanges checks if there are changes in the staging area
func (s *GitService) HasStagedChanges(ctx context.Context) (bool, error) {
	_, stderr, err := s.run(ctx, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}

	// exit status 1 means there are staged changes
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, errors.ErrGetDiff.WithError(err).
		WithContext("diff_type", "staged").
		WithContext("stderr", stderr)
}

// GetStagedDiff returns the diff of the staging area.
func (s *GitService) GetStagedDiff(ctx context.Context) (string, error) {
	out, stderr, err := s.run(ctx, "diff", "--cached")
	if err != nil {
		return "", errors.ErrGetDiff.WithError(err).
			WithContext("diff_type", "staged").
			WithContext("stderr", stderr)
	}
	return out, nil
}

// GetDiff returns the staged diff followed by the unstaged one.
func (s *GitService) GetDiff(ctx context.Context) (string, error) {
	staged, err := s.GetStagedDiff(ctx)
	if err != nil {
		return "", err
	}

	unstaged, stderr, err := s.run(ctx, "diff")
	if err != nil {
		return "", errors.ErrGetDiff.WithError(err).
			WithContext("diff_type", "unstaged").
			WithContext("stderr", stderr)
	}

	return staged + unstaged, nil
}

// CreateCommit commits the staged changes with message.
func (s *GitService) CreateCommit(ctx context.Context, message string) error {
	staged, err := s.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		return errors.ErrNoChanges
	}

	if _, stderr, err := s.run(ctx, "commit", "-m", message); err != nil {
		return errors.ErrCreateCommit.WithError(err).WithContext("stderr", stderr)
	}
	return nil
}

// CreateBranch creates name and switches to it.
func (s *GitService) CreateBranch(ctx context.Context, name string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	if _, _, err := s.run(ctx, "check-ref-format", "--branch", name); err != nil {
		return errors.ErrInvalidBranchName.WithError(err).WithContext("branch", fmt.Sprintf("%q", name))
	}

	if _, stderr, err := s.run(ctx, "checkout", "-b", name); err != nil {
		return errors.ErrCreateBranch.WithError(err).
			WithContext("branch", name).
			WithContext("stderr", stderr)
	}
	return nil
}

// GetCurrentBranch returns the name of the checked out branch.
func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	out, stderr, err := s.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", errors.ErrGetBranch.WithError(err).WithContext("stderr", stderr)
	}

	branchName := strings.TrimSpace(out)
	if branchName == "" {
		return "", errors.ErrNoBranch
	}

	return branchName, nil
}

// ValidateBranchName rejects names git would refuse as a branch ref.
// CreateBranch also asks git check-ref-format before creating the branch.
func ValidateBranchName(name string) error {
	invalid := name == "" ||
		name == "@" ||
		strings.HasPrefix(name, "-") ||
		strings.HasSuffix(name, ".") ||
		strings.ContainsAny(name, " \t\n") ||
		regex.InvalidRefChars.MatchString(name)

	for _, component := range strings.Split(name, "/") {
		if invalid {
			break
		}
		invalid = component == "" ||
			strings.HasPrefix(component, ".") ||
			strings.HasSuffix(component, ".lock")
	}

	if invalid {
		return errors.ErrInvalidBranchName.WithContext("branch", fmt.Sprintf("%q", name))
	}
	return nil
}

package branch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/diffscribe/internal/commands/handler"
	"github.com/thomas-vilte/diffscribe/internal/config"
	domainErrors "github.com/thomas-vilte/diffscribe/internal/errors"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/urfave/cli/v3"
)

func setupBranchTest(t *testing.T, stdin string) (*handler.MockGitService, *handler.MockSummarizer, *bytes.Buffer, *cli.Command) {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	git := new(handler.MockGitService)
	summarizer := new(handler.MockSummarizer)
	out := &bytes.Buffer{}

	provider := func(context.Context, *config.Config) (handler.Summarizer, error) {
		return summarizer, nil
	}
	cfg := &config.Config{Language: "en", AIProvider: config.AIOllama, MaxDiffChars: 20000}
	cmd := NewBranchCommandFactory(provider, handler.NewDiffLoader(git, strings.NewReader(stdin)), git).
		CreateCommand(translations, cfg)

	app := &cli.Command{
		Name:      "diffscribe",
		Writer:    out,
		ErrWriter: &bytes.Buffer{},
		Commands:  []*cli.Command{cmd},
	}
	return git, summarizer, out, app
}

func TestBranchCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("prints the branch name", func(t *testing.T) {
		git, summarizer, out, app := setupBranchTest(t, "")
		git.On("GetStagedDiff", mock.Anything).Return("the diff", nil)
		summarizer.On("Branch", mock.Anything, "the diff").Return("add-login-form", nil)

		err := app.Run(ctx, []string{"diffscribe", "branch"})

		require.NoError(t, err)
		assert.Equal(t, "add-login-form\n", out.String())
		git.AssertNotCalled(t, "CreateBranch", mock.Anything, mock.Anything)
	})

	t.Run("reads the diff from stdin", func(t *testing.T) {
		_, summarizer, out, app := setupBranchTest(t, "stdin diff")
		summarizer.On("Branch", mock.Anything, "stdin diff").Return("fix-typo", nil)

		err := app.Run(ctx, []string{"diffscribe", "b", "-f", "-"})

		require.NoError(t, err)
		assert.Equal(t, "fix-typo\n", out.String())
	})

	t.Run("create switches to the branch", func(t *testing.T) {
		git, summarizer, _, app := setupBranchTest(t, "")
		git.On("GetDiff", mock.Anything).Return("all changes", nil)
		summarizer.On("Branch", mock.Anything, "all changes").Return("add-login-form", nil)
		git.On("CreateBranch", mock.Anything, "add-login-form").Return(nil)

		err := app.Run(ctx, []string{"diffscribe", "branch", "--all", "--create"})

		require.NoError(t, err)
		git.AssertExpectations(t)
	})

	t.Run("invalid branch name is reported", func(t *testing.T) {
		git, summarizer, _, app := setupBranchTest(t, "")
		git.On("GetStagedDiff", mock.Anything).Return("the diff", nil)
		summarizer.On("Branch", mock.Anything, "the diff").Return("bad..name", nil)
		git.On("CreateBranch", mock.Anything, "bad..name").Return(domainErrors.ErrInvalidBranchName)

		err := app.Run(ctx, []string{"diffscribe", "branch", "--create"})

		assert.ErrorIs(t, err, domainErrors.ErrInvalidBranchName)
	})

	t.Run("summarizer errors are returned", func(t *testing.T) {
		git, summarizer, out, app := setupBranchTest(t, "")
		evalErr := errors.New("boom")
		git.On("GetStagedDiff", mock.Anything).Return("the diff", nil)
		summarizer.On("Branch", mock.Anything, "the diff").Return("", evalErr)

		err := app.Run(ctx, []string{"diffscribe", "branch"})

		assert.ErrorIs(t, err, evalErr)
		assert.Empty(t, out.String())
	})
}

package handler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/diffscribe/internal/errors"
)

func TestDiffLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("reads a diff file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "changes.diff")
		require.NoError(t, os.WriteFile(path, []byte("diff --git a/x b/x\n"), 0644))
		git := new(MockGitService)

		diff, err := NewDiffLoader(git, nil).Load(ctx, path, false)

		require.NoError(t, err)
		assert.Equal(t, "diff --git a/x b/x\n", diff)
		git.AssertNotCalled(t, "GetStagedDiff", mock.Anything)
	})

	t.Run("an empty diff file is valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.diff")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		diff, err := NewDiffLoader(new(MockGitService), nil).Load(ctx, path, false)

		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		diff, err := NewDiffLoader(new(MockGitService), strings.NewReader("from stdin")).Load(ctx, "-", false)

		require.NoError(t, err)
		assert.Equal(t, "from stdin", diff)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewDiffLoader(new(MockGitService), nil).Load(ctx, filepath.Join(t.TempDir(), "nope.diff"), false)

		assert.ErrorIs(t, err, domainErrors.ErrReadDiffFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("staged changes from git", func(t *testing.T) {
		git := new(MockGitService)
		git.On("GetStagedDiff", ctx).Return("staged diff", nil)

		diff, err := NewDiffLoader(git, nil).Load(ctx, "", false)

		require.NoError(t, err)
		assert.Equal(t, "staged diff", diff)
		git.AssertExpectations(t)
	})

	t.Run("all changes from git", func(t *testing.T) {
		git := new(MockGitService)
		git.On("GetDiff", ctx).Return("full diff", nil)

		diff, err := NewDiffLoader(git, nil).Load(ctx, "", true)

		require.NoError(t, err)
		assert.Equal(t, "full diff", diff)
		git.AssertExpectations(t)
	})

	t.Run("nothing staged", func(t *testing.T) {
		git := new(MockGitService)
		git.On("GetStagedDiff", ctx).Return("  \n", nil)

		_, err := NewDiffLoader(git, nil).Load(ctx, "", false)

		assert.ErrorIs(t, err, domainErrors.ErrNoChanges)
	})

	t.Run("git failure", func(t *testing.T) {
		gitErr := domainErrors.ErrGetDiff.WithError(errors.New("not a git repository"))
		git := new(MockGitService)
		git.On("GetStagedDiff", ctx).Return("", gitErr)

		_, err := NewDiffLoader(git, nil).Load(ctx, "", false)

		assert.Same(t, gitErr, err)
	})
}

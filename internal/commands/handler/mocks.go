package handler

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/diffscribe/internal/ai"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockSummarizer struct {
		mock.Mock
	}
)

func (m *MockGitService) GetStagedDiff(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetDiff(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) CreateCommit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockGitService) CreateBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockSummarizer) Commit(ctx context.Context, diff string, opts ai.StyleOptions) (ai.CommitMessage, error) {
	args := m.Called(ctx, diff, opts)
	return args.Get(0).(ai.CommitMessage), args.Error(1)
}

func (m *MockSummarizer) Branch(ctx context.Context, diff string) (string, error) {
	args := m.Called(ctx, diff)
	return args.String(0), args.Error(1)
}

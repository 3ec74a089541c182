package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/logger"
)

// Summarizer turns diffs into commit messages and branch names with a
// single evaluation per call.
type Summarizer struct {
	evaluator ai.Evaluator
	builder   *ai.PromptBuilder
}

// NewSummarizer creates a summarizer. A nil builder uses the default diff bound.
func NewSummarizer(evaluator ai.Evaluator, builder *ai.PromptBuilder) *Summarizer {
	if builder == nil {
		builder = ai.NewPromptBuilder(ai.DefaultMaxDiffChars)
	}
	return &Summarizer{
		evaluator: evaluator,
		builder:   builder,
	}
}

// Commit generates a commit message for diff. Evaluator errors are returned
// unchanged.
func (s *Summarizer) Commit(ctx context.Context, diff string, opts ai.StyleOptions) (ai.CommitMessage, error) {
	prompt := s.builder.BuildCommitPrompt(diff, opts)

	raw, err := s.evaluate(ctx, "commit", diff, prompt)
	if err != nil {
		return ai.CommitMessage{}, err
	}

	msg := ai.ParseCommitMessage(raw, opts.Brief)
	logger.Info(ctx, "commit message generated",
		"summary_chars", len([]rune(msg.Summary)),
		"has_description", msg.Description != "",
		"conventional", msg.Conventional())

	return msg, nil
}

// Branch generates a branch name for diff. Evaluator errors are returned
// unchanged.
func (s *Summarizer) Branch(ctx context.Context, diff string) (string, error) {
	prompt := s.builder.BuildBranchPrompt(diff)

	raw, err := s.evaluate(ctx, "branch", diff, prompt)
	if err != nil {
		return "", err
	}

	return ai.FormatBranchName(raw), nil
}

func (s *Summarizer) evaluate(ctx context.Context, intent, diff, prompt string) (string, error) {
	ctx = logger.With(ctx,
		"request_id", uuid.NewString(),
		"intent", intent)
	log := logger.FromContext(ctx)

	log.Debug("prompt built",
		"diff_chars", len([]rune(diff)),
		"truncated", s.builder.Truncates(diff),
		"prompt_chars", len(prompt),
		"prompt_tokens", ai.EstimateTokens(prompt))

	start := time.Now()
	raw, err := s.evaluator.Evaluate(ctx, prompt)
	if err != nil {
		log.Debug("evaluation failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return "", err
	}

	log.Debug("evaluation completed",
		"response_chars", len(raw),
		"duration_ms", time.Since(start).Milliseconds())

	return raw, nil
}

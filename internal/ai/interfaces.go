package ai

import (
	"context"

	"github.com/thomas-vilte/diffscribe/internal/config"
)

// Evaluator is the completion capability: it sends a prompt to a language
// model and returns the raw text of the reply.
type Evaluator interface {
	// Evaluate returns the completion for prompt. Failures from the
	// underlying service are returned as they are.
	Evaluate(ctx context.Context, prompt string) (string, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, prompt string) (string, error)

func (f EvaluatorFunc) Evaluate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ProviderFactory builds evaluators for one AI provider.
type ProviderFactory interface {
	// CreateEvaluator creates an evaluator from the application configuration.
	CreateEvaluator(ctx context.Context, cfg *config.Config) (Evaluator, error)

	// ValidateConfig checks that cfg has what this provider needs.
	ValidateConfig(cfg *config.Config) error

	// Name returns the provider name used in the configuration.
	Name() string
}

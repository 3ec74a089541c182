package anthropic

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/logger"
)

var _ ai.Evaluator = (*Evaluator)(nil)

const defaultMaxTokens = 1024

// Evaluator completes prompts with the Anthropic Messages API.
type Evaluator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

func NewEvaluator(client anthropic.Client, model string) *Evaluator {
	return &Evaluator{
		client:    client,
		model:     model,
		maxTokens: defaultMaxTokens,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Error("anthropic API call failed",
			"error", err,
			"model", e.model)
		return "", ai.ClassifyError(string(config.AIAnthropic), statusCode(err), err)
	}

	var text strings.Builder
	for i := range resp.Content {
		block := &resp.Content[i]
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", ai.EmptyCompletion(string(config.AIAnthropic), e.model)
	}

	log.Debug("anthropic usage",
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason)

	return text.String(), nil
}

func statusCode(err error) int {
	var apiErr *anthropic.Error
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

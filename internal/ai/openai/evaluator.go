package openai

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/logger"
)

var _ ai.Evaluator = (*Evaluator)(nil)

// Evaluator completes prompts with the OpenAI Chat Completions API.
type Evaluator struct {
	client openai.Client
	model  string
}

func NewEvaluator(client openai.Client, model string) *Evaluator {
	return &Evaluator{
		client: client,
		model:  model,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		log.Error("openai API call failed",
			"error", err,
			"model", e.model)
		return "", ai.ClassifyError(string(config.AIOpenAI), statusCode(err), err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ai.EmptyCompletion(string(config.AIOpenAI), e.model)
	}

	log.Debug("openai usage",
		"input_tokens", resp.Usage.PromptTokens,
		"output_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}

func statusCode(err error) int {
	var apiErr *openai.Error
	if stderrors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

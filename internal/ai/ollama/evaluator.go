package ollama

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/logger"
)

var _ ai.Evaluator = (*Evaluator)(nil)

// Evaluator completes prompts with a local Ollama server.
type Evaluator struct {
	client *api.Client
	model  string
}

func NewEvaluator(client *api.Client, model string) *Evaluator {
	return &Evaluator{
		client: client,
		model:  model,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	stream := false
	req := &api.ChatRequest{
		Model: e.model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
	}

	var content strings.Builder
	var final api.ChatResponse
	err := e.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		final = resp
		return nil
	})
	if err != nil {
		log.Error("ollama API call failed",
			"error", err,
			"model", e.model)
		return "", ai.ClassifyError(string(config.AIOllama), statusCode(err), err)
	}

	if strings.TrimSpace(content.String()) == "" {
		return "", ai.EmptyCompletion(string(config.AIOllama), e.model)
	}

	log.Debug("ollama usage",
		"input_tokens", final.PromptEvalCount,
		"output_tokens", final.EvalCount,
		"done_reason", final.DoneReason)

	return content.String(), nil
}

func statusCode(err error) int {
	var statusErr api.StatusError
	if stderrors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

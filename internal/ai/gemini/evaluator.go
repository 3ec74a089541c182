package gemini

import (
	"context"
	"strings"

	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/logger"
	"google.golang.org/genai"
)

var _ ai.Evaluator = (*Evaluator)(nil)

// Evaluator completes prompts with the Gemini API.
type Evaluator struct {
	client *genai.Client
	model  string
}

// NewEvaluator creates a Gemini evaluator for model.
func NewEvaluator(client *genai.Client, model string) *Evaluator {
	return &Evaluator{
		client: client,
		model:  model,
	}
}

// Evaluate sends prompt as a single user turn and returns the text parts of
// the reply, skipping thoughts.
func (e *Evaluator) Evaluate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), GetGenerateConfig(e.model))
	if err != nil {
		log.Error("gemini API call failed",
			"error", err,
			"model", e.model)
		return "", ai.ClassifyError(string(config.AIGemini), 0, err)
	}

	text := formatResponse(resp)
	if strings.TrimSpace(text) == "" {
		return "", ai.EmptyCompletion(string(config.AIGemini), e.model)
	}

	if resp.UsageMetadata != nil {
		log.Debug("gemini usage",
			"input_tokens", resp.UsageMetadata.PromptTokenCount,
			"output_tokens", resp.UsageMetadata.CandidatesTokenCount)
	}

	return text, nil
}

// GetGenerateConfig returns the generation settings for the model, enabling
// thinking on the models that support it.
func GetGenerateConfig(modelName string) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     float32Ptr(0.3),
		MaxOutputTokens: int32(10000),
	}

	if strings.HasPrefix(modelName, "gemini-3") {
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: true,
			ThinkingLevel:   genai.ThinkingLevelHigh,
		}
	}

	return cfg
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			formattedContent.WriteString(part.Text)
		}
	}
	return formattedContent.String()
}

func float32Ptr(f float32) *float32 {
	return &f
}

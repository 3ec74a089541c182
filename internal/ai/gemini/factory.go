package gemini

import (
	"context"

	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	domainErrors "github.com/thomas-vilte/diffscribe/internal/errors"
	"google.golang.org/genai"
)

var _ ai.ProviderFactory = (*Factory)(nil)

// Factory builds Gemini evaluators from the application configuration.
type Factory struct {
	// HTTPOptions overrides the client transport settings, mostly the base URL.
	HTTPOptions genai.HTTPOptions
}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) CreateEvaluator(ctx context.Context, cfg *config.Config) (ai.Evaluator, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKeyFor(config.AIGemini),
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: f.HTTPOptions,
	})
	if err != nil {
		return nil, ai.ClassifyError(f.Name(), 0, err)
	}

	return NewEvaluator(client, string(cfg.ModelFor(config.AIGemini))), nil
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.APIKeyFor(config.AIGemini) == "" {
		return domainErrors.ErrAPIKeyMissing.WithContext("provider", f.Name())
	}
	return nil
}

func (f *Factory) Name() string {
	return string(config.AIGemini)
}

package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	domainErrors "github.com/thomas-vilte/diffscribe/internal/errors"
)

var _ ai.ProviderFactory = (*Factory)(nil)

// Factory builds Anthropic evaluators. Options are appended to the API key
// option of every client it creates.
type Factory struct {
	Options []option.RequestOption
}

func NewFactory(opts ...option.RequestOption) *Factory {
	return &Factory{Options: opts}
}

func (f *Factory) CreateEvaluator(_ context.Context, cfg *config.Config) (ai.Evaluator, error) {
	if err := f.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	opts := append([]option.RequestOption{option.WithAPIKey(cfg.APIKeyFor(config.AIAnthropic))}, f.Options...)
	client := anthropic.NewClient(opts...)

	return NewEvaluator(client, string(cfg.ModelFor(config.AIAnthropic))), nil
}

func (f *Factory) ValidateConfig(cfg *config.Config) error {
	if cfg.APIKeyFor(config.AIAnthropic) == "" {
		return domainErrors.ErrAPIKeyMissing.WithContext("provider", f.Name())
	}
	return nil
}

func (f *Factory) Name() string {
	return string(config.AIAnthropic)
}

package ollama

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/config"
	domainErrors "github.com/thomas-vilte/diffscribe/internal/errors"
)

var _ ai.ProviderFactory = (*Factory)(nil)

// Factory builds evaluators for the Ollama server configured in ollama_host.
type Factory struct {
	HTTPClient *http.Client
}

func NewFactory() *Factory {
	return &Factory{HTTPClient: http.DefaultClient}
}

func (f *Factory) CreateEvaluator(_ context.Context, cfg *config.Config) (ai.Evaluator, error) {
	hostURL, err := f.hostURL(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := f.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	client := api.NewClient(hostURL, httpClient)
	return NewEvaluator(client, string(cfg.ModelFor(config.AIOllama))), nil
}

// ValidateConfig checks the host URL. No API key is needed.
func (f *Factory) ValidateConfig(cfg *config.Config) error {
	_, err := f.hostURL(cfg)
	return err
}

func (f *Factory) Name() string {
	return string(config.AIOllama)
}

func (f *Factory) hostURL(cfg *config.Config) (*url.URL, error) {
	host := cfg.OllamaHost
	if host == "" {
		host = config.DefaultOllamaHostURL
	}

	parsed, err := url.Parse(host)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		appErr := domainErrors.ErrConfigMissing.
			WithContext("provider", f.Name()).
			WithContext("ollama_host", host).
			WithSuggestion("diffscribe config set-ollama-host http://localhost:11434")
		if err != nil {
			return nil, appErr.WithError(err)
		}
		return nil, appErr
	}
	return parsed, nil
}

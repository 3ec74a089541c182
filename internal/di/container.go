package di

import (
	"context"
	"sync"

	"github.com/thomas-vilte/diffscribe/internal/ai"
	"github.com/thomas-vilte/diffscribe/internal/commands/handler"
	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/i18n"
	"github.com/thomas-vilte/diffscribe/internal/services"
)

// Container holds the application dependencies. Services that need a
// configured AI provider are created on first use.
type Container struct {
	config       *config.Config
	translations *i18n.Translations

	aiRegistry *ai.ProviderRegistry
	gitService handler.GitService

	mu         sync.Mutex
	summarizer *services.Summarizer
}

func NewContainer(cfg *config.Config, trans *i18n.Translations) *Container {
	return &Container{
		config:       cfg,
		translations: trans,
		aiRegistry:   ai.NewProviderRegistry(),
	}
}

// RegisterAIProvider registers factory under its own name.
func (c *Container) RegisterAIProvider(factory ai.ProviderFactory) error {
	return c.aiRegistry.Register(factory.Name(), factory)
}

func (c *Container) SetGitService(gitService handler.GitService) {
	c.gitService = gitService
}

func (c *Container) GetGitService() handler.GitService {
	return c.gitService
}

func (c *Container) GetAIRegistry() *ai.ProviderRegistry {
	return c.aiRegistry
}

func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetTranslations() *i18n.Translations {
	return c.translations
}

// GetSummarizer returns the summarizer for the configured provider, creating
// its evaluator the first time.
func (c *Container) GetSummarizer(ctx context.Context) (*services.Summarizer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.summarizer != nil {
		return c.summarizer, nil
	}

	evaluator, err := c.aiRegistry.CreateFromConfig(ctx, c.config)
	if err != nil {
		return nil, err
	}

	c.summarizer = services.NewSummarizer(evaluator, ai.NewPromptBuilder(c.config.MaxDiffChars))
	return c.summarizer, nil
}

// SummarizerProvider adapts GetSummarizer for the commit and branch commands.
func (c *Container) SummarizerProvider() handler.SummarizerProvider {
	return func(ctx context.Context, _ *config.Config) (handler.Summarizer, error) {
		summarizer, err := c.GetSummarizer(ctx)
		if err != nil {
			return nil, err
		}
		return summarizer, nil
	}
}

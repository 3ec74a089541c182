package ai

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/thomas-vilte/diffscribe/internal/config"
	"github.com/thomas-vilte/diffscribe/internal/errors"
)

// ProviderRegistry keeps the provider factories known to the application.
type ProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		factories: make(map[string]ProviderFactory),
	}
}

// Register adds a factory under name.
func (r *ProviderRegistry) Register(name string, factory ProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("AI provider '%s' is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// Get returns the factory registered under name.
func (r *ProviderRegistry) Get(name string) (ProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, errors.ErrProviderNotSupported.WithContext("provider", name)
	}

	return factory, nil
}

// List returns the registered provider names in alphabetical order.
func (r *ProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	sort.Strings(providers)
	return providers
}

// IsRegistered reports whether a factory exists for name.
func (r *ProviderRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// CreateFromConfig builds the evaluator of the provider selected in cfg.
func (r *ProviderRegistry) CreateFromConfig(ctx context.Context, cfg *config.Config) (Evaluator, error) {
	if cfg == nil {
		return nil, errors.ErrConfigMissing
	}

	factory, err := r.Get(string(cfg.AIProvider))
	if err != nil {
		return nil, err
	}

	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return factory.CreateEvaluator(ctx, cfg)
}

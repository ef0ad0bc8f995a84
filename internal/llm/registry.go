package llm

import (
	"context"
	"fmt"

	"github.com/studyforge/roadmap/internal/config"
)

// Registry routes chat requests to a configured provider. There is
// deliberately no retry or provider failover here: a failed generation is
// reported to the caller, which prefers its own deterministic fallback over
// a second attempt against a non-deterministic service.
type Registry struct {
	providers       map[string]Provider
	defaultProvider string
	defaultModel    string
}

func NewRegistry(cfg config.LLMConfig) *Registry {
	r := &Registry{
		providers:       make(map[string]Provider),
		defaultProvider: cfg.DefaultProvider,
		defaultModel:    cfg.DefaultModel,
	}

	if cfg.OpenAIKey != "" {
		r.providers["openai"] = NewOpenAIProvider(cfg.OpenAIKey)
	}
	if cfg.AnthropicKey != "" {
		r.providers["anthropic"] = NewAnthropicProvider(cfg.AnthropicKey)
	}
	if cfg.OllamaURL != "" {
		r.providers["ollama"] = NewOllamaProvider(cfg.OllamaURL)
	}

	return r
}

func (r *Registry) Provider(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q not configured", name)
	}
	return p, nil
}

// Chat performs a single completion attempt against the requested provider,
// falling back to the configured defaults for provider and model.
func (r *Registry) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	providerName := req.Provider
	if providerName == "" {
		providerName = r.defaultProvider
	}
	if req.Model == "" {
		req.Model = r.defaultModel
	}

	p, err := r.Provider(providerName)
	if err != nil {
		return nil, err
	}

	return p.ChatCompletion(ctx, req)
}

func (r *Registry) ListModels() []ModelInfo {
	var models []ModelInfo
	for _, p := range r.providers {
		for _, m := range p.Models() {
			models = append(models, ModelInfo{Provider: p.Name(), Model: m})
		}
	}
	return models
}

package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studyforge/roadmap/internal/config"
)

func TestRegistryProviderNotConfigured(t *testing.T) {
	r := NewRegistry(config.LLMConfig{DefaultProvider: "openai"})

	_, err := r.Provider("openai")
	require.Error(t, err)

	_, err = r.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
}

func TestRegistryListModels(t *testing.T) {
	r := NewRegistry(config.LLMConfig{OllamaURL: "http://localhost:11434"})

	p, err := r.Provider("ollama")
	require.NoError(t, err)
	require.Equal(t, "ollama", p.Name())

	models := r.ListModels()
	require.NotEmpty(t, models)
	for _, m := range models {
		require.Equal(t, "ollama", m.Provider)
		require.Contains(t, p.Models(), m.Model)
	}
}

package llm

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerator is the single-shot generation client used by the roadmap
// pipeline: one prompt in, raw text out, exactly one attempt.
type TextGenerator struct {
	registry *Registry
}

func NewTextGenerator(registry *Registry) *TextGenerator {
	return &TextGenerator{registry: registry}
}

func (g *TextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.registry.Chat(ctx, ChatRequest{
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", fmt.Errorf("generate: provider %s returned empty output", resp.Provider)
	}

	return content, nil
}

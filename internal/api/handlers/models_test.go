package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studyforge/roadmap/internal/config"
	"github.com/studyforge/roadmap/internal/llm"
)

func TestModelsList(t *testing.T) {
	registry := llm.NewRegistry(config.LLMConfig{
		OllamaURL:       "http://localhost:11434",
		DefaultProvider: "ollama",
	})
	h := NewModelsHandler(registry)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Models []llm.ModelInfo `json:"models"`
		Count  int             `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Models)
	require.Equal(t, len(body.Models), body.Count)
	for _, m := range body.Models {
		require.Equal(t, "ollama", m.Provider)
		require.NotEmpty(t, m.Model)
	}
}

func TestModelsListNoProviders(t *testing.T) {
	h := NewModelsHandler(llm.NewRegistry(config.LLMConfig{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Zero(t, body.Count)
}

package handlers

import (
	"net/http"

	"github.com/studyforge/roadmap/internal/llm"
)

type ModelsHandler struct {
	registry *llm.Registry
}

func NewModelsHandler(registry *llm.Registry) *ModelsHandler {
	return &ModelsHandler{registry: registry}
}

// List returns every model available from the configured providers.
func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	models := h.registry.ListModels()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"models": models,
		"count":  len(models),
	})
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/studyforge/roadmap/internal/auth"
	"github.com/studyforge/roadmap/internal/models"
	"github.com/studyforge/roadmap/internal/roadmap"
)

type RoadmapHandler struct {
	pipeline roadmap.Pipeline
}

func NewRoadmapHandler(p roadmap.Pipeline) *RoadmapHandler {
	return &RoadmapHandler{pipeline: p}
}

type roadmapData struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Overview      string           `json:"overview"`
	Segments      []models.Segment `json:"segments"`
	TotalSegments int              `json:"totalSegments"`
	EstimatedTime string           `json:"estimatedTime"`
	Method        string           `json:"method"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type roadmapEnvelope struct {
	Success bool        `json:"success"`
	Cached  bool        `json:"cached"`
	Data    roadmapData `json:"data"`
}

func newEnvelope(rm *models.Roadmap, cached bool) roadmapEnvelope {
	body := rm.Body()
	return roadmapEnvelope{
		Success: true,
		Cached:  cached,
		Data: roadmapData{
			ID:            rm.ID,
			Title:         body.Title,
			Overview:      body.Overview,
			Segments:      body.Segments,
			TotalSegments: body.TotalSegments,
			EstimatedTime: body.EstimatedTime,
			Method:        body.Method,
			CreatedAt:     rm.CreatedAt,
		},
	}
}

func failure(err string) map[string]interface{} {
	return map[string]interface{}{"success": false, "error": err}
}

// Create runs the segmentation pipeline for a document, returning the
// existing roadmap when one is already stored.
func (h *RoadmapHandler) Create(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failure("invalid document ID"))
		return
	}
	ownerID := auth.OwnerFromContext(r.Context())

	res, err := h.pipeline.Segment(r.Context(), ownerID, docID)
	if err != nil {
		switch {
		case errors.Is(err, roadmap.ErrInvalidRequest):
			writeJSON(w, http.StatusBadRequest, failure("documentId and ownerId are required"))
		case errors.Is(err, roadmap.ErrDocumentNotFound):
			writeJSON(w, http.StatusNotFound, failure("document not found"))
		default:
			writeJSON(w, http.StatusInternalServerError, failure("failed to persist roadmap"))
		}
		return
	}

	writeJSON(w, http.StatusOK, newEnvelope(res.Roadmap, res.Cached()))
}

// Get returns the stored roadmap for a document, if any.
func (h *RoadmapHandler) Get(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failure("invalid document ID"))
		return
	}
	ownerID := auth.OwnerFromContext(r.Context())

	rm, err := h.pipeline.Get(r.Context(), ownerID, docID)
	if err != nil {
		switch {
		case errors.Is(err, roadmap.ErrNotFound):
			writeJSON(w, http.StatusNotFound, failure("roadmap not found"))
		case errors.Is(err, roadmap.ErrInvalidRequest):
			writeJSON(w, http.StatusBadRequest, failure("documentId and ownerId are required"))
		default:
			writeJSON(w, http.StatusInternalServerError, failure("failed to load roadmap"))
		}
		return
	}

	writeJSON(w, http.StatusOK, newEnvelope(rm, true))
}

// Delete removes the stored roadmap for a document. Deleting a roadmap that
// does not exist succeeds.
func (h *RoadmapHandler) Delete(w http.ResponseWriter, r *http.Request) {
	docID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failure("invalid document ID"))
		return
	}
	ownerID := auth.OwnerFromContext(r.Context())

	if err := h.pipeline.Delete(r.Context(), ownerID, docID); err != nil {
		if errors.Is(err, roadmap.ErrInvalidRequest) {
			writeJSON(w, http.StatusBadRequest, failure("documentId and ownerId are required"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, failure("failed to delete roadmap"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

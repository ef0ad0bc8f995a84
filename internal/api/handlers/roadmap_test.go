package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/studyforge/roadmap/internal/auth"
	"github.com/studyforge/roadmap/internal/models"
	"github.com/studyforge/roadmap/internal/roadmap"
)

type stubPipeline struct {
	segmentRes *roadmap.Result
	segmentErr error
	getRes     *models.Roadmap
	getErr     error
	deleteErr  error
}

func (s *stubPipeline) Segment(ctx context.Context, ownerID, documentID uuid.UUID) (*roadmap.Result, error) {
	return s.segmentRes, s.segmentErr
}

func (s *stubPipeline) Get(ctx context.Context, ownerID, documentID uuid.UUID) (*models.Roadmap, error) {
	return s.getRes, s.getErr
}

func (s *stubPipeline) Delete(ctx context.Context, ownerID, documentID uuid.UUID) error {
	return s.deleteErr
}

func sampleRoadmap() *models.Roadmap {
	return &models.Roadmap{
		ID:            uuid.New(),
		DocumentID:    uuid.New(),
		OwnerID:       uuid.New(),
		Title:         "Learning Roadmap: Sample",
		Overview:      "An overview.",
		Segments: []models.Segment{
			{
				ID:                 1,
				Title:              "Introduction",
				Description:        "Start here.",
				KeyPoints:          []string{"a"},
				Difficulty:         models.DifficultyBeginner,
				EstimatedTime:      "30 minutes",
				LearningObjectives: []string{"understand basics"},
			},
		},
		TotalSegments: 1,
		EstimatedTime: "2-3 hours",
		Method:        models.MethodGenerated,
		CreatedAt:     time.Now().UTC(),
	}
}

func doRoadmapRequest(t *testing.T, h http.HandlerFunc, method, docID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, fmt.Sprintf("/api/v1/documents/%s/roadmap", docID), nil)
	req = req.WithContext(auth.WithOwner(req.Context(), uuid.New()))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", docID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRoadmapCreateSuccess(t *testing.T) {
	rm := sampleRoadmap()
	h := NewRoadmapHandler(&stubPipeline{
		segmentRes: &roadmap.Result{Roadmap: rm, Source: roadmap.SourceGenerated},
	})

	rec := doRoadmapRequest(t, h.Create, http.MethodPost, rm.DocumentID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Cached  bool `json:"cached"`
		Data    struct {
			ID            uuid.UUID        `json:"id"`
			Title         string           `json:"title"`
			Segments      []models.Segment `json:"segments"`
			TotalSegments int              `json:"totalSegments"`
			Method        string           `json:"method"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.False(t, envelope.Cached)
	require.Equal(t, rm.ID, envelope.Data.ID)
	require.Equal(t, models.MethodGenerated, envelope.Data.Method)
	require.Equal(t, 1, envelope.Data.TotalSegments)
	require.Len(t, envelope.Data.Segments, 1)
}

func TestRoadmapCreateCachedFlag(t *testing.T) {
	rm := sampleRoadmap()
	h := NewRoadmapHandler(&stubPipeline{
		segmentRes: &roadmap.Result{Roadmap: rm, Source: roadmap.SourceCache},
	})

	rec := doRoadmapRequest(t, h.Create, http.MethodPost, rm.DocumentID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Cached bool `json:"cached"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Cached)
}

func TestRoadmapCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid request", roadmap.ErrInvalidRequest, http.StatusBadRequest},
		{"document not found", fmt.Errorf("%w: no rows", roadmap.ErrDocumentNotFound), http.StatusNotFound},
		{"persistence failure", fmt.Errorf("%w: connection refused", roadmap.ErrPersistence), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRoadmapHandler(&stubPipeline{segmentErr: tt.err})
			rec := doRoadmapRequest(t, h.Create, http.MethodPost, uuid.NewString())
			require.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.False(t, body.Success)
			require.NotEmpty(t, body.Error)
		})
	}
}

func TestRoadmapCreateBadDocumentID(t *testing.T) {
	h := NewRoadmapHandler(&stubPipeline{})
	rec := doRoadmapRequest(t, h.Create, http.MethodPost, "not-a-uuid")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoadmapGetNotFound(t *testing.T) {
	h := NewRoadmapHandler(&stubPipeline{getErr: roadmap.ErrNotFound})
	rec := doRoadmapRequest(t, h.Get, http.MethodGet, uuid.NewString())
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoadmapGetSuccess(t *testing.T) {
	rm := sampleRoadmap()
	h := NewRoadmapHandler(&stubPipeline{getRes: rm})

	rec := doRoadmapRequest(t, h.Get, http.MethodGet, rm.DocumentID.String())
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Cached  bool `json:"cached"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	require.True(t, envelope.Cached)
}

func TestRoadmapDeleteIdempotent(t *testing.T) {
	h := NewRoadmapHandler(&stubPipeline{})
	rec := doRoadmapRequest(t, h.Delete, http.MethodDelete, uuid.NewString())
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
}

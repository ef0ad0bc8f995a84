package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/studyforge/roadmap/internal/document"
	"github.com/studyforge/roadmap/internal/models"
	"github.com/studyforge/roadmap/internal/queue"
	"github.com/studyforge/roadmap/internal/roadmap"
)

// RoadmapWorker pre-generates roadmaps after document upload so the first
// synchronous request is usually a cache hit.
type RoadmapWorker struct {
	pipeline roadmap.Pipeline
	docSvc   *document.Service
}

func NewRoadmapWorker(pipeline roadmap.Pipeline, docSvc *document.Service) *RoadmapWorker {
	return &RoadmapWorker{pipeline: pipeline, docSvc: docSvc}
}

func (w *RoadmapWorker) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload queue.RoadmapGeneratePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	docID, err := uuid.Parse(payload.DocumentID)
	if err != nil {
		return fmt.Errorf("parse document ID: %w", err)
	}
	ownerID, err := uuid.Parse(payload.OwnerID)
	if err != nil {
		return fmt.Errorf("parse owner ID: %w", err)
	}

	slog.Info("generating roadmap", "document_id", docID)

	if err := w.docSvc.UpdateStatus(ctx, docID, models.DocStatusProcessing); err != nil {
		return fmt.Errorf("update status to processing: %w", err)
	}

	res, err := w.pipeline.Segment(ctx, ownerID, docID)
	if err != nil {
		// Persistence failures are worth a retry; a missing document is
		// not coming back.
		if errors.Is(err, roadmap.ErrDocumentNotFound) || errors.Is(err, roadmap.ErrInvalidRequest) {
			w.docSvc.UpdateStatus(ctx, docID, models.DocStatusFailed)
			slog.Error("roadmap generation abandoned", "document_id", docID, "error", err)
			return nil
		}
		w.docSvc.UpdateStatus(ctx, docID, models.DocStatusFailed)
		return fmt.Errorf("segment document: %w", err)
	}

	if err := w.docSvc.UpdateStatus(ctx, docID, models.DocStatusReady); err != nil {
		return fmt.Errorf("update status to ready: %w", err)
	}

	slog.Info("roadmap generated",
		"document_id", docID,
		"method", res.Roadmap.Method,
		"segments", res.Roadmap.TotalSegments,
	)
	return nil
}

package roadmap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studyforge/roadmap/internal/models"
	"github.com/studyforge/roadmap/pkg/textextract"
)

// DocumentSource resolves document metadata for an owner.
type DocumentSource interface {
	GetByID(ctx context.Context, ownerID, documentID uuid.UUID) (*models.Document, error)
}

// BlobStore fetches raw document bytes from object storage.
type BlobStore interface {
	Download(ctx context.Context, bucket, path string) (io.ReadCloser, error)
}

// Extractor turns raw document bytes into page-delimited text.
type Extractor interface {
	Extract(ctx context.Context, data io.ReaderAt, size int64, fileType string) (*textextract.ExtractedText, error)
}

// Generator sends one prompt to a text-generation service and returns the
// raw output. A single attempt; no retries.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Source tags how a Segment call arrived at its roadmap.
type Source string

const (
	SourceCache     Source = "cache"
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// Result is the outcome of a pipeline run.
type Result struct {
	Roadmap *models.Roadmap
	Source  Source
}

// Cached reports whether the roadmap was served from an earlier run.
func (r *Result) Cached() bool {
	return r.Source == SourceCache
}

// Pipeline is the roadmap segmentation surface exposed to transports.
type Pipeline interface {
	Segment(ctx context.Context, ownerID, documentID uuid.UUID) (*Result, error)
	Get(ctx context.Context, ownerID, documentID uuid.UUID) (*models.Roadmap, error)
	Delete(ctx context.Context, ownerID, documentID uuid.UUID) error
}

type pipeline struct {
	store     Store
	docs      DocumentSource
	blobs     BlobStore
	bucket    string
	extractor Extractor
	generator Generator
}

func NewPipeline(store Store, docs DocumentSource, blobs BlobStore, bucket string, extractor Extractor, generator Generator) Pipeline {
	return &pipeline{
		store:     store,
		docs:      docs,
		blobs:     blobs,
		bucket:    bucket,
		extractor: extractor,
		generator: generator,
	}
}

// Segment runs the cache-or-compute-or-fallback pipeline for one document.
// An existing roadmap is authoritative and returned as-is. On a miss, the
// document is fetched, extracted, and segmented through the generation
// service; any failure along that path degrades to the deterministic
// fallback. The result is persisted exactly once, after computation; a
// persistence failure is the only computed-path error surfaced.
func (p *pipeline) Segment(ctx context.Context, ownerID, documentID uuid.UUID) (*Result, error) {
	if ownerID == uuid.Nil || documentID == uuid.Nil {
		return nil, ErrInvalidRequest
	}

	existing, err := p.store.Get(ctx, ownerID, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if existing != nil {
		return &Result{Roadmap: existing, Source: SourceCache}, nil
	}

	doc, err := p.docs.GetByID(ctx, ownerID, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentNotFound, err)
	}

	source := SourceGenerated
	body, err := p.compute(ctx, doc)
	if err != nil {
		slog.Warn("roadmap generation degraded to fallback",
			"document_id", doc.ID,
			"error", err,
		)
		body = Fallback(doc.Title)
		source = SourceFallback
	}

	rm, err := p.store.Put(ctx, ownerID, documentID, *body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	slog.Info("roadmap persisted",
		"document_id", documentID,
		"method", rm.Method,
		"segments", rm.TotalSegments,
	)
	return &Result{Roadmap: rm, Source: source}, nil
}

// compute is the generative path: fetch bytes, extract, prompt, generate,
// validate. Every failure is returned to the caller, which falls back.
func (p *pipeline) compute(ctx context.Context, doc *models.Document) (*models.RoadmapBody, error) {
	blob, err := p.blobs.Download(ctx, p.bucket, doc.FilePath)
	if err != nil {
		return nil, fmt.Errorf("fetch document bytes: %w", err)
	}
	data, err := io.ReadAll(blob)
	blob.Close()
	if err != nil {
		return nil, fmt.Errorf("read document bytes: %w", err)
	}

	extracted, err := p.extractor.Extract(ctx, readerAt(data), int64(len(data)), doc.FileType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	promptText := BuildPrompt(doc.Title, extracted.Content)

	raw, err := p.generator.Generate(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}

	body, err := ParseResponse(doc.Title, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return body, nil
}

func readerAt(data []byte) io.ReaderAt {
	return bytes.NewReader(data)
}

func (p *pipeline) Get(ctx context.Context, ownerID, documentID uuid.UUID) (*models.Roadmap, error) {
	if ownerID == uuid.Nil || documentID == uuid.Nil {
		return nil, ErrInvalidRequest
	}

	rm, err := p.store.Get(ctx, ownerID, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if rm == nil {
		return nil, ErrNotFound
	}
	return rm, nil
}

func (p *pipeline) Delete(ctx context.Context, ownerID, documentID uuid.UUID) error {
	if ownerID == uuid.Nil || documentID == uuid.Nil {
		return ErrInvalidRequest
	}

	if err := p.store.Delete(ctx, ownerID, documentID); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyforge/roadmap/internal/models"
	"github.com/studyforge/roadmap/internal/queue"
	"github.com/studyforge/roadmap/internal/storage"
)

type Service struct {
	db      *pgxpool.Pool
	storage storage.Storage
	bucket  string
	queue   *queue.Client
}

func NewService(db *pgxpool.Pool, store storage.Storage, bucket string, qc *queue.Client) *Service {
	return &Service{
		db:      db,
		storage: store,
		bucket:  bucket,
		queue:   qc,
	}
}

type UploadRequest struct {
	OwnerID  uuid.UUID
	Title    string
	FileType string
	FileSize int64
	Data     io.Reader
}

func (s *Service) Upload(ctx context.Context, req UploadRequest) (*models.Document, error) {
	docID := uuid.New()
	path := fmt.Sprintf("%s/%s/%s%s", req.OwnerID, docID, time.Now().Format("20060102"), req.FileType)

	if err := s.storage.Upload(ctx, s.bucket, path, req.Data, "application/octet-stream"); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	var doc models.Document
	err := s.db.QueryRow(ctx,
		`INSERT INTO documents (id, owner_id, title, file_path, file_type, file_size_bytes, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, owner_id, title, file_path, file_type, file_size_bytes, status, created_at`,
		docID, req.OwnerID, req.Title, path, req.FileType, req.FileSize, models.DocStatusPending,
	).Scan(&doc.ID, &doc.OwnerID, &doc.Title, &doc.FilePath, &doc.FileType, &doc.FileSizeBytes, &doc.Status, &doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	// Warm the roadmap in the background so the first synchronous request
	// usually hits the cache. Failure to enqueue is not fatal.
	if s.queue != nil {
		if err := s.queue.EnqueueRoadmapGenerate(queue.RoadmapGeneratePayload{
			DocumentID: doc.ID.String(),
			OwnerID:    req.OwnerID.String(),
		}); err != nil {
			slog.Warn("failed to enqueue roadmap generation", "document_id", doc.ID, "error", err)
		}
	}

	return &doc, nil
}

func (s *Service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := s.db.QueryRow(ctx,
		`SELECT id, owner_id, title, file_path, file_type, file_size_bytes, status, created_at
		 FROM documents WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	).Scan(&doc.ID, &doc.OwnerID, &doc.Title, &doc.FilePath, &doc.FileType, &doc.FileSizeBytes, &doc.Status, &doc.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]models.Document, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, owner_id, title, file_path, file_type, file_size_bytes, status, created_at
		 FROM documents WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Title, &d.FilePath, &d.FileType, &d.FileSizeBytes, &d.Status, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	doc, err := s.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if doc.FilePath != "" {
		_ = s.storage.Delete(ctx, s.bucket, doc.FilePath)
	}

	_, err = s.db.Exec(ctx, "DELETE FROM documents WHERE id = $1 AND owner_id = $2", id, ownerID)
	return err
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := s.db.Exec(ctx, "UPDATE documents SET status = $1 WHERE id = $2", status, id)
	return err
}

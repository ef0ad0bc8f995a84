package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studyforge/roadmap/internal/models"
)

// Store persists roadmaps keyed by (document, owner). Get reports a miss as
// (nil, nil), not an error. Put assigns identity and timestamps; there is no
// update-in-place. Delete of an absent row is a no-op.
type Store interface {
	Get(ctx context.Context, ownerID, documentID uuid.UUID) (*models.Roadmap, error)
	Put(ctx context.Context, ownerID, documentID uuid.UUID, body models.RoadmapBody) (*models.Roadmap, error)
	Delete(ctx context.Context, ownerID, documentID uuid.UUID) error
}

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

const roadmapColumns = `id, document_id, owner_id, title, overview, segments, total_segments, estimated_time, method, created_at, updated_at`

func (s *PostgresStore) Get(ctx context.Context, ownerID, documentID uuid.UUID) (*models.Roadmap, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+roadmapColumns+` FROM roadmaps WHERE document_id = $1 AND owner_id = $2`,
		documentID, ownerID,
	)

	rm, err := scanRoadmap(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get roadmap: %w", err)
	}
	return rm, nil
}

func (s *PostgresStore) Put(ctx context.Context, ownerID, documentID uuid.UUID, body models.RoadmapBody) (*models.Roadmap, error) {
	segments, err := json.Marshal(body.Segments)
	if err != nil {
		return nil, fmt.Errorf("marshal segments: %w", err)
	}

	row := s.db.QueryRow(ctx,
		`INSERT INTO roadmaps (id, document_id, owner_id, title, overview, segments, total_segments, estimated_time, method)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+roadmapColumns,
		uuid.New(), documentID, ownerID, body.Title, body.Overview, segments, body.TotalSegments, body.EstimatedTime, body.Method,
	)

	rm, err := scanRoadmap(row)
	if err != nil {
		// A concurrent run for the same pair may have won the unique
		// index race; the stored row is authoritative.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return s.Get(ctx, ownerID, documentID)
		}
		return nil, fmt.Errorf("insert roadmap: %w", err)
	}
	return rm, nil
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID, documentID uuid.UUID) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM roadmaps WHERE document_id = $1 AND owner_id = $2`,
		documentID, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete roadmap: %w", err)
	}
	return nil
}

func scanRoadmap(row pgx.Row) (*models.Roadmap, error) {
	var rm models.Roadmap
	var segments []byte
	err := row.Scan(
		&rm.ID, &rm.DocumentID, &rm.OwnerID, &rm.Title, &rm.Overview,
		&segments, &rm.TotalSegments, &rm.EstimatedTime, &rm.Method,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(segments, &rm.Segments); err != nil {
		return nil, fmt.Errorf("unmarshal segments: %w", err)
	}
	return &rm, nil
}

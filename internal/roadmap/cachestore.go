package roadmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/studyforge/roadmap/internal/cache"
	"github.com/studyforge/roadmap/internal/models"
)

// CachedStore layers a Redis read-through cache over another Store. Cache
// failures are logged and absorbed: Redis being down must never turn into a
// persistence error.
type CachedStore struct {
	inner Store
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedStore(inner Store, c *cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, cache: c, ttl: ttl}
}

func cacheKey(ownerID, documentID uuid.UUID) string {
	return fmt.Sprintf("roadmap:%s:%s", ownerID, documentID)
}

func (s *CachedStore) Get(ctx context.Context, ownerID, documentID uuid.UUID) (*models.Roadmap, error) {
	key := cacheKey(ownerID, documentID)

	var cached models.Roadmap
	err := s.cache.Get(ctx, key, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		slog.Warn("roadmap cache read failed", "key", key, "error", err)
	}

	rm, err := s.inner.Get(ctx, ownerID, documentID)
	if err != nil || rm == nil {
		return rm, err
	}

	if err := s.cache.Set(ctx, key, rm, s.ttl); err != nil {
		slog.Warn("roadmap cache write failed", "key", key, "error", err)
	}
	return rm, nil
}

func (s *CachedStore) Put(ctx context.Context, ownerID, documentID uuid.UUID, body models.RoadmapBody) (*models.Roadmap, error) {
	rm, err := s.inner.Put(ctx, ownerID, documentID, body)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey(ownerID, documentID), rm, s.ttl); err != nil {
		slog.Warn("roadmap cache write failed", "document_id", documentID, "error", err)
	}
	return rm, nil
}

func (s *CachedStore) Delete(ctx context.Context, ownerID, documentID uuid.UUID) error {
	if err := s.inner.Delete(ctx, ownerID, documentID); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, cacheKey(ownerID, documentID)); err != nil {
		slog.Warn("roadmap cache delete failed", "document_id", documentID, "error", err)
	}
	return nil
}

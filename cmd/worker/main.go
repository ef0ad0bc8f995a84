package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/studyforge/roadmap/internal/cache"
	"github.com/studyforge/roadmap/internal/config"
	"github.com/studyforge/roadmap/internal/database"
	"github.com/studyforge/roadmap/internal/document"
	"github.com/studyforge/roadmap/internal/llm"
	"github.com/studyforge/roadmap/internal/queue"
	"github.com/studyforge/roadmap/internal/queue/workers"
	"github.com/studyforge/roadmap/internal/roadmap"
	"github.com/studyforge/roadmap/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	store := storage.NewSupabaseStorage(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseKey)
	docSvc := document.NewService(db, store, cfg.Storage.Bucket, nil)

	roadmapStore := roadmap.NewCachedStore(
		roadmap.NewPostgresStore(db),
		cache.NewCache(rdb),
		cfg.Roadmap.CacheTTL,
	)
	pipeline := roadmap.NewPipeline(
		roadmapStore,
		docSvc,
		store,
		cfg.Storage.Bucket,
		document.NewTextExtractor(),
		llm.NewTextGenerator(llm.NewRegistry(cfg.LLM)),
	)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	registry := queue.NewHandlersRegistry()

	roadmapWorker := workers.NewRoadmapWorker(pipeline, docSvc)
	registry.Register(queue.TypeRoadmapGenerate, asynq.HandlerFunc(roadmapWorker.ProcessTask))

	slog.Info("starting worker", "concurrency", 10)
	if err := srv.Run(registry.Mux()); err != nil {
		slog.Error("worker error", "error", err)
		os.Exit(1)
	}
}

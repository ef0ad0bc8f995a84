package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/studyforge/roadmap/internal/api/handlers"
	"github.com/studyforge/roadmap/internal/api/middleware"
	"github.com/studyforge/roadmap/internal/auth"
	"github.com/studyforge/roadmap/internal/cache"
	"github.com/studyforge/roadmap/internal/config"
	"github.com/studyforge/roadmap/internal/document"
	"github.com/studyforge/roadmap/internal/llm"
	"github.com/studyforge/roadmap/internal/queue"
	"github.com/studyforge/roadmap/internal/roadmap"
	"github.com/studyforge/roadmap/internal/storage"
)

type Router struct {
	mux   *chi.Mux
	db    *pgxpool.Pool
	redis *redis.Client
	cfg   *config.Config
	jwt   *auth.JWTMiddleware
}

func NewRouter(db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) *Router {
	return &Router{
		mux:   chi.NewRouter(),
		db:    db,
		redis: rdb,
		cfg:   cfg,
		jwt:   auth.NewJWTMiddleware(cfg.Auth.JWTSecret),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints (no auth)
	health := handlers.NewHealthHandler(rt.db, rt.redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Initialize services
	store := storage.NewSupabaseStorage(rt.cfg.Storage.SupabaseURL, rt.cfg.Storage.SupabaseKey)
	queueClient := queue.NewClient(rt.cfg.Redis)
	docSvc := document.NewService(rt.db, store, rt.cfg.Storage.Bucket, queueClient)

	registry := llm.NewRegistry(rt.cfg.LLM)
	roadmapStore := roadmap.NewCachedStore(
		roadmap.NewPostgresStore(rt.db),
		cache.NewCache(rt.redis),
		rt.cfg.Roadmap.CacheTTL,
	)
	pipeline := roadmap.NewPipeline(
		roadmapStore,
		docSvc,
		store,
		rt.cfg.Storage.Bucket,
		document.NewTextExtractor(),
		llm.NewTextGenerator(registry),
	)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rt.jwt.Authenticate)

		docH := handlers.NewDocumentHandler(docSvc, pipeline)
		roadmapH := handlers.NewRoadmapHandler(pipeline)

		r.Get("/models", handlers.NewModelsHandler(registry).List)

		r.Route("/documents", func(r chi.Router) {
			r.Post("/", docH.Upload)
			r.Get("/", docH.List)
			r.Get("/{id}", docH.Get)
			r.Delete("/{id}", docH.Delete)
			r.Get("/{id}/status", docH.Status)

			r.Post("/{id}/roadmap", roadmapH.Create)
			r.Get("/{id}/roadmap", roadmapH.Get)
			r.Delete("/{id}/roadmap", roadmapH.Delete)
		})
	})

	return r
}

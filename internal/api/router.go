package api

import (
	"net/http"

	"github.com/buzzdeck/buzzdeck/internal/api/handler"
	customMiddleware "github.com/buzzdeck/buzzdeck/internal/api/middleware"
	"github.com/buzzdeck/buzzdeck/internal/assist"
	"github.com/buzzdeck/buzzdeck/internal/config"
	"github.com/buzzdeck/buzzdeck/internal/domain"
	"github.com/buzzdeck/buzzdeck/internal/identity"
	"github.com/buzzdeck/buzzdeck/internal/media/canva"
	"github.com/buzzdeck/buzzdeck/internal/media/elevenlabs"
	"github.com/buzzdeck/buzzdeck/internal/platform"
	"github.com/buzzdeck/buzzdeck/internal/platform/meta"
	"github.com/buzzdeck/buzzdeck/internal/platform/youtube"
	"github.com/buzzdeck/buzzdeck/internal/proxy"
	"github.com/buzzdeck/buzzdeck/internal/render"
	"github.com/buzzdeck/buzzdeck/internal/repository/postgres"
	"github.com/buzzdeck/buzzdeck/internal/repository/redis"
	"github.com/buzzdeck/buzzdeck/internal/security"
	"github.com/buzzdeck/buzzdeck/internal/service"
	"github.com/buzzdeck/buzzdeck/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", customMiddleware.WorkspaceHeader},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize encryptor
	encryptor, err := security.NewEncryptorFromSecret(cfg.Encryption.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize encryptor")
	}

	// Initialize repositories
	membershipRepo := postgres.NewMembershipRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)
	pendingRepo := postgres.NewPendingCommentRepository(db)
	knowledgeRepo := postgres.NewKnowledgeRepository(db)
	generationRepo := postgres.NewGenerationRepository(db)

	// Initialize rate limiter
	rateLimiter := redis.NewRateLimiter(
		redisClient,
		cfg.Security.RateLimit.RequestsPerMinute,
		cfg.Security.RateLimit.Burst,
	)

	// Identity provider and backend proxy
	resolver := identity.NewResolver(cfg.Identity)
	if !resolver.Configured() {
		log.Warn().Msg("Identity provider not configured, protected routes will answer 503")
	}
	forwarder := proxy.NewForwarder(cfg.Backend)

	// Initialize platform adapter registry
	registry := platform.NewRegistry()
	registry.Register(domain.PlatformYouTube, youtube.NewAdapter())
	metaAdapter := func(p domain.Platform) platform.Adapter {
		return meta.NewAdapter(p, cfg.Meta.AppSecret, cfg.Meta.GraphVersion)
	}
	registry.Register(domain.PlatformFacebook, metaAdapter(domain.PlatformFacebook))
	registry.Register(domain.PlatformInstagram, metaAdapter(domain.PlatformInstagram))

	// Media generation providers and object storage
	audioClient := elevenlabs.NewClient(cfg.ElevenLabs)
	designClient := canva.NewClient(cfg.Canva)
	var store storage.ObjectStore
	if cfg.Storage.Endpoint != "" {
		store, err = storage.NewMinioStore(cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	} else {
		log.Warn().Msg("Object storage not configured, audio generation will fail")
		store = storage.Unconfigured{}
	}

	// Markdown preview renderer
	renderer := render.NewRenderer(render.NewCache(cfg.Render.CacheSize, nil))

	// Initialize services
	credentialService := service.NewCredentialService(credentialRepo, encryptor)
	commentService := service.NewCommentService(
		credentialService,
		registry,
		pendingRepo,
		knowledgeRepo,
		assist.NewSuggester(cfg.Gemini),
	)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo)
	generationService := service.NewGenerationService(generationRepo, audioClient, designClient, store)

	// Initialize handlers
	commentHandler := handler.NewCommentHandler(commentService)
	knowledgeHandler := handler.NewKnowledgeHandler(knowledgeService)
	connectionHandler := handler.NewConnectionHandler(credentialService)
	generationHandler := handler.NewGenerationHandler(generationService)
	oauthHandler := handler.NewOAuthHandler(forwarder)
	metaAdsHandler := handler.NewMetaAdsHandler(forwarder)
	renderHandler := handler.NewRenderHandler(renderer)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// OAuth callback is hit by a browser arriving from the provider,
		// before any session exists.
		r.Get("/connect/{platform}/callback", oauthHandler.Callback)

		// Retired features
		r.HandleFunc("/autopilot", handler.Removed("Autopilot has been discontinued"))
		r.HandleFunc("/autopilot/*", handler.Removed("Autopilot has been discontinued"))
		r.HandleFunc("/voice-clone", handler.Removed("Voice cloning has been discontinued"))
		r.HandleFunc("/voice-clone/*", handler.Removed("Voice cloning has been discontinued"))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.Auth(resolver))
			r.Use(customMiddleware.RateLimit(rateLimiter))

			r.Get("/connect/{platform}", oauthHandler.Connect)
			r.HandleFunc("/meta-ads/*", metaAdsHandler.Proxy)

			r.Group(func(r chi.Router) {
				r.Use(customMiddleware.Workspace(membershipRepo))

				r.Route("/comments", func(r chi.Router) {
					r.Post("/reply", commentHandler.Reply)
					r.Post("/hide", commentHandler.Hide)
					r.Post("/suggest", commentHandler.Suggest)
					r.Get("/pending", commentHandler.ListPending)
					r.Delete("/pending", commentHandler.BulkDeletePending)
				})

				r.Route("/knowledge", func(r chi.Router) {
					r.Get("/", knowledgeHandler.List)
					r.Post("/", knowledgeHandler.Create)
					r.Get("/{id}", knowledgeHandler.Get)
					r.Put("/{id}", knowledgeHandler.Update)
					r.Delete("/{id}", knowledgeHandler.Delete)
				})

				r.Route("/connections", func(r chi.Router) {
					r.Get("/", connectionHandler.List)
					r.Delete("/{platform}", connectionHandler.Disconnect)
				})

				r.Route("/generate", func(r chi.Router) {
					r.Post("/audio", generationHandler.GenerateAudio)
					r.Post("/design", generationHandler.GenerateDesign)
					r.Get("/history", generationHandler.History)
				})

				r.Post("/render/preview", renderHandler.Preview)
			})
		})
	})

	return r
}

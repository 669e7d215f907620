package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/advisor"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/api/handler"
	customMiddleware "github.com/jschwar2552/expedia-dashboard-redesign/internal/api/middleware"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/config"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/domain"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm/anthropic"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm/gemini"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm/ollama"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/llm/openai"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/repository/memory"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/repository/postgres"
	"github.com/jschwar2552/expedia-dashboard-redesign/internal/repository/redis"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router. db and redisClient may be
// nil when the deployment runs without those backends; the conversation store
// and chart publisher degrade to in-process implementations.
func NewRouter(cfg *config.Config, db *postgres.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Conversation store
	var store domain.ConversationStore
	switch cfg.Conversation.Backend {
	case "redis":
		if redisClient == nil {
			log.Warn().Msg("Redis backend selected but no client available, using in-memory store")
			store = memory.NewConversationStore()
		} else {
			store = redis.NewConversationStore(redisClient)
		}
	case "postgres":
		if db == nil {
			log.Warn().Msg("Postgres backend selected but no pool available, using in-memory store")
			store = memory.NewConversationStore()
		} else {
			store = postgres.NewConversationStore(db)
		}
	default:
		store = memory.NewConversationStore()
	}

	// Chart publisher
	var publisher domain.ChartPublisher
	if redisClient != nil {
		publisher = redis.NewChartPublisher(redisClient)
	} else {
		publisher = memory.NewBroadcaster()
	}

	// Initialize LLM Router with providers
	llmRouter := llm.NewRouter(cfg.LLM.DefaultProvider)

	log.Info().Msgf("Initializing LLM providers. Default: %s", cfg.LLM.DefaultProvider)

	if cfg.LLM.Anthropic.APIKey != "" {
		llmRouter.RegisterProvider(anthropic.NewProvider(cfg.LLM.Anthropic.APIKey, cfg.LLM.Anthropic.Model))
	}
	if cfg.LLM.OpenAI.APIKey != "" {
		llmRouter.RegisterProvider(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model))
	}
	if cfg.LLM.Ollama.Host != "" {
		log.Info().Str("host", cfg.LLM.Ollama.Host).Msg("Registering Ollama provider")
		llmRouter.RegisterProvider(ollama.NewProvider(cfg.LLM.Ollama.Host, cfg.LLM.Ollama.DefaultModel))
	}
	if cfg.LLM.Gemini.APIKey != "" {
		llmRouter.RegisterProvider(gemini.NewProvider(cfg.LLM.Gemini.APIKey, cfg.LLM.Gemini.Model))
	}

	// Initialize service and handlers
	advisorService := advisor.NewService(
		store,
		llmRouter,
		publisher,
		cfg.Conversation.MaxTurns,
		cfg.LLM.MaxTokens,
		cfg.LLM.Temperature,
	)

	devMode := cfg.Logging.Level == "debug"
	chatHandler := handler.NewChatHandler(advisorService, devMode)
	analyticsHandler := handler.NewAnalyticsHandler(advisorService, devMode)

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db, redisClient))

		r.Group(func(r chi.Router) {
			if redisClient != nil {
				rateLimiter := redis.NewRateLimiter(
					redisClient,
					cfg.Security.RateLimit.RequestsPerMinute,
					cfg.Security.RateLimit.Burst,
				)
				r.Use(customMiddleware.NewRateLimitMiddleware(rateLimiter).Limit)
			}

			// LLM providers
			r.Get("/llm-providers", handler.ListLLMProviders(llmRouter))

			// Chat routes
			r.Route("/chat", func(r chi.Router) {
				r.Post("/message", chatHandler.Message)
				r.Post("/quick-query", chatHandler.QuickQuery)

				r.Route("/history/{conversationID}", func(r chi.Router) {
					r.Get("/", chatHandler.GetHistory)
					r.Delete("/", chatHandler.ClearHistory)
				})
			})

			// Analytics routes
			r.Route("/analytics", func(r chi.Router) {
				r.Get("/charts", analyticsHandler.ListSlots)
				r.Post("/generate-chart", analyticsHandler.GenerateChart)
				r.Get("/dashboard-summary", analyticsHandler.DashboardSummary)
			})
		})
	})

	return r
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/medfinder/backend/internal/adapters/cache"
	"github.com/zatekoja/medfinder/backend/internal/adapters/database"
	"github.com/zatekoja/medfinder/backend/internal/adapters/events"
	"github.com/zatekoja/medfinder/backend/internal/adapters/search"
	"github.com/zatekoja/medfinder/backend/internal/api/handlers"
	"github.com/zatekoja/medfinder/backend/internal/api/middleware"
	"github.com/zatekoja/medfinder/backend/internal/api/routes"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/providers"
	"github.com/zatekoja/medfinder/backend/internal/domain/repositories"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/gemini"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/openai"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
	"github.com/zatekoja/medfinder/backend/pkg/config"
	"github.com/zatekoja/medfinder/backend/pkg/retry"
)

const cacheWarmInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	// The application works without Redis, only slower
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable; running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Pharmacy search falls back to PostgreSQL without Typesense
	var pharmacySearch repositories.PharmacySearchRepository
	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Warn().Err(err).Msg("Typesense unavailable; pharmacy search uses PostgreSQL")
	} else {
		if err := tsClient.InitSchema(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to init Typesense schema")
		}
		pharmacySearch = search.NewTypesenseAdapter(tsClient)
	}

	generator, err := newGenerativeProvider(ctx, &cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("Failed to initialize generative provider")
	}
	if closer, ok := generator.(io.Closer); ok {
		defer closer.Close()
	}

	// Adapters
	var symptomRepo repositories.SymptomRepository = database.NewSymptomAdapter(pgClient)
	var medicationRepo repositories.MedicationRepository = database.NewMedicationAdapter(pgClient)
	if cacheProvider != nil {
		cachedSymptoms := database.NewCachedSymptomAdapter(symptomRepo, cacheProvider, metrics)
		cachedMedications := database.NewCachedMedicationAdapter(medicationRepo, cacheProvider, metrics)
		symptomRepo, medicationRepo = cachedSymptoms, cachedMedications

		warmingService := services.NewCacheWarmingService(map[string]services.CatalogRefresher{
			"symptoms":    cachedSymptoms,
			"medications": cachedMedications,
		}, cacheProvider)
		go warmingService.StartPeriodicWarming(ctx, cacheWarmInterval)

		eventBus := events.NewRedisEventBus(redisClient)
		defer eventBus.Close()
		if err := warmingService.ListenForChanges(ctx, eventBus); err != nil {
			log.Warn().Err(err).Msg("Catalog change notifications disabled")
		}
	}
	pharmacyRepo := database.NewPharmacyAdapter(pgClient)
	favoriteRepo := database.NewFavoriteAdapter(pgClient)
	historyRepo := database.NewSearchHistoryAdapter(pgClient)

	// Services
	synonyms, err := services.LoadSynonymTable(cfg.Search.SynonymsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Search.SynonymsPath).Msg("Failed to load synonym table")
	}
	log.Info().Int("terms", synonyms.Len()).Msg("Synonym table loaded")
	matcher := services.NewSymptomMatcher(synonyms, cfg.Search)

	catalogService := services.NewCatalogService(symptomRepo, medicationRepo, matcher)
	searchService := services.NewSearchService(
		services.NewSymptomResolver(symptomRepo, cfg.Search.MaxSymptoms),
		medicationRepo,
		services.NewRecommendationRanker(generator),
		historyRepo,
	)
	comparisonService := services.NewComparisonService(medicationRepo, generator, retry.LinearPolicy{
		MaxAttempts: cfg.Comparison.MaxAttempts,
		Step:        cfg.Comparison.BackoffStep,
	}, cfg.Comparison.Deadline)
	pharmacyService := services.NewPharmacyService(pharmacyRepo, pharmacySearch)
	favoriteService := services.NewFavoriteService(favoriteRepo)
	historyService := services.NewSearchHistoryService(historyRepo)

	// HTTP
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	router := routes.NewRouter(
		handlers.NewCatalogHandler(catalogService),
		handlers.NewSearchHandler(searchService),
		handlers.NewComparisonHandler(comparisonService),
		handlers.NewPharmacyHandler(pharmacyService),
		handlers.NewFavoriteHandler(favoriteService, historyService),
		middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.AllowDevHeader),
		cacheMiddleware,
		cfg.Server.AllowedOrigins,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Str("ai_provider", generator.Name()).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

func newGenerativeProvider(ctx context.Context, cfg *config.AIConfig) (providers.GenerativeProvider, error) {
	switch cfg.Provider {
	case "openai":
		return openai.NewClient(cfg)
	case "gemini":
		return gemini.NewClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Provider)
	}
}

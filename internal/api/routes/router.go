package routes

import (
	"net/http"

	"github.com/zatekoja/medfinder/backend/internal/api/handlers"
	"github.com/zatekoja/medfinder/backend/internal/api/middleware"
	"github.com/zatekoja/medfinder/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	catalogHandler    *handlers.CatalogHandler
	searchHandler     *handlers.SearchHandler
	comparisonHandler *handlers.ComparisonHandler
	pharmacyHandler   *handlers.PharmacyHandler
	favoriteHandler   *handlers.FavoriteHandler

	authenticator   *middleware.Authenticator
	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router. cacheMiddleware and metrics may be nil.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	searchHandler *handlers.SearchHandler,
	comparisonHandler *handlers.ComparisonHandler,
	pharmacyHandler *handlers.PharmacyHandler,
	favoriteHandler *handlers.FavoriteHandler,
	authenticator *middleware.Authenticator,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		catalogHandler:    catalogHandler,
		searchHandler:     searchHandler,
		comparisonHandler: comparisonHandler,
		pharmacyHandler:   pharmacyHandler,
		favoriteHandler:   favoriteHandler,
		authenticator:     authenticator,
		cacheMiddleware:   cacheMiddleware,
		allowedOrigins:    allowedOrigins,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Symptom catalog
	r.mux.HandleFunc("GET /api/symptoms", r.catalogHandler.ListSymptoms)
	r.mux.HandleFunc("GET /api/symptoms/common", r.catalogHandler.ListCommonSymptoms)
	r.mux.HandleFunc("GET /api/symptoms/suggest", r.catalogHandler.SuggestSymptoms)
	r.mux.HandleFunc("POST /api/symptoms/selection", r.catalogHandler.AddToSelection)

	// Medication catalog and comparison
	r.mux.HandleFunc("GET /api/medications", r.catalogHandler.ListMedications)
	r.mux.HandleFunc("GET /api/medications/{id}", r.catalogHandler.GetMedication)
	r.mux.HandleFunc("POST /api/medications/compare", r.comparisonHandler.Compare)

	// Symptom search pipelines
	r.mux.HandleFunc("POST /api/search/symptoms", r.searchHandler.SearchSymptoms)
	r.mux.HandleFunc("POST /api/search/medications", r.searchHandler.FindMedications)
	r.mux.HandleFunc("POST /api/search/analyze", r.searchHandler.Analyze)
	r.mux.HandleFunc("GET /api/search/history", r.favoriteHandler.SearchHistory)

	// Pharmacy finder
	r.mux.HandleFunc("GET /api/pharmacies/nearby", r.pharmacyHandler.FindNearby)

	// Favorites
	r.mux.HandleFunc("GET /api/favorites", r.favoriteHandler.ListFavorites)
	r.mux.HandleFunc("POST /api/favorites", r.favoriteHandler.AddFavorite)
	r.mux.HandleFunc("DELETE /api/favorites/{medicationId}", r.favoriteHandler.RemoveFavorite)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Auth sits outside observability so the request the mux annotates with
	// its pattern is the one observability holds.
	if r.authenticator != nil {
		handler = r.authenticator.Middleware(handler)
	}

	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs and 401s
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}

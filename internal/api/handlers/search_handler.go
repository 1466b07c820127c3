package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/medfinder/backend/internal/api/middleware"
	"github.com/zatekoja/medfinder/backend/internal/application/services"
	"github.com/zatekoja/medfinder/backend/internal/domain/entities"
)

// SearchService runs the symptom search pipelines
type SearchService interface {
	SearchSymptoms(ctx context.Context, req services.SymptomSearchRequest) (*entities.SymptomSearchResult, error)
	FindMedications(ctx context.Context, req services.SymptomSearchRequest) (*entities.SymptomSearchResult, error)
	Analyze(ctx context.Context, req services.SymptomSearchRequest) (*entities.Recommendation, error)
}

// SearchHandler handles symptom search requests
type SearchHandler struct {
	service SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// decodeSearch reads a search body. The user id comes only from the
// authenticated identity; a userId in the body is ignored, so anonymous
// searches are never recorded against an account.
func decodeSearch(w http.ResponseWriter, r *http.Request) (services.SymptomSearchRequest, bool) {
	var req services.SymptomSearchRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}
	req.UserID = middleware.UserIDFromContext(r.Context())
	return req, true
}

// SearchSymptoms handles POST /api/search/symptoms
func (h *SearchHandler) SearchSymptoms(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearch(w, r)
	if !ok {
		return
	}

	result, err := h.service.SearchSymptoms(r.Context(), req)
	if err != nil {
		respondWithAppError(w, r, err, "Failed to search medications")
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// FindMedications handles POST /api/search/medications
func (h *SearchHandler) FindMedications(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearch(w, r)
	if !ok {
		return
	}

	result, err := h.service.FindMedications(r.Context(), req)
	if err != nil {
		respondWithAppError(w, r, err, "Failed to search medications")
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Analyze handles POST /api/search/analyze
func (h *SearchHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSearch(w, r)
	if !ok {
		return
	}

	recommendation, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		respondWithAppError(w, r, err, "Failed to analyze symptoms")
		return
	}
	respondWithJSON(w, http.StatusOK, recommendation)
}
